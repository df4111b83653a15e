//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewBooking(t *testing.T) {
	t.Run("初期状態は支払い方法で決まる", func(t *testing.T) {
		cases := []struct {
			name          string
			method        booking.PaymentMethod
			status        booking.Status
			paymentStatus booking.PaymentStatus
		}{
			{name: "mock は確定済み", method: booking.PaymentMethodMock, status: booking.StatusConfirmed, paymentStatus: booking.PaymentPaid},
			{name: "razorpay は保留", method: booking.PaymentMethodRazorpay, status: booking.StatusPending, paymentStatus: booking.PaymentPending},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b, err := booking.NewBooking(builder.NewBookingBuilder().BuildParams(), tc.method, now)

				require.NoError(t, err)
				assert.Equal(t, tc.status, b.Status())
				assert.Equal(t, tc.paymentStatus, b.PaymentStatus())
				assert.Empty(t, b.ID())
				assert.Equal(t, now, b.UpdatedAt())
			})
		}
	})

	t.Run("入力検証", func(t *testing.T) {
		day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }

		cases := []struct {
			name   string
			mutate func(*booking.Params)
			errIs  error
		}{
			{name: "所有者なしNG", mutate: func(p *booking.Params) { p.UserID = "" }, errIs: booking.ErrOwnerRequired},
			{name: "部屋なしNG", mutate: func(p *booking.Params) { p.Room = booking.RoomRef{} }, errIs: booking.ErrRoomRequired},
			{name: "ホテル名空白NG", mutate: func(p *booking.Params) { p.HotelName = "  " }, errIs: booking.ErrHotelNameRequired},
			{name: "日付欠落NG", mutate: func(p *booking.Params) { p.CheckOut = time.Time{} }, errIs: booking.ErrMissingDates},
			{name: "同日NG", mutate: func(p *booking.Params) { p.CheckIn, p.CheckOut = day(10), day(10) }, errIs: booking.ErrInvalidDates},
			{name: "逆順NG", mutate: func(p *booking.Params) { p.CheckIn, p.CheckOut = day(12), day(10) }, errIs: booking.ErrInvalidDates},
			{name: "負の金額NG", mutate: func(p *booking.Params) { p.TotalPrice = -1 }, errIs: booking.ErrInvalidTotalPrice},
			{name: "金額ゼロOK", mutate: func(p *booking.Params) { p.TotalPrice = 0 }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				params := builder.NewBookingBuilder().BuildParams()
				tc.mutate(&params)

				b, err := booking.NewBooking(params, booking.PaymentMethodMock, now)

				if tc.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, b)
					return
				}
				require.ErrorIs(t, err, tc.errIs)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				assert.Nil(t, b)
			})
		}
	})

	t.Run("ホテル名はトリムされる", func(t *testing.T) {
		params := builder.NewBookingBuilder().BuildParams()
		params.HotelName = "  Seaside Palace "

		b, err := booking.NewBooking(params, booking.PaymentMethodMock, now)

		require.NoError(t, err)
		assert.Equal(t, "Seaside Palace", b.Snapshot().HotelName)
	})
}

func TestCancel(t *testing.T) {
	owner := "65f1a0c2e4b0a1b2c3d4e5f6"

	t.Run("所有者はキャンセルできる", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithUser(owner).BuildStored()

		require.NoError(t, b.Cancel(owner, now))

		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("支払い状態は変わらない", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithUser(owner).BuildStored()

		require.NoError(t, b.Cancel(owner, now))

		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
	})

	t.Run("他人はキャンセルできない", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithUser(owner).BuildStored()

		err := b.Cancel("65f1a0c2e4b0a1b2c3d4e5f7", now)

		require.ErrorIs(t, err, booking.ErrNotOwner)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("二重キャンセルNG", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithUser(owner).AsCancelled().BuildStored()
		before := b.UpdatedAt()

		err := b.Cancel(owner, now)

		require.ErrorIs(t, err, booking.ErrAlreadyCancelled)
		assert.True(t, errs.Is(err, errs.ErrInvalidState))
		assert.Equal(t, before, b.UpdatedAt())
	})
}

func TestOverrideStatus(t *testing.T) {
	t.Run("全ての遷移を許可", func(t *testing.T) {
		for _, from := range booking.Statuses {
			for _, to := range booking.Statuses {
				b := builder.NewBookingBuilder().WithStatus(from).BuildStored()

				require.NoError(t, b.OverrideStatus(to, now), "%s -> %s", from, to)
				assert.Equal(t, to, b.Status())
			}
		}
	})

	t.Run("未知のステータスNG", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()

		require.ErrorIs(t, b.OverrideStatus("archived", now), booking.ErrInvalidStatus)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})
}

func TestConfirmPayment(t *testing.T) {
	t.Run("保留中は確定になる", func(t *testing.T) {
		b := builder.NewBookingBuilder().AsPendingRazorpay().WithPaymentOrder("order_123").BuildStored()

		changed, err := b.ConfirmPayment("order_123", now)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("キャンセル済みはステータスを保つ", func(t *testing.T) {
		b := builder.NewBookingBuilder().AsPendingRazorpay().AsCancelled().WithPaymentOrder("order_123").BuildStored()

		changed, err := b.ConfirmPayment("order_123", now)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("支払い済みなら何も変えない", func(t *testing.T) {
		bb := builder.NewBookingBuilder().AsPendingRazorpay().WithPaymentOrder("order_123")
		bb.PaymentStatus = booking.PaymentPaid
		bb.Status = booking.StatusConfirmed
		b := bb.BuildStored()
		before := b.Snapshot()

		changed, err := b.ConfirmPayment("order_123", now)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, before, b.Snapshot())
	})

	t.Run("注文IDの不一致NG", func(t *testing.T) {
		cases := []struct {
			name     string
			attached string
			given    string
		}{
			{name: "別の注文", attached: "order_REAL", given: "order_CHEAP"},
			{name: "注文が未作成", attached: "", given: "order_CHEAP"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewBookingBuilder().AsPendingRazorpay().WithPaymentOrder(tc.attached).BuildStored()
				before := b.Snapshot()

				changed, err := b.ConfirmPayment(tc.given, now)

				require.ErrorIs(t, err, booking.ErrPaymentOrderMismatch)
				assert.False(t, changed)
				assert.Equal(t, before, b.Snapshot())
			})
		}
	})
}

func TestNewRoomRef(t *testing.T) {
	oid := "65f1a0c2e4b0a1b2c3d4e5f6"

	cases := []struct {
		name     string
		kind, id string
		expected booking.RoomRef
		errIs    error
	}{
		{name: "internal", kind: "internal", id: oid, expected: booking.RoomRef{Kind: booking.RoomInternal, ID: oid}},
		{name: "external", kind: "external", id: "amadeus-HLMUM123", expected: booking.RoomRef{Kind: booking.RoomExternal, ID: "amadeus-HLMUM123"}},
		{name: "kind省略は external", kind: "", id: " 3 ", expected: booking.RoomRef{Kind: booking.RoomExternal, ID: "3"}},
		{name: "internal は ObjectID 必須", kind: "internal", id: "3", errIs: booking.ErrInvalidRoomRef},
		{name: "id なしNG", kind: "internal", id: " ", errIs: booking.ErrRoomRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ref, err := booking.NewRoomRef(tc.kind, tc.id)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ref)
		})
	}

	t.Run("未知の kind NG", func(t *testing.T) {
		_, err := booking.NewRoomRef("partner", "x")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestParsePaymentMethod(t *testing.T) {
	for in, expected := range map[string]booking.PaymentMethod{
		"":           booking.PaymentMethodMock,
		"mock":       booking.PaymentMethodMock,
		" Razorpay ": booking.PaymentMethodRazorpay,
	} {
		m, err := booking.ParsePaymentMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, m)
	}

	_, err := booking.ParsePaymentMethod("paypal")
	assert.True(t, errs.Is(err, errs.ErrValidation))
}
