//go:build e2e

package booking_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/payment"
	"hotel-booking/internal/infra/repository"
	"hotel-booking/tests/common/authtest"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/dbtest"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type bookingSuite struct {
	e2e.SharedSuite
	guestID    string
	guestToken string
	otherToken string
	adminToken string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.guestID, s.guestToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "guest@example.com", string(user.RoleUser))
	_, s.otherToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "other@example.com", string(user.RoleUser))
	_, s.adminToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
}

func (s *bookingSuite) create(token string, body any) resdto.BookingResponse {
	s.T().Helper()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, body, token)
	var res resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return res
}

func externalBooking(roomID, method string) map[string]any {
	return map[string]any{
		"room":          roomID,
		"hotelName":     "The Taj Mahal Palace",
		"checkInDate":   "2025-06-01",
		"checkOutDate":  "2025-06-03",
		"totalPrice":    24000,
		"paymentMethod": method,
	}
}

// sign reproduces the gateway's HMAC-SHA256 checksum over "order|payment".
func sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(payment.PlaceholderSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *bookingSuite) TestCreate() {
	s.Run("外部ルームの予約", func() {
		t := s.T()

		res := s.create(s.guestToken, externalBooking("1", ""))
		require.NotEmpty(t, res.ID)
		require.Equal(t, "external", res.Room.Kind)
		require.Equal(t, "1", res.Room.ID)
		require.Equal(t, string(booking.StatusConfirmed), res.Status, "mock決済は即時確定")
		require.Equal(t, string(booking.PaymentPaid), res.PaymentStatus)
		require.Equal(t, s.guestID, res.User.ID)
		require.Equal(t, "guest@example.com", res.User.Email)
		require.NotNil(t, res.RoomDetails, "外部ルームの詳細が解決されていない")
		require.Equal(t, "1", res.RoomDetails.ID)
		require.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), res.CheckInDate.UTC())
	})

	s.Run("内部ルームの予約", func() {
		t := s.T()

		hotelID := dbtest.CreateTestHotel(t, s.DB, builder.NewHotelBuilder())
		roomID := dbtest.CreateTestRoom(t, s.DB, builder.NewRoomBuilder().WithHotel(hotelID).WithName("Deluxe King"))

		body := externalBooking("", "")
		body["room"] = map[string]string{"kind": "internal", "id": roomID}
		res := s.create(s.guestToken, body)

		require.Equal(t, "internal", res.Room.Kind)
		require.Equal(t, roomID, res.Room.ID)
		require.NotNil(t, res.RoomDetails)
		require.Equal(t, "Deluxe King", res.RoomDetails.Name)
	})

	s.Run("razorpay決済は保留で作成される", func() {
		res := s.create(s.guestToken, externalBooking("2", "razorpay"))
		require.Equal(t, string(booking.StatusPending), res.Status)
		require.Equal(t, string(booking.PaymentPending), res.PaymentStatus)
	})

	tests := []struct {
		name        string
		mutate      func(m map[string]any)
		expectCode  int
		expectInMsg string
	}{
		{
			name:        "チェックアウトがチェックイン以前",
			mutate:      func(m map[string]any) { m["checkOutDate"] = "2025-06-01" },
			expectCode:  http.StatusBadRequest,
			expectInMsg: "checkOutDate must be after checkInDate",
		},
		{
			name:        "日付の形式が不正",
			mutate:      func(m map[string]any) { m["checkInDate"] = "01/06/2025" },
			expectCode:  http.StatusBadRequest,
			expectInMsg: "invalid date",
		},
		{
			name:        "ホテル名なし",
			mutate:      func(m map[string]any) { delete(m, "hotelName") },
			expectCode:  http.StatusBadRequest,
			expectInMsg: "hotelName is required",
		},
		{
			name:        "合計金額なし",
			mutate:      func(m map[string]any) { delete(m, "totalPrice") },
			expectCode:  http.StatusBadRequest,
			expectInMsg: "totalPrice is required",
		},
		{
			name:        "負の合計金額",
			mutate:      func(m map[string]any) { m["totalPrice"] = -1 },
			expectCode:  http.StatusBadRequest,
			expectInMsg: "totalPrice",
		},
		{
			name:        "不正な内部ルームID",
			mutate:      func(m map[string]any) { m["room"] = map[string]string{"kind": "internal", "id": "nope"} },
			expectCode:  http.StatusBadRequest,
			expectInMsg: "internal room id must be a valid id",
		},
		{
			name:        "不明な決済方法",
			mutate:      func(m map[string]any) { m["paymentMethod"] = "cash" },
			expectCode:  http.StatusBadRequest,
			expectInMsg: "",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			body := externalBooking("1", "")
			tt.mutate(body)
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, body, s.guestToken)
			httptest.AssertErrorResponse(s.T(), w, tt.expectCode, tt.expectInMsg)
		})
	}

	s.Run("未認証", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, externalBooking("1", ""), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Authorization token missing")
	})
}

func (s *bookingSuite) TestListAndGet() {
	s.Run("自分の予約だけが新しい順に返る", func() {
		t := s.T()

		first := s.create(s.guestToken, externalBooking("1", ""))
		second := s.create(s.guestToken, externalBooking("3", ""))
		s.create(s.otherToken, externalBooking("2", ""))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/my-bookings", nil, s.guestToken)
		var res []resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res, 2)
		require.Equal(t, second.ID, res[0].ID)
		require.Equal(t, first.ID, res[1].ID)
	})

	s.Run("予約がなければ空配列", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/my-bookings", nil, s.guestToken)
		require.Equal(s.T(), http.StatusOK, w.Code)
		require.JSONEq(s.T(), `[]`, w.Body.String())
	})

	s.Run("他人の予約は閲覧できない", func() {
		t := s.T()
		created := s.create(s.guestToken, externalBooking("1", ""))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID, nil, s.otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Not authorized to view this booking")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID, nil, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, "管理者は閲覧できる")
	})

	s.Run("存在しない予約", func() {
		for _, id := range []string{"65f0c0ffee0000000000abcd", "not-an-id"} {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/"+id, nil, s.guestToken)
			httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
		}
	})

	s.Run("全件一覧は管理者のみ", func() {
		t := s.T()
		s.create(s.guestToken, externalBooking("1", ""))
		s.create(s.otherToken, externalBooking("2", ""))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, s.adminToken)
		var res []resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res, 2)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, s.guestToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Access denied. Admins only.")
	})
}

func (s *bookingSuite) TestCancel() {
	s.Run("自分の予約をキャンセル", func() {
		t := s.T()
		created := s.create(s.guestToken, externalBooking("1", ""))
		url := bookingsURL + "/" + created.ID + "/cancel"

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, nil, s.guestToken)
		var res resdto.BookingActionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "Booking cancelled successfully", res.Message)
		require.Equal(t, string(booking.StatusCancelled), res.Booking.Status)

		// 二重キャンセルは拒否される
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, url, nil, s.guestToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Booking is already cancelled")
	})

	s.Run("他人の予約はキャンセルできない", func() {
		t := s.T()
		created := s.create(s.guestToken, externalBooking("1", ""))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+created.ID+"/cancel", nil, s.otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Not authorized to cancel this booking")
	})
}

func (s *bookingSuite) TestUpdateStatus() {
	s.Run("管理者がステータスを変更", func() {
		t := s.T()
		created := s.create(s.guestToken, externalBooking("1", ""))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+created.ID+"/status",
			request.UpdateBookingStatusRequest{Status: "completed"}, s.adminToken)
		var res resdto.BookingActionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, string(booking.StatusCompleted), res.Booking.Status)
	})

	s.Run("不正なステータス", func() {
		created := s.create(s.guestToken, externalBooking("1", ""))
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, bookingsURL+"/"+created.ID+"/status",
			request.UpdateBookingStatusRequest{Status: "teleported"}, s.adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid status")
	})

	s.Run("一般ユーザーは変更できない", func() {
		created := s.create(s.guestToken, externalBooking("1", ""))
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, bookingsURL+"/"+created.ID+"/status",
			request.UpdateBookingStatusRequest{Status: "completed"}, s.guestToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Access denied. Admins only.")
	})
}

func (s *bookingSuite) TestStats() {
	s.Run("集計", func() {
		t := s.T()
		now := time.Now().UTC()
		older := time.Date(now.Year(), now.Month()-2, 1, 12, 0, 0, 0, time.UTC)

		// 2か月前の予約を直接投入する
		dbtest.CreateTestBooking(t, s.DB, builder.NewBookingBuilder().
			WithUser(s.guestID).
			WithHotelName("Hill Retreat").
			WithDates(older.AddDate(0, 0, 3), older.AddDate(0, 0, 5)).
			WithTotalPrice(5000).
			WithCreatedAt(older))

		s.create(s.guestToken, externalBooking("1", ""))
		s.create(s.guestToken, externalBooking("1", ""))
		cancelled := s.create(s.otherToken, externalBooking("2", ""))
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+cancelled.ID+"/cancel", nil, s.otherToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/stats", nil, s.adminToken)
		var res resdto.BookingStatsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

		require.EqualValues(t, 4, res.TotalBookings)
		require.InDelta(t, 77000, res.TotalRevenue, 0.01, "キャンセル分も売上に含まれる")
		require.EqualValues(t, 3, res.BookingsByStatus["confirmed"])
		require.EqualValues(t, 1, res.BookingsByStatus["cancelled"])
		require.EqualValues(t, 0, res.BookingsByStatus["pending"])
		require.EqualValues(t, 0, res.BookingsByStatus["completed"])

		require.Len(t, res.MonthlyBookings, 6)
		byMonth := map[string]resdto.MonthlyStatResponse{}
		for _, m := range res.MonthlyBookings {
			byMonth[m.Month] = m
		}
		require.EqualValues(t, 1, byMonth[older.Format("2006-01")].Count)
		require.EqualValues(t, 3, byMonth[now.Format("2006-01")].Count)
		require.Equal(t, now.Format("2006-01"), res.MonthlyBookings[5].Month, "古い月から並ぶ")

		require.Len(t, res.TopHotels, 2)
		require.Equal(t, "The Taj Mahal Palace", res.TopHotels[0].HotelName)
		require.EqualValues(t, 3, res.TopHotels[0].Count)
		require.Len(t, res.RecentBookings, 4)
	})

	s.Run("一般ユーザーは取得できない", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/stats", nil, s.guestToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Access denied. Admins only.")
	})
}

func (s *bookingSuite) TestPaymentFlow() {
	s.Run("注文作成から検証まで", func() {
		t := s.T()
		created := s.create(s.guestToken, externalBooking("1", "razorpay"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/payments/create-intent",
			request.CreatePaymentIntentRequest{Amount: 2400000, BookingID: created.ID}, s.guestToken)
		var order resdto.PaymentIntentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &order)
		require.NotEmpty(t, order.ID)
		require.Equal(t, "INR", order.Currency)
		require.EqualValues(t, 2400000, order.Amount)

		paymentID := "pay_e2e_001"
		verify := request.VerifyPaymentRequest{
			OrderID:   order.ID,
			PaymentID: paymentID,
			Signature: sign(order.ID, paymentID),
			BookingID: created.ID,
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/payments/verify", verify, s.guestToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID, nil, s.guestToken)
		var paid resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &paid)
		require.Equal(t, string(booking.StatusConfirmed), paid.Status)
		require.Equal(t, string(booking.PaymentPaid), paid.PaymentStatus)
		require.Equal(t, order.ID, paid.PaymentOrderID)

		// 決済のトランザクションが記録される
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/transactions", nil, s.guestToken)
		var txs []resdto.TransactionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &txs)
		require.Len(t, txs, 1)
		require.Equal(t, "payment", txs[0].Type)
		require.InDelta(t, 24000, txs[0].Amount, 0.01)
	})

	s.Run("署名不一致では予約は変わらない", func() {
		t := s.T()
		created := s.create(s.guestToken, externalBooking("1", "razorpay"))

		verify := request.VerifyPaymentRequest{
			OrderID:   "order_forged",
			PaymentID: "pay_forged",
			Signature: sign("order_other", "pay_forged"),
			BookingID: created.ID,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/payments/verify", verify, s.guestToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid signature sent!")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID, nil, s.guestToken)
		var unchanged resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &unchanged)
		require.Equal(t, string(booking.PaymentPending), unchanged.PaymentStatus)
	})

	s.Run("予約に紐づかない注文では支払えない", func() {
		t := s.T()
		created := s.create(s.guestToken, externalBooking("1", "razorpay"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/payments/create-intent",
			request.CreatePaymentIntentRequest{Amount: 2400000, BookingID: created.ID}, s.guestToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// 1パイサの別注文を正しく署名して流用する
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/payments/create-intent",
			request.CreatePaymentIntentRequest{Amount: 1}, s.guestToken)
		var cheap resdto.PaymentIntentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cheap)

		verify := request.VerifyPaymentRequest{
			OrderID:   cheap.ID,
			PaymentID: "pay_cheap",
			Signature: sign(cheap.ID, "pay_cheap"),
			BookingID: created.ID,
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/payments/verify", verify, s.guestToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Payment order does not match this booking")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID, nil, s.guestToken)
		var unchanged resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &unchanged)
		require.Equal(t, string(booking.StatusPending), unchanged.Status)
		require.Equal(t, string(booking.PaymentPending), unchanged.PaymentStatus)
	})

	s.Run("検証の再送で記録は増えない", func() {
		t := s.T()
		created := s.create(s.guestToken, externalBooking("1", "razorpay"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/payments/create-intent",
			request.CreatePaymentIntentRequest{Amount: 2400000, BookingID: created.ID}, s.guestToken)
		var order resdto.PaymentIntentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &order)

		verify := request.VerifyPaymentRequest{
			OrderID:   order.ID,
			PaymentID: "pay_replay",
			Signature: sign(order.ID, "pay_replay"),
			BookingID: created.ID,
		}
		for range 2 {
			w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/payments/verify", verify, s.guestToken)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/transactions", nil, s.guestToken)
		var txs []resdto.TransactionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &txs)
		require.Len(t, txs, 1)
	})

	s.Run("他人の予約には支払えない", func() {
		created := s.create(s.guestToken, externalBooking("1", "razorpay"))
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/payments/create-intent",
			request.CreatePaymentIntentRequest{Amount: 100, BookingID: created.ID}, s.otherToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Not authorized to pay for this booking")
	})
}

func (s *bookingSuite) TestConcurrentSave() {
	s.Run("古い読み込みからの保存は上書きしない", func() {
		t := s.T()
		ctx := context.Background()
		now := time.Now().UTC()
		id := dbtest.CreateTestBooking(t, s.DB, builder.NewBookingBuilder().
			WithUser(s.guestID).AsPendingRazorpay().WithPaymentOrder("order_race"))
		repo := repository.NewBookingRepository(s.DB)

		cancelling, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		paying, err := repo.FindByID(ctx, id)
		require.NoError(t, err)

		require.NoError(t, cancelling.Cancel(s.guestID, now))
		require.NoError(t, repo.Save(ctx, cancelling))

		changed, err := paying.ConfirmPayment("order_race", now)
		require.NoError(t, err)
		require.True(t, changed)
		err = repo.Save(ctx, paying)
		require.True(t, infra.IsKind(err, infra.KindConflict), "got %v", err)

		stored, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, booking.StatusCancelled, stored.Status())
		require.Equal(t, booking.PaymentPending, stored.PaymentStatus())
		require.EqualValues(t, 1, stored.Snapshot().Version)
	})

	s.Run("APIでキャンセルされた後の古い読み込みは保存できない", func() {
		t := s.T()
		id := dbtest.CreateTestBooking(t, s.DB, builder.NewBookingBuilder().
			WithUser(s.guestID).AsPendingRazorpay().WithPaymentOrder("order_api_race"))
		repo := repository.NewBookingRepository(s.DB)
		stale, err := repo.FindByID(context.Background(), id)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+id+"/cancel", nil, s.guestToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		_, err = stale.ConfirmPayment("order_api_race", time.Now().UTC())
		require.NoError(t, err)
		err = repo.Save(context.Background(), stale)
		require.True(t, infra.IsKind(err, infra.KindConflict), "got %v", err)
	})

	s.Run("存在しない予約はNOT_FOUND", func() {
		t := s.T()
		ghost := builder.NewBookingBuilder().WithUser(s.guestID).AsPendingRazorpay().BuildStored()
		require.NoError(t, ghost.Cancel(s.guestID, time.Now().UTC()))

		err := repository.NewBookingRepository(s.DB).Save(context.Background(), ghost)
		require.True(t, infra.IsKind(err, infra.KindNotFound), "got %v", err)
	})
}
