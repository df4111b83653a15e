//go:build unit

package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestMockProvider(t *testing.T) {
	p := NewMockProvider()

	t.Run("order echoes amount and currency", func(t *testing.T) {
		order, err := p.CreateOrder(context.Background(), commands.OrderRequest{Amount: 700000, Currency: "INR", Receipt: "receipt_1"})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(order.ID, "order_mock_"))
		assert.Equal(t, int64(700000), order.Amount)
		assert.Equal(t, "INR", order.Currency)
	})

	t.Run("signature made with the placeholder secret", func(t *testing.T) {
		cases := []struct {
			name      string
			signature string
			want      bool
		}{
			{name: "valid", signature: sign("order_1", "pay_1", PlaceholderSecret), want: true},
			{name: "other secret", signature: sign("order_1", "pay_1", "real-secret"), want: false},
			{name: "swapped ids", signature: sign("pay_1", "order_1", PlaceholderSecret), want: false},
			{name: "garbage", signature: "not-hex", want: false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.want, p.VerifySignature("order_1", "pay_1", tc.signature))
			})
		}
	})
}

func TestRazorpayVerifySignature(t *testing.T) {
	p := NewRazorpayProvider(config.PaymentConfig{RazorpayKeyID: "rzp_test_key", RazorpayKeySecret: "rzp-secret"}, time.Second)

	assert.True(t, p.VerifySignature("order_9", "pay_9", sign("order_9", "pay_9", "rzp-secret")))
	assert.False(t, p.VerifySignature("order_9", "pay_9", sign("order_9", "pay_9", PlaceholderSecret)))
}

func TestOrderFromBody(t *testing.T) {
	req := commands.OrderRequest{Amount: 1000, Currency: "INR"}

	t.Run("gateway values win", func(t *testing.T) {
		order, err := orderFromBody(map[string]interface{}{"id": "order_A", "amount": float64(1000), "currency": "USD"}, req)

		require.NoError(t, err)
		assert.Equal(t, &commands.PaymentOrder{ID: "order_A", Amount: 1000, Currency: "USD"}, order)
	})

	t.Run("missing id is an error", func(t *testing.T) {
		_, err := orderFromBody(map[string]interface{}{"error": "bad"}, req)

		assert.Error(t, err)
	})
}

func TestNew(t *testing.T) {
	assert.Equal(t, "mock", New(config.PaymentConfig{}, time.Second).Name())
	assert.Equal(t, "mock", New(config.PaymentConfig{RazorpayKeyID: "rzp_test_key"}, time.Second).Name())
	assert.Equal(t, "razorpay", New(config.PaymentConfig{RazorpayKeyID: "rzp_test_key", RazorpayKeySecret: "s"}, time.Second).Name())
}
