package payment

import (
	"github.com/razorpay/razorpay-go/utils"
)

// PlaceholderSecret signs mock payments when no Razorpay secret is configured.
const PlaceholderSecret = "placeholder_secret"

// verify checks HMAC-SHA256(orderID|paymentID) against signature.
func verify(orderID, paymentID, signature, secret string) bool {
	attrs := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return utils.VerifyPaymentSignature(attrs, signature, secret)
}
