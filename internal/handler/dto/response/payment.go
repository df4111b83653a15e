package response

import "hotel-booking/internal/usecase/commands"

type PaymentIntentResponse struct {
	ID       string `json:"id"`
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

func FromPaymentOrder(o *commands.PaymentOrder) *PaymentIntentResponse {
	return copyInto[PaymentIntentResponse](o)
}
