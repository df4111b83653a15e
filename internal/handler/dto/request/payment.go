package request

import (
	"hotel-booking/internal/usecase/commands"
)

// CreatePaymentIntentRequest takes the amount in minor units (paise for INR).
type CreatePaymentIntentRequest struct {
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	BookingID string `json:"bookingId"`
}

func (r *CreatePaymentIntentRequest) ToInput() commands.CreateIntentInput {
	return commands.CreateIntentInput{Amount: r.Amount, Currency: r.Currency, BookingID: r.BookingID}
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
	BookingID string `json:"bookingId"`
}

func (r *VerifyPaymentRequest) ToInput() commands.VerifyPaymentInput {
	return commands.VerifyPaymentInput{
		OrderID:   r.OrderID,
		PaymentID: r.PaymentID,
		Signature: r.Signature,
		BookingID: r.BookingID,
	}
}
