package request

import (
	"hotel-booking/internal/usecase/commands"
)

type CreateTransactionRequest struct {
	Booking string  `json:"booking"`
	Amount  float64 `json:"amount"`
	Type    string  `json:"type"`
}

func (r *CreateTransactionRequest) ToInput() commands.CreateTransactionInput {
	return commands.CreateTransactionInput{BookingID: r.Booking, Amount: r.Amount, Type: r.Type}
}
