package response

import (
	"time"

	"hotel-booking/internal/domain/transaction"
	"hotel-booking/internal/usecase/queries"
)

type TransactionBookingResponse struct {
	ID         string  `json:"_id"`
	HotelName  string  `json:"hotelName"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"totalPrice"`
}

type TransactionResponse struct {
	ID        string    `json:"_id"`
	User      string    `json:"user"`
	Booking   any       `json:"booking" swaggertype:"object"`
	Amount    float64   `json:"amount"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromTransactionView renders the populated booking when the lookup found one and the bare id otherwise.
func FromTransactionView(v *queries.TransactionView) *TransactionResponse {
	res := &TransactionResponse{
		ID:        v.ID,
		User:      v.UserID,
		Booking:   v.BookingID,
		Amount:    v.Amount,
		Type:      v.Type,
		Status:    v.Status,
		CreatedAt: v.CreatedAt,
	}
	if v.Booking != nil {
		b := TransactionBookingResponse(*v.Booking)
		res.Booking = &b
	}
	return res
}

func FromTransactionViews(vs []*queries.TransactionView) []*TransactionResponse {
	out := make([]*TransactionResponse, len(vs))
	for i, v := range vs {
		out[i] = FromTransactionView(v)
	}
	return out
}

func FromTransaction(t *transaction.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:        t.ID(),
		User:      t.UserID(),
		Booking:   t.BookingID(),
		Amount:    t.Amount(),
		Type:      string(t.Type()),
		Status:    string(t.Status()),
		CreatedAt: t.CreatedAt(),
	}
}
