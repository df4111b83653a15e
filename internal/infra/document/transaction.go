package document

import (
	"time"

	"hotel-booking/internal/domain/transaction"
	"hotel-booking/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Transaction struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      primitive.ObjectID `bson:"user"`
	Booking   primitive.ObjectID `bson:"booking"`
	Amount    float64            `bson:"amount"`
	Type      string             `bson:"type"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// TransactionRow carries the booking joined by $lookup, when it still exists.
type TransactionRow struct {
	Transaction `bson:",inline"`
	BookingDoc  *Booking `bson:"bookingDoc,omitempty"`
}

func FromTransaction(t *transaction.Transaction) Transaction {
	doc := Transaction{
		Amount:    t.Amount(),
		Type:      string(t.Type()),
		Status:    string(t.Status()),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.CreatedAt(),
	}
	if oid, ok := ObjectID(t.UserID()); ok {
		doc.User = oid
	}
	if oid, ok := ObjectID(t.BookingID()); ok {
		doc.Booking = oid
	}
	return doc
}

func (d TransactionRow) ToView() *queries.TransactionView {
	v := &queries.TransactionView{
		ID:        d.ID.Hex(),
		UserID:    hexOrEmpty(d.User),
		BookingID: hexOrEmpty(d.Booking),
		Amount:    d.Amount,
		Type:      d.Type,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}
	if d.BookingDoc != nil {
		v.Booking = &queries.TransactionBooking{
			ID:         d.BookingDoc.ID.Hex(),
			HotelName:  d.BookingDoc.HotelName,
			Status:     d.BookingDoc.Status,
			TotalPrice: d.BookingDoc.TotalPrice,
		}
	}
	return v
}
