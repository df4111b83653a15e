package transaction

import (
	"time"

	"hotel-booking/internal/domain/ident"
	"hotel-booking/internal/pkg/errs"
)

type Type string

const (
	TypePayment Type = "payment"
	TypeRefund  Type = "refund"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypePayment, TypeRefund:
		return Type(s), nil
	default:
		return "", ErrInvalidType
	}
}

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusPending Status = "pending"
)

var (
	ErrInvalidType      = errs.Validation("type must be payment or refund")
	ErrInvalidBookingID = errs.Validation("booking must be a valid id")
	ErrInvalidAmount    = errs.Validation("amount must be greater than or equal to 0")
)

// Transaction is a ledger row. Rows are append-only.
type Transaction struct {
	id        string
	userID    string
	bookingID string
	amount    float64
	txType    Type
	status    Status
	createdAt time.Time
}

func NewTransaction(userID, bookingID string, amount float64, txType Type, status Status, now time.Time) (*Transaction, error) {
	if !ident.Valid(bookingID) {
		return nil, ErrInvalidBookingID
	}
	if amount < 0 {
		return nil, ErrInvalidAmount
	}
	return &Transaction{
		userID:    userID,
		bookingID: bookingID,
		amount:    amount,
		txType:    txType,
		status:    status,
		createdAt: now,
	}, nil
}

func (t *Transaction) ID() string           { return t.id }
func (t *Transaction) UserID() string       { return t.userID }
func (t *Transaction) BookingID() string    { return t.bookingID }
func (t *Transaction) Amount() float64      { return t.amount }
func (t *Transaction) Type() Type           { return t.txType }
func (t *Transaction) Status() Status       { return t.status }
func (t *Transaction) CreatedAt() time.Time { return t.createdAt }

func Reconstruct(id, userID, bookingID string, amount float64, txType Type, status Status, createdAt time.Time) *Transaction {
	return &Transaction{
		id:        id,
		userID:    userID,
		bookingID: bookingID,
		amount:    amount,
		txType:    txType,
		status:    status,
		createdAt: createdAt,
	}
}
