package commands

import (
	"context"

	"hotel-booking/internal/domain/transaction"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/shared"
)

type CreateTransactionInput struct {
	BookingID string
	Amount    float64
	Type      string
}

type TransactionCommands interface {
	Create(ctx context.Context, identity shared.Identity, input CreateTransactionInput) (*transaction.Transaction, error)
}

type transactionCommandsImpl struct {
	transactions TransactionRepository
	clock        clock.Clock
}

func NewTransactionCommands(transactions TransactionRepository, clk clock.Clock) TransactionCommands {
	return &transactionCommandsImpl{transactions: transactions, clock: clk}
}

// Create records a ledger row as successful without contacting any payment provider.
func (t *transactionCommandsImpl) Create(ctx context.Context, identity shared.Identity, input CreateTransactionInput) (*transaction.Transaction, error) {
	if err := shared.RequireUser(identity); err != nil {
		return nil, err
	}
	txType, err := transaction.ParseType(input.Type)
	if err != nil {
		return nil, err
	}
	tx, err := transaction.NewTransaction(identity.UserID, input.BookingID, input.Amount, txType, transaction.StatusSuccess, t.clock.Now())
	if err != nil {
		return nil, err
	}
	id, err := t.transactions.Create(ctx, tx)
	if err != nil {
		return nil, err
	}
	return transaction.Reconstruct(id, tx.UserID(), tx.BookingID(), tx.Amount(), tx.Type(), tx.Status(), tx.CreatedAt()), nil
}
