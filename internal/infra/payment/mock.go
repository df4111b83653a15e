package payment

import (
	"context"

	"hotel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// MockProvider issues local order ids and checks signatures made with the placeholder secret.
type MockProvider struct {
	secret string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{secret: PlaceholderSecret}
}

func (p *MockProvider) Name() string { return "mock" }

func (p *MockProvider) CreateOrder(_ context.Context, req commands.OrderRequest) (*commands.PaymentOrder, error) {
	return &commands.PaymentOrder{
		ID:       "order_mock_" + uuid.NewString(),
		Amount:   req.Amount,
		Currency: req.Currency,
	}, nil
}

func (p *MockProvider) VerifySignature(orderID, paymentID, signature string) bool {
	return verify(orderID, paymentID, signature, p.secret)
}
