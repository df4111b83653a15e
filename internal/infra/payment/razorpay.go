package payment

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/metrics"
	"hotel-booking/internal/usecase/commands"

	razorpay "github.com/razorpay/razorpay-go"
)

const razorpayService = "razorpay"

type RazorpayProvider struct {
	client  *razorpay.Client
	secret  string
	timeout time.Duration
}

func NewRazorpayProvider(cfg config.PaymentConfig, timeout time.Duration) *RazorpayProvider {
	return &RazorpayProvider{
		client:  razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
		secret:  cfg.RazorpayKeySecret,
		timeout: timeout,
	}
}

func (p *RazorpayProvider) Name() string { return razorpayService }

// CreateOrder bounds the SDK call, which takes no context, by the outbound timeout.
func (p *RazorpayProvider) CreateOrder(ctx context.Context, req commands.OrderRequest) (*commands.PaymentOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	type result struct {
		body map[string]interface{}
		err  error
	}
	done := make(chan result, 1)
	start := time.Now()
	go func() {
		body, err := p.client.Order.Create(map[string]interface{}{
			"amount":   req.Amount,
			"currency": req.Currency,
			"receipt":  req.Receipt,
		}, nil)
		done <- result{body: body, err: err}
	}()

	select {
	case <-ctx.Done():
		metrics.ObserveExternal(razorpayService, "orders", 0, time.Since(start))
		return nil, errs.Wrap(ctx.Err(), "razorpay order timed out")
	case r := <-done:
		if r.err != nil {
			metrics.ObserveExternal(razorpayService, "orders", 500, time.Since(start))
			return nil, errs.Wrap(r.err, "razorpay order failed")
		}
		metrics.ObserveExternal(razorpayService, "orders", 200, time.Since(start))
		return orderFromBody(r.body, req)
	}
}

func (p *RazorpayProvider) VerifySignature(orderID, paymentID, signature string) bool {
	return verify(orderID, paymentID, signature, p.secret)
}

func orderFromBody(body map[string]interface{}, req commands.OrderRequest) (*commands.PaymentOrder, error) {
	id, _ := body["id"].(string)
	if id == "" {
		return nil, errs.New(fmt.Sprintf("razorpay order response has no id: %v", body))
	}
	order := &commands.PaymentOrder{ID: id, Amount: req.Amount, Currency: req.Currency}
	if amount, ok := body["amount"].(float64); ok {
		order.Amount = int64(amount)
	}
	if currency, ok := body["currency"].(string); ok && currency != "" {
		order.Currency = currency
	}
	return order, nil
}
