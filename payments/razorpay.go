// Package payments talks to the Razorpay gateway and checks its signatures.
package payments

import (
	"context"

	"github.com/23CSE311-SeeFood/seeFood-Backend/entity"
	"github.com/23CSE311-SeeFood/seeFood-Backend/validators"
	razorpay "github.com/razorpay/razorpay-go"
)

// OrderCreator creates orders on the gateway.
type OrderCreator interface {
	CreateOrder(ctx context.Context, in validators.OrderInput) (entity.PaymentOrder, error)
}

type Config struct {
	KeyID         string
	KeySecret     string
	WebhookSecret string
}

// Ready reports whether the API keys needed for orders and checkout
// verification are present.
func (c Config) Ready() bool {
	return c.KeyID != "" && c.KeySecret != ""
}

type RazorpayClient struct {
	client *razorpay.Client
}

func NewRazorpayClient(cfg Config) *RazorpayClient {
	return &RazorpayClient{client: razorpay.NewClient(cfg.KeyID, cfg.KeySecret)}
}

func (r *RazorpayClient) CreateOrder(ctx context.Context, in validators.OrderInput) (entity.PaymentOrder, error) {
	// the SDK has no context support; at least don't start a dead request
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"amount":   in.Amount,
		"currency": in.Currency,
	}
	if in.Receipt != "" {
		data["receipt"] = in.Receipt
	}
	if in.Notes != nil {
		data["notes"] = in.Notes
	}

	order, err := r.client.Order.Create(data, nil)
	if err != nil {
		return nil, err
	}
	return entity.PaymentOrder(order), nil
}
