package services

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/23CSE311-SeeFood/seeFood-Backend/entity"
	"github.com/23CSE311-SeeFood/seeFood-Backend/payments"
	"github.com/23CSE311-SeeFood/seeFood-Backend/pkg/apperr"
	"github.com/23CSE311-SeeFood/seeFood-Backend/validators"
)

var errGatewayNotConfigured = apperr.Configuration("Razorpay keys not configured")

type PaymentService struct {
	Gateway payments.OrderCreator
	Config  payments.Config
	Log     *slog.Logger
}

func NewPaymentService(gateway payments.OrderCreator, cfg payments.Config, log *slog.Logger) *PaymentService {
	return &PaymentService{Gateway: gateway, Config: cfg, Log: log}
}

func (s *PaymentService) CreateOrder(ctx context.Context, req validators.CreateOrderRequest) (entity.PaymentOrder, error) {
	if !s.Config.Ready() {
		return nil, errGatewayNotConfigured
	}
	in, err := req.Validate()
	if err != nil {
		return nil, err
	}

	order, err := s.Gateway.CreateOrder(ctx, in)
	if err != nil {
		return nil, apperr.Internal("Failed to create order", err)
	}
	s.Log.Info("payment order created", "order_id", order["id"], "amount", in.Amount, "currency", in.Currency)
	return order, nil
}

// VerifyPayment checks the checkout signature against the key secret.
func (s *PaymentService) VerifyPayment(req validators.VerifyPaymentRequest) error {
	if !s.Config.Ready() {
		return errGatewayNotConfigured
	}
	orderID, paymentID, signature := req.Values()
	if orderID == "" || paymentID == "" || signature == "" {
		return apperr.Validation("Missing payment verification fields")
	}
	if !payments.VerifyPaymentSignature(orderID, paymentID, signature, s.Config.KeySecret) {
		return apperr.Validation("Invalid signature")
	}
	return nil
}

// HandleWebhook authenticates a server-to-server call. rawBody must be the
// bytes as received; re-encoding parsed JSON would change the digest.
func (s *PaymentService) HandleWebhook(rawBody []byte, signature string) error {
	if s.Config.WebhookSecret == "" {
		return apperr.Configuration("Webhook secret not configured")
	}
	if signature == "" {
		return apperr.Validation("Missing signature")
	}
	if !payments.VerifyWebhookSignature(rawBody, signature, s.Config.WebhookSecret) {
		return apperr.Validation("Invalid webhook signature")
	}

	var event struct {
		Event string `json:"event"`
	}
	if err := json.Unmarshal(rawBody, &event); err != nil {
		s.Log.Warn("verified webhook with unreadable body", "error", err)
		return nil
	}
	s.Log.Info("payment webhook received", "event", event.Event)
	return nil
}
