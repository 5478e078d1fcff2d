package controllers

import (
	"github.com/23CSE311-SeeFood/seeFood-Backend/pkg/resp"
	"github.com/23CSE311-SeeFood/seeFood-Backend/services"
	"github.com/23CSE311-SeeFood/seeFood-Backend/validators"
	"github.com/gin-gonic/gin"
)

const webhookSignatureHeader = "x-razorpay-signature"

type PaymentController struct {
	Service *services.PaymentService
}

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Service: s}
}

// POST /payments/create-order
func (ctl *PaymentController) CreateOrder(c *gin.Context) {
	var req validators.CreateOrderRequest
	if !bindBody(c, &req) {
		return
	}

	order, err := ctl.Service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// POST /payments/verify
func (ctl *PaymentController) Verify(c *gin.Context) {
	var req validators.VerifyPaymentRequest
	if !bindBody(c, &req) {
		return
	}

	if err := ctl.Service.VerifyPayment(req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": "verified"})
}

// POST /payments/webhook
// The signature covers the body bytes, so the body is read raw and never
// bound.
func (ctl *PaymentController) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}

	if err := ctl.Service.HandleWebhook(body, c.GetHeader(webhookSignatureHeader)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": "ok"})
}
