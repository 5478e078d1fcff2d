package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign returns the lowercase hex HMAC-SHA256 of payload under secret, the
// format Razorpay uses for both payment and webhook signatures.
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// PaymentPayload is the exact string Razorpay signs after checkout.
func PaymentPayload(orderID, paymentID string) []byte {
	return []byte(orderID + "|" + paymentID)
}

// VerifyPaymentSignature checks the signature the client receives from
// checkout. Any empty input fails.
func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	if orderID == "" || paymentID == "" || signature == "" || secret == "" {
		return false
	}
	return equal(Sign(secret, PaymentPayload(orderID, paymentID)), signature)
}

// VerifyWebhookSignature must be given the request body exactly as received.
func VerifyWebhookSignature(rawBody []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}
	return equal(Sign(secret, rawBody), signature)
}

func equal(expected, got string) bool {
	return hmac.Equal([]byte(expected), []byte(got))
}
