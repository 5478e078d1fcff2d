package validators

import (
	"math"

	"github.com/23CSE311-SeeFood/seeFood-Backend/pkg/apperr"
)

const DefaultCurrency = "INR"

type CreateOrderRequest struct {
	Amount   Field `json:"amount"`
	Currency Field `json:"currency"`
	Receipt  Field `json:"receipt"`
	Notes    Field `json:"notes"`
}

type OrderInput struct {
	Amount   int64 // minor units
	Currency string
	Receipt  string
	Notes    map[string]any
}

func (r CreateOrderRequest) Validate() (OrderInput, error) {
	in := OrderInput{Currency: DefaultCurrency}

	amount, ok := r.Amount.AsNumber()
	if !ok {
		return in, apperr.Validation("amount is required")
	}
	// float64(math.MaxInt64) is 2^63, which no longer fits
	if rounded := math.Floor(amount + 0.5); rounded < 1 || rounded >= math.MaxInt64 {
		return in, apperr.Validation("amount must be a positive number")
	}
	in.Amount = RoundMinorUnits(amount)

	if r.Currency.Present && !r.Currency.IsNull() {
		currency, ok := nonEmptyString(r.Currency)
		if !ok {
			return in, apperr.Validation("currency must be a string")
		}
		in.Currency = currency
	}
	if r.Receipt.Present && !r.Receipt.IsNull() {
		receipt, ok := r.Receipt.AsText()
		if !ok {
			return in, apperr.Validation("receipt must be a string")
		}
		in.Receipt = receipt
	}
	if r.Notes.Present && !r.Notes.IsNull() {
		notes, ok := r.Notes.AsObject()
		if !ok {
			return in, apperr.Validation("notes must be an object")
		}
		in.Notes = notes
	}
	return in, nil
}

// RoundMinorUnits rounds half up, so 99.5 becomes 100 and -0.5 becomes 0.
func RoundMinorUnits(amount float64) int64 {
	return int64(math.Floor(amount + 0.5))
}

type VerifyPaymentRequest struct {
	OrderID   Field `json:"razorpay_order_id"`
	PaymentID Field `json:"razorpay_payment_id"`
	Signature Field `json:"razorpay_signature"`
}

// Values returns the three fields as strings; a missing or non-string field
// comes back empty.
func (r VerifyPaymentRequest) Values() (orderID, paymentID, signature string) {
	orderID, _ = r.OrderID.AsString()
	paymentID, _ = r.PaymentID.AsString()
	signature, _ = r.Signature.AsString()
	return orderID, paymentID, signature
}
