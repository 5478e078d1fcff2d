package entity

// PaymentOrder is the gateway's order object, returned to the client as-is.
// Nothing about it is stored locally.
type PaymentOrder map[string]any
