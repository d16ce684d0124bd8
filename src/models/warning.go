package models

// Warning is a broker-issued advisory attached to an order response. Warnings
// do not block the order.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
