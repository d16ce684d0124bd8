package models

// FullOrder is the fully materialized projection of an order. Unlike
// LiveOrderRecord its size is an exact decimal rather than an integer count.
type FullOrder struct {
	ID               OrderID       `json:"id"`
	AccountNumber    AccountNumber `json:"account-number"`
	TimeInForce      TimeInForce   `json:"time-in-force"`
	OrderType        OrderType     `json:"order-type"`
	Size             BigDecimal    `json:"size"`
	UnderlyingSymbol Symbol        `json:"underlying-symbol"`
	Price            BigDecimal    `json:"price"`
	PriceEffect      PriceEffect   `json:"price-effect"`
	Status           OrderStatus   `json:"status"`
	Cancellable      bool          `json:"cancellable"`
	Editable         bool          `json:"editable"`
	Edited           bool          `json:"edited"`
	Legs             []OrderLeg    `json:"legs"`
}
