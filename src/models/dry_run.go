package models

// DryRunRecord is the preview projection of an order. It omits the broker id,
// timestamps and leg-level fill detail that only exist once an order is live.
type DryRunRecord struct {
	AccountNumber    AccountNumber `json:"account-number"`
	TimeInForce      TimeInForce   `json:"time-in-force"`
	OrderType        OrderType     `json:"order-type"`
	Size             uint64        `json:"size"`
	UnderlyingSymbol Symbol        `json:"underlying-symbol"`
	Price            BigDecimal    `json:"price"`
	PriceEffect      PriceEffect   `json:"price-effect"`
	Status           OrderStatus   `json:"status"`
	Cancellable      bool          `json:"cancellable"`
	Editable         bool          `json:"editable"`
	Edited           bool          `json:"edited"`
	Legs             []OrderLeg    `json:"legs"`
}
