package models

// LiveOrderLeg is the broker's projection of one leg of a placed order.
type LiveOrderLeg struct {
	InstrumentType    InstrumentType `json:"instrument-type"`
	Symbol            Symbol         `json:"symbol"`
	Quantity          FloatDecimal   `json:"quantity"`
	RemainingQuantity FloatDecimal   `json:"remaining-quantity"`
	Action            Action         `json:"action"`
	Fills             []string       `json:"fills"`
}

// LiveOrderRecord is the broker's projection of a placed order.
type LiveOrderRecord struct {
	ID                       uint64         `json:"id"`
	AccountNumber            AccountNumber  `json:"account-number"`
	TimeInForce              TimeInForce    `json:"time-in-force"`
	OrderType                OrderType      `json:"order-type"`
	Size                     uint64         `json:"size"`
	UnderlyingSymbol         Symbol         `json:"underlying-symbol"`
	UnderlyingInstrumentType InstrumentType `json:"underlying-instrument-type"`
	Price                    BigDecimal     `json:"price"`
	PriceEffect              PriceEffect    `json:"price-effect"`
	Status                   OrderStatus    `json:"status"`
	Cancellable              bool           `json:"cancellable"`
	Editable                 bool           `json:"editable"`
	Edited                   bool           `json:"edited"`
	ReceivedAt               string         `json:"received-at"`
	UpdatedAt                uint64         `json:"updated-at"`
	GlobalRequestID          string         `json:"global-request-id"`
	Legs                     []LiveOrderLeg `json:"legs"`
}
