package models

// OrderLeg is one instrument-level component of an outbound order. Quantity
// travels as a bare JSON number.
type OrderLeg struct {
	InstrumentType InstrumentType `json:"instrument-type"`
	Symbol         Symbol         `json:"symbol"`
	Quantity       FloatDecimal   `json:"quantity"`
	Action         Action         `json:"action"`
}

func NewOrderLeg(instrumentType InstrumentType, symbol Symbol, quantity FloatDecimal, action Action) OrderLeg {
	return OrderLeg{
		InstrumentType: instrumentType,
		Symbol:         symbol,
		Quantity:       quantity,
		Action:         action,
	}
}

// Order is an outbound order request. Construct it through OrderBuilder; the
// broker requires all five fields.
type Order struct {
	TimeInForce TimeInForce `json:"time-in-force"`
	OrderType   OrderType   `json:"order-type"`
	Price       BigDecimal  `json:"price"`
	PriceEffect PriceEffect `json:"price-effect"`
	Legs        []OrderLeg  `json:"legs"`
}

// OrderBuilder accumulates the required fields of an Order. Build fails with a
// MissingFieldError naming the first field that was never set. An explicitly
// set empty leg slice is passed through untouched; whether the broker accepts
// it is decided server-side.
type OrderBuilder struct {
	timeInForce *TimeInForce
	orderType   *OrderType
	price       *BigDecimal
	priceEffect *PriceEffect
	legs        []OrderLeg
	legsSet     bool
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{}
}

func (b *OrderBuilder) TimeInForce(v TimeInForce) *OrderBuilder {
	b.timeInForce = &v
	return b
}

func (b *OrderBuilder) OrderType(v OrderType) *OrderBuilder {
	b.orderType = &v
	return b
}

func (b *OrderBuilder) Price(v BigDecimal) *OrderBuilder {
	b.price = &v
	return b
}

func (b *OrderBuilder) PriceEffect(v PriceEffect) *OrderBuilder {
	b.priceEffect = &v
	return b
}

func (b *OrderBuilder) Legs(legs []OrderLeg) *OrderBuilder {
	b.legs = append([]OrderLeg(nil), legs...)
	b.legsSet = true
	return b
}

func (b *OrderBuilder) AddLeg(leg OrderLeg) *OrderBuilder {
	b.legs = append(b.legs, leg)
	b.legsSet = true
	return b
}

func (b *OrderBuilder) Build() (*Order, error) {
	if b.timeInForce == nil {
		return nil, &MissingFieldError{Field: "time-in-force"}
	}

	if b.orderType == nil {
		return nil, &MissingFieldError{Field: "order-type"}
	}

	if b.price == nil {
		return nil, &MissingFieldError{Field: "price"}
	}

	if b.priceEffect == nil {
		return nil, &MissingFieldError{Field: "price-effect"}
	}

	if !b.legsSet {
		return nil, &MissingFieldError{Field: "legs"}
	}

	return &Order{
		TimeInForce: *b.timeInForce,
		OrderType:   *b.orderType,
		Price:       *b.price,
		PriceEffect: *b.priceEffect,
		Legs:        b.legs,
	}, nil
}
