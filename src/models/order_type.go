package models

type OrderType string

const (
	OrderTypeLimit           OrderType = "Limit"
	OrderTypeMarket          OrderType = "Market"
	OrderTypeMarketableLimit OrderType = "Marketable Limit"
	OrderTypeStop            OrderType = "Stop"
	OrderTypeStopLimit       OrderType = "Stop Limit"
	OrderTypeNotionalMarket  OrderType = "Notional Market"
)

var knownOrderTypes = map[string]struct{}{
	string(OrderTypeLimit):           {},
	string(OrderTypeMarket):          {},
	string(OrderTypeMarketableLimit): {},
	string(OrderTypeStop):            {},
	string(OrderTypeStopLimit):       {},
	string(OrderTypeNotionalMarket):  {},
}

func (o *OrderType) UnmarshalJSON(data []byte) error {
	s, err := decodeEnum(data, "OrderType", knownOrderTypes)
	if err != nil {
		return err
	}

	*o = OrderType(s)

	return nil
}
