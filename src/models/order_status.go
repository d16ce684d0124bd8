package models

// OrderStatus is the broker-reported lifecycle state of an order. The broker
// owns the transitions; this side only decodes and exposes the state.
type OrderStatus string

const (
	OrderStatusReceived         OrderStatus = "Received"
	OrderStatusRouted           OrderStatus = "Routed"
	OrderStatusInFlight         OrderStatus = "In Flight"
	OrderStatusLive             OrderStatus = "Live"
	OrderStatusCancelRequested  OrderStatus = "Cancel Requested"
	OrderStatusReplaceRequested OrderStatus = "Replace Requested"
	OrderStatusContingent       OrderStatus = "Contingent"
	OrderStatusFilled           OrderStatus = "Filled"
	OrderStatusCancelled        OrderStatus = "Cancelled"
	OrderStatusExpired          OrderStatus = "Expired"
	OrderStatusRejected         OrderStatus = "Rejected"
	OrderStatusRemoved          OrderStatus = "Removed"
	OrderStatusPartiallyRemoved OrderStatus = "Partially Removed"
)

var knownOrderStatuses = map[string]struct{}{
	string(OrderStatusReceived):         {},
	string(OrderStatusRouted):           {},
	string(OrderStatusInFlight):         {},
	string(OrderStatusLive):             {},
	string(OrderStatusCancelRequested):  {},
	string(OrderStatusReplaceRequested): {},
	string(OrderStatusContingent):       {},
	string(OrderStatusFilled):           {},
	string(OrderStatusCancelled):        {},
	string(OrderStatusExpired):          {},
	string(OrderStatusRejected):         {},
	string(OrderStatusRemoved):          {},
	string(OrderStatusPartiallyRemoved): {},
}

// IsTerminal reports whether the broker will no longer transition the order.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusFilled, OrderStatusCancelled, OrderStatusExpired,
		OrderStatusRejected, OrderStatusRemoved, OrderStatusPartiallyRemoved:
		return true
	}

	return false
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	v, err := decodeEnum(data, "OrderStatus", knownOrderStatuses)
	if err != nil {
		return err
	}

	*s = OrderStatus(v)

	return nil
}
