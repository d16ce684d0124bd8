package models

// Action is the broker's vocabulary for what an order leg does. The opening
// and closing variants use display spellings on the wire ("Buy to Open").
type Action string

const (
	ActionBuyToOpen   Action = "Buy to Open"
	ActionSellToOpen  Action = "Sell to Open"
	ActionBuyToClose  Action = "Buy to Close"
	ActionSellToClose Action = "Sell to Close"
	ActionSell        Action = "Sell"
	ActionBuy         Action = "Buy"
)

var knownActions = map[string]struct{}{
	string(ActionBuyToOpen):   {},
	string(ActionSellToOpen):  {},
	string(ActionBuyToClose):  {},
	string(ActionSellToClose): {},
	string(ActionSell):        {},
	string(ActionBuy):         {},
}

func (a *Action) UnmarshalJSON(data []byte) error {
	s, err := decodeEnum(data, "Action", knownActions)
	if err != nil {
		return err
	}

	*a = Action(s)

	return nil
}
