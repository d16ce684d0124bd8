package models

// Symbol is a normalized instrument ticker. Symbols compare, order and hash by
// their string value.
type Symbol string

func NewSymbol(value string) Symbol {
	return Symbol(value)
}

func (s Symbol) String() string {
	return string(s)
}

// OrderID is the broker-assigned order identifier. It is opaque; no structure
// is assumed.
type OrderID string

func (id OrderID) String() string {
	return string(id)
}

// AccountNumber identifies a customer trading account, e.g. 5WT0001.
type AccountNumber string
