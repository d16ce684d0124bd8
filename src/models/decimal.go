package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BigDecimal is an exact-precision broker amount. Its wire form is a JSON
// string carrying the scale the broker reported: decoding "9050.50" and
// encoding again produces "9050.50", never "9050.5". Bare JSON numbers are
// also accepted on decode. No rounding is ever applied.
type BigDecimal struct {
	decimal.Decimal
}

func NewBigDecimalFromString(value string) (BigDecimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return BigDecimal{}, NewDecodeError(fmt.Sprintf("invalid decimal %q", value), err)
	}

	return BigDecimal{d}, nil
}

// WireString renders the value with the scale it was parsed with.
func (d BigDecimal) WireString() string {
	if d.Exponent() < 0 {
		return d.StringFixed(-d.Exponent())
	}

	return d.String()
}

func (d BigDecimal) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.WireString() + `"`), nil
}

func (d *BigDecimal) UnmarshalJSON(data []byte) error {
	v, err := decodeDecimal(data)
	if err != nil {
		return err
	}

	d.Decimal = v

	return nil
}

// FloatDecimal is a decimal carried on the wire as a bare JSON number, used
// for quantity-like fields. Decoding accepts strings as well; digits are
// preserved exactly either way.
type FloatDecimal struct {
	decimal.Decimal
}

func NewFloatDecimalFromString(value string) (FloatDecimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return FloatDecimal{}, NewDecodeError(fmt.Sprintf("invalid decimal %q", value), err)
	}

	return FloatDecimal{d}, nil
}

func (d FloatDecimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *FloatDecimal) UnmarshalJSON(data []byte) error {
	v, err := decodeDecimal(data)
	if err != nil {
		return err
	}

	d.Decimal = v

	return nil
}

func decodeDecimal(data []byte) (decimal.Decimal, error) {
	s := string(data)

	if s == "null" {
		return decimal.Decimal{}, nil
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, NewDecodeError(fmt.Sprintf("invalid decimal %q", s), err)
	}

	return d, nil
}
