package models

// PriceEffect is the sign convention attached to every monetary amount. An
// amount is never interpreted without its paired effect; the broker's
// convention governs, not the sign of the number.
type PriceEffect string

const (
	PriceEffectDebit  PriceEffect = "Debit"
	PriceEffectCredit PriceEffect = "Credit"
	PriceEffectNone   PriceEffect = "None"
)

var knownPriceEffects = map[string]struct{}{
	string(PriceEffectDebit):  {},
	string(PriceEffectCredit): {},
	string(PriceEffectNone):   {},
}

func (p *PriceEffect) UnmarshalJSON(data []byte) error {
	s, err := decodeEnum(data, "PriceEffect", knownPriceEffects)
	if err != nil {
		return err
	}

	*p = PriceEffect(s)

	return nil
}
