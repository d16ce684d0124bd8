package models

type InstrumentType string

const (
	InstrumentTypeEquity         InstrumentType = "Equity"
	InstrumentTypeEquityOption   InstrumentType = "Equity Option"
	InstrumentTypeEquityOffering InstrumentType = "Equity Offering"
	InstrumentTypeFuture         InstrumentType = "Future"
	InstrumentTypeFutureOption   InstrumentType = "Future Option"
	InstrumentTypeCryptocurrency InstrumentType = "Cryptocurrency"
)

var knownInstrumentTypes = map[string]struct{}{
	string(InstrumentTypeEquity):         {},
	string(InstrumentTypeEquityOption):   {},
	string(InstrumentTypeEquityOffering): {},
	string(InstrumentTypeFuture):         {},
	string(InstrumentTypeFutureOption):   {},
	string(InstrumentTypeCryptocurrency): {},
}

func (i *InstrumentType) UnmarshalJSON(data []byte) error {
	s, err := decodeEnum(data, "InstrumentType", knownInstrumentTypes)
	if err != nil {
		return err
	}

	*i = InstrumentType(s)

	return nil
}
