package models

// TimeInForce is the duration policy governing how long an unfilled order
// stays active.
type TimeInForce string

const (
	TimeInForceDay    TimeInForce = "Day"
	TimeInForceGTC    TimeInForce = "GTC"
	TimeInForceGTD    TimeInForce = "GTD"
	TimeInForceExt    TimeInForce = "Ext"
	TimeInForceGTCExt TimeInForce = "GTC Ext"
	TimeInForceIOC    TimeInForce = "IOC"
)

var knownTimesInForce = map[string]struct{}{
	string(TimeInForceDay):    {},
	string(TimeInForceGTC):    {},
	string(TimeInForceGTD):    {},
	string(TimeInForceExt):    {},
	string(TimeInForceGTCExt): {},
	string(TimeInForceIOC):    {},
}

func (t *TimeInForce) UnmarshalJSON(data []byte) error {
	s, err := decodeEnum(data, "TimeInForce", knownTimesInForce)
	if err != nil {
		return err
	}

	*t = TimeInForce(s)

	return nil
}
