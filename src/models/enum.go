package models

import (
	"encoding/json"
	"fmt"
)

// decodeEnum parses a JSON string and checks it against an enum's known wire
// spellings. Unrecognized strings fail; there is no default variant.
func decodeEnum(data []byte, enum string, known map[string]struct{}) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", NewDecodeError(fmt.Sprintf("%s: expected a JSON string", enum), err)
	}

	if _, ok := known[s]; !ok {
		return "", NewUnknownVariantError(enum, s)
	}

	return s, nil
}
