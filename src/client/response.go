package client

import (
	"encoding/json"
	"fmt"

	"github.com/papertrade-labs/tastyworks-go/src/models"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *BrokerError    `json:"error"`
}

// parseResponse decodes a raw API body into either the typed payload or the
// broker's own error. The discriminator is structural: a body carrying an
// "error" member is a failure no matter what the HTTP status said.
func parseResponse[T any](body []byte) (T, error) {
	var payload T

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return payload, models.NewDecodeError("response is not a valid API envelope", err)
	}

	if env.Error != nil {
		return payload, env.Error
	}

	if env.Data == nil {
		return payload, models.NewDecodeError("response carries neither data nor error", nil)
	}

	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return payload, models.NewDecodeError(fmt.Sprintf("failed to decode data payload into %T", payload), err)
	}

	return payload, nil
}
