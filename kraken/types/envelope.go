package types

import (
	"bytes"
	"encoding/json"
)

// Envelope is the outer structure of every JSON response from the
// exchange: a list of error codes and an endpoint-specific result.
// Exactly one of the two is populated; any other combination is a
// protocol violation.
type Envelope struct {
	Error  []string        `json:"error"`
	Result json.RawMessage `json:"result"`
}

// DecodeEnvelope parses a response body and enforces the envelope
// contract. On success it returns the raw result payload; a non-empty
// error list surfaces as *ExchangeError, and a malformed or
// inconsistent envelope as *ProtocolError.
func DecodeEnvelope(body []byte) (json.RawMessage, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ProtocolError{Reason: "body is not a response envelope", Raw: body}
	}

	hasResult := len(env.Result) > 0 && !bytes.Equal(env.Result, []byte("null"))
	if len(env.Error) > 0 {
		if hasResult {
			return nil, &ProtocolError{Reason: "envelope has both error and result", Raw: body}
		}
		return nil, &ExchangeError{Codes: env.Error}
	}
	if !hasResult {
		return nil, &ProtocolError{Reason: "envelope has neither error nor result", Raw: body}
	}
	return env.Result, nil
}
