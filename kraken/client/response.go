package client

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/betbot/gokraken/kraken/types"
)

// interpretBody separates the two response modes the exchange uses.
// JSON bodies carry the {error, result} envelope; anything else is a
// binary payload (report archives) passed through verbatim. The mode
// follows the endpoint category via the body it produced, never via
// content sniffing of JSON payloads: a JSON body is always treated as
// an envelope.
func interpretBody(body []byte) ([]byte, error) {
	if json.Valid(body) {
		return types.DecodeEnvelope(body)
	}
	return body, nil
}

// decodeResult unmarshals the result payload into out. A nil out
// discards the payload. An endpoint result that does not match the
// expected shape is a protocol violation: the envelope was fine but
// the payload contradicts the documented format.
func decodeResult(result []byte, out any) error {
	if out == nil || len(result) == 0 {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], result...)
		return nil
	}
	if err := json.Unmarshal(result, out); err != nil {
		return &types.ProtocolError{
			Reason: errors.Wrap(err, "decode result payload").Error(),
			Raw:    result,
		}
	}
	return nil
}

// pairResult decodes a market-data result keyed by the pair name plus
// a "last" cursor, e.g. OHLC and recent trades. It returns the pair
// key actually used, the rows payload and the raw cursor.
func pairResult(result []byte, pair string) (string, json.RawMessage, json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(result, &fields); err != nil {
		return "", nil, nil, &types.ProtocolError{Reason: "pair-keyed result is not an object", Raw: result}
	}
	last := fields["last"]
	delete(fields, "last")

	if rows, ok := fields[pair]; ok {
		return pair, rows, last, nil
	}
	// The exchange may answer with a normalized pair name different
	// from the requested one; with a single remaining key there is no
	// ambiguity.
	if len(fields) == 1 {
		for key, rows := range fields {
			return key, rows, last, nil
		}
	}
	return "", nil, nil, &types.ProtocolError{Reason: "pair " + pair + " missing from result", Raw: result}
}
