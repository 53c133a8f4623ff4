package types

import (
	"encoding/base64"
)

// Credentials is an API key plus its decoded secret. The secret is
// decoded from base64 once at session construction and held as raw
// bytes for signing; it is never logged or persisted.
type Credentials struct {
	Key    string
	Secret []byte
}

// NewCredentials validates the key pair and decodes the base64 secret.
// A malformed secret is a configuration error, raised here rather than
// on the first private call.
func NewCredentials(key, secret string) (*Credentials, error) {
	if key == "" || secret == "" {
		return nil, &ConfigError{Reason: "API key and secret must both be set"}
	}
	raw, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, &ConfigError{Reason: "API secret is not valid base64", Err: err}
	}
	return &Credentials{Key: key, Secret: raw}, nil
}
