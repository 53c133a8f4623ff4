package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEnvelopeSuccess(t *testing.T) {
	result, err := DecodeEnvelope([]byte(`{"error":[],"result":{"status":"online"}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"online"}`, string(result))
}

func TestDecodeEnvelopeErrorList(t *testing.T) {
	_, err := DecodeEnvelope([]byte(`{"error":["WGeneral:Danger","EAPI:Rate limit exceeded"]}`))
	var exchangeErr *ExchangeError
	require.ErrorAs(t, err, &exchangeErr)
	assert.Equal(t, []string{"WGeneral:Danger", "EAPI:Rate limit exceeded"}, exchangeErr.Codes)
	assert.True(t, exchangeErr.HasClass("EAPI"))
	assert.True(t, exchangeErr.HasClass("WGeneral"))
}

func TestDecodeEnvelopeViolations(t *testing.T) {
	for name, body := range map[string]string{
		"both":       `{"error":["EGeneral:Internal error"],"result":{}}`,
		"neither":    `{"error":[]}`,
		"null both":  `{"error":[],"result":null}`,
		"not object": `"hello"`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeEnvelope([]byte(body))
			var protoErr *ProtocolError
			assert.ErrorAs(t, err, &protoErr)
		})
	}
}

func TestNewCredentials(t *testing.T) {
	creds, err := NewCredentials("key", "c2VjcmV0LWJ5dGVz")
	require.NoError(t, err)
	assert.Equal(t, []byte("secret-bytes"), creds.Secret)

	_, err = NewCredentials("key", "!!! not base64")
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)

	_, err = NewCredentials("", "")
	assert.ErrorAs(t, err, &cfgErr)
}
