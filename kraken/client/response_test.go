package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betbot/gokraken/kraken/types"
)

func TestInterpretBodySuccess(t *testing.T) {
	result, err := interpretBody([]byte(`{"error":[],"result":{"unixtime":1616336594}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"unixtime":1616336594}`, string(result))
}

func TestInterpretBodyExchangeError(t *testing.T) {
	_, err := interpretBody([]byte(`{"error":["EOrder:Insufficient funds"],"result":null}`))
	var exchangeErr *types.ExchangeError
	require.ErrorAs(t, err, &exchangeErr)
	assert.Equal(t, []string{"EOrder:Insufficient funds"}, exchangeErr.Codes)
	assert.True(t, exchangeErr.HasClass("EOrder"))
	assert.False(t, exchangeErr.HasClass("EAPI"))
}

func TestInterpretBodyProtocolViolations(t *testing.T) {
	cases := map[string]string{
		"both populated":  `{"error":["EGeneral:Internal error"],"result":{"x":1}}`,
		"neither present": `{"error":[],"result":null}`,
		"not an envelope": `[1,2,3]`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := interpretBody([]byte(body))
			var protoErr *types.ProtocolError
			require.ErrorAs(t, err, &protoErr)
			assert.Equal(t, []byte(body), protoErr.Raw)
		})
	}
}

func TestInterpretBodyBinaryPassthrough(t *testing.T) {
	archive := []byte{0x50, 0x4b, 0x03, 0x04, 0xff, 0x00} // zip magic + junk
	result, err := interpretBody(archive)
	require.NoError(t, err)
	assert.Equal(t, archive, result)
}

func TestDecodeResultShapeMismatch(t *testing.T) {
	var out struct {
		UnixTime int64 `json:"unixtime"`
	}
	err := decodeResult([]byte(`"just a string"`), &out)
	var protoErr *types.ProtocolError
	assert.ErrorAs(t, err, &protoErr)
}

func TestPairResult(t *testing.T) {
	result := []byte(`{"XXBTZUSD":[[1,"2","3"]],"last":42}`)

	key, rows, last, err := pairResult(result, "XXBTZUSD")
	require.NoError(t, err)
	assert.Equal(t, "XXBTZUSD", key)
	assert.JSONEq(t, `[[1,"2","3"]]`, string(rows))
	assert.Equal(t, json.RawMessage(`42`), last)

	// Requested altname, exchange answered with the normalized name.
	key, _, _, err = pairResult(result, "XBTUSD")
	require.NoError(t, err)
	assert.Equal(t, "XXBTZUSD", key)

	_, _, _, err = pairResult([]byte(`{"A":[],"B":[],"last":1}`), "C")
	var protoErr *types.ProtocolError
	assert.ErrorAs(t, err, &protoErr)
}
