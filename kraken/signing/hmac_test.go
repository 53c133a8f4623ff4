package signing

import (
	"encoding/base64"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Vector published in the exchange's API documentation.
func TestSignKnownVector(t *testing.T) {
	secret, err := base64.StdEncoding.DecodeString(
		"kQH5HW/8p1uGOVjbgWA7FunAmGO8lsSUXNsu3eow76sz84Q18fWxnyRzBHCd3pd5nE9qa99HAZtuZuj6F1huXg==")
	require.NoError(t, err)

	values := url.Values{}
	values.Set("nonce", "1616492376594")
	values.Set("ordertype", "limit")
	values.Set("pair", "XBTUSD")
	values.Set("price", "37500")
	values.Set("type", "buy")
	values.Set("volume", "1.25")

	sig := Sign(secret, "/0/private/AddOrder", values)
	assert.Equal(t,
		"4/dpxb3iT4tp/ZCVEwSnEsLxx0bqyhLpdfOpc6fn7OR8+UClSV5n9E6aSS8MPtnRfp32bAb0nmbRn6H8ndwLUQ==",
		sig)
}

func TestSignDeterministic(t *testing.T) {
	secret := []byte("not a real secret, any bytes work")
	values := url.Values{}
	values.Set("nonce", "1700000000000")
	values.Set("asset", "ZEUR")

	first := Sign(secret, "/0/private/TradeBalance", values)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Sign(secret, "/0/private/TradeBalance", values))
	}
}

func TestSignCoversPathAndBody(t *testing.T) {
	secret := []byte("0123456789abcdef")
	values := url.Values{}
	values.Set("nonce", "1700000000000")

	base := Sign(secret, "/0/private/Balance", values)
	assert.NotEqual(t, base, Sign(secret, "/0/private/TradeBalance", values))

	changed := url.Values{}
	changed.Set("nonce", "1700000000001")
	assert.NotEqual(t, base, Sign(secret, "/0/private/Balance", changed))
}
