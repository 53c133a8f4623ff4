package client

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/betbot/gokraken/kraken/signing"
)

func TestParamsCanonicalEncoding(t *testing.T) {
	p := Params{
		"pair":     "XBTUSD",
		"volume":   decimal.RequireFromString("1.25"),
		"count":    100,
		"since":    int64(1616663618),
		"trades":   true,
		"validate": false,
		"price":    0.00000001, // must not become 1e-08
		"userref":  "",
		"absent":   nil,
	}
	v := p.values()

	assert.Equal(t, "XBTUSD", v.Get("pair"))
	assert.Equal(t, "1.25", v.Get("volume"))
	assert.Equal(t, "100", v.Get("count"))
	assert.Equal(t, "1616663618", v.Get("since"))
	assert.Equal(t, "true", v.Get("trades"))
	assert.Equal(t, "0.00000001", v.Get("price"))

	_, hasValidate := v["validate"]
	assert.False(t, hasValidate, "false flags are omitted")
	_, hasUserref := v["userref"]
	assert.False(t, hasUserref, "empty strings are omitted")
	_, hasAbsent := v["absent"]
	assert.False(t, hasAbsent, "nil values are omitted")
}

// The signature must cover the exact bytes sent, so encoding the same
// parameter set twice and signing each encoding must agree.
func TestParamsEncodingReproducibleForSigning(t *testing.T) {
	secret := []byte("0123456789abcdef0123456789abcdef")
	build := func() Params {
		return Params{
			"pair":      "XBTUSD",
			"type":      "buy",
			"ordertype": "limit",
			"price":     decimal.RequireFromString("37500.0"),
			"volume":    1.25,
		}
	}

	first := build().values()
	second := build().values()
	first.Set("nonce", "1616492376594")
	second.Set("nonce", "1616492376594")

	assert.Equal(t, first.Encode(), second.Encode())
	assert.Equal(t,
		signing.Sign(secret, "/0/private/AddOrder", first),
		signing.Sign(secret, "/0/private/AddOrder", second))
}

func TestAddOrderRequestParams(t *testing.T) {
	req := AddOrderRequest{
		Pair:           "XXBTZEUR",
		Type:           "buy",
		OrderType:      "limit",
		Volume:         decimal.RequireFromString("0.5"),
		Price:          decimal.RequireFromString("21000"),
		Validate:       true,
		CloseOrderType: "stop-loss",
		ClosePrice:     decimal.RequireFromString("19000"),
	}
	v := req.params().values()

	assert.Equal(t, "XXBTZEUR", v.Get("pair"))
	assert.Equal(t, "0.5", v.Get("volume"))
	assert.Equal(t, "21000", v.Get("price"))
	assert.Equal(t, "true", v.Get("validate"))
	assert.Equal(t, "agree", v.Get("trading_agreement"))
	assert.Equal(t, "stop-loss", v.Get("close[ordertype]"))
	assert.Equal(t, "19000", v.Get("close[price]"))
	_, hasPrice2 := v["price2"]
	assert.False(t, hasPrice2, "zero decimals are omitted")
}
