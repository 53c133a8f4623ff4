package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"net/url"
)

// Sign computes the request signature for a private call:
//
//	base64(HMAC-SHA512(secret, path || SHA256(nonce || encodedBody)))
//
// secret is the raw API secret after base64 decoding, path the full
// URL path including the version prefix, and values the exact form
// body that will be sent, nonce included. The byte layout is a wire
// compatibility requirement; values.Encode() is used both here and
// when the body is sent so the signature covers the bytes on the wire.
func Sign(secret []byte, path string, values url.Values) string {
	sha := sha256.New()
	sha.Write([]byte(values.Get("nonce") + values.Encode()))

	mac := hmac.New(sha512.New, secret)
	mac.Write([]byte(path))
	mac.Write(sha.Sum(nil))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
