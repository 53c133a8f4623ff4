package client

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/betbot/gokraken/kraken/signing"
	"github.com/betbot/gokraken/kraken/types"
)

// headers required on private calls.
const (
	headerAPIKey  = "API-Key"
	headerAPISign = "API-Sign"
)

// queryPublic dispatches a public endpoint call and decodes the result
// payload into out.
func (c *Client) queryPublic(ctx context.Context, method string, cost int, params Params, out any) error {
	body, err := c.dispatch(ctx, "/"+c.version+"/public/"+method, cost, params.values(), nil)
	if err != nil {
		return err
	}
	return decodeResult(body, out)
}

// queryPrivate builds, signs and dispatches a private endpoint call.
// It fails with a configuration error before any network traffic when
// the session has no credentials.
func (c *Client) queryPrivate(ctx context.Context, method string, cost int, params Params, out any) error {
	body, err := c.queryPrivateBytes(ctx, method, cost, params)
	if err != nil {
		return err
	}
	return decodeResult(body, out)
}

// queryPrivateRaw is the binary-response variant used by report
// retrieval: the result bytes come back untouched.
func (c *Client) queryPrivateRaw(ctx context.Context, method string, cost int, params Params) ([]byte, error) {
	return c.queryPrivateBytes(ctx, method, cost, params)
}

func (c *Client) queryPrivateBytes(ctx context.Context, method string, cost int, params Params) ([]byte, error) {
	if c.creds == nil {
		return nil, &types.ConfigError{Reason: "private call " + method + " on a session without credentials"}
	}

	values := params.values()
	values.Set("nonce", strconv.FormatInt(c.nonce.Next(), 10))
	if c.otp != nil {
		code, err := c.otp.Code()
		if err != nil {
			return nil, &types.ConfigError{Reason: "second-factor code", Err: err}
		}
		values.Set("otp", code)
	}

	path := "/" + c.version + "/private/" + method
	headers := map[string]string{
		headerAPIKey:  c.creds.Key,
		headerAPISign: signing.Sign(c.creds.Secret, path, values),
	}
	return c.dispatch(ctx, path, cost, values, headers)
}

// dispatch performs one POST, after charging the optional rate-limit
// counter, and returns the interpreted result payload. The form body
// is pre-encoded so the bytes sent are exactly the bytes signed.
func (c *Client) dispatch(ctx context.Context, path string, cost int, values url.Values, headers map[string]string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, cost); err != nil {
			return nil, errors.Wrap(err, "rate limit")
		}
	}

	reqID := uuid.NewString()[:8]
	start := time.Now()
	c.log.WithFields(map[string]any{"req": reqID, "path": path}).Debug("kraken request")

	req := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetBody(values.Encode())
	for k, v := range headers {
		req.SetHeader(k, v)
	}

	resp, err := req.Post(path)
	if err != nil {
		c.log.WithFields(map[string]any{"req": reqID, "err": err}).Debug("kraken request failed")
		return nil, &types.TransportError{Err: err}
	}

	c.log.WithFields(map[string]any{
		"req":      reqID,
		"status":   resp.StatusCode(),
		"duration": time.Since(start),
	}).Debug("kraken response")

	body := resp.Body()
	if !resp.IsSuccess() {
		// The exchange reports most failures inside a 2xx envelope,
		// but some gateways answer with a status code and an envelope
		// body. Surface the envelope error when one is present.
		if _, envErr := types.DecodeEnvelope(body); envErr != nil {
			var exchangeErr *types.ExchangeError
			if errors.As(envErr, &exchangeErr) {
				return nil, exchangeErr
			}
		}
		return nil, &types.TransportError{
			StatusCode: resp.StatusCode(),
			Err:        errors.Errorf("unexpected HTTP status: %s", resp.Status()),
		}
	}

	return interpretBody(body)
}
