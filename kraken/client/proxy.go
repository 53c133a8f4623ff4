package client

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/betbot/gokraken/kraken/types"
)

// verifyProxyIdentity fetches the caller's apparent IP once directly
// and once through the proxy. Session construction fails unless the
// two differ.
func verifyProxyIdentity(proxyURL, checkURL string, timeout time.Duration) error {
	direct, err := fetchIdentity(newIdentityProbe(timeout), checkURL)
	if err != nil {
		return &types.ConfigError{Reason: "identity check without proxy", Err: err}
	}
	proxied, err := fetchIdentity(newIdentityProbe(timeout).SetProxy(proxyURL), checkURL)
	if err != nil {
		return &types.ConfigError{Reason: "identity check through proxy", Err: err}
	}
	if direct == proxied {
		return &types.ConfigError{Reason: "proxy does not change the apparent network identity (" + direct + ")"}
	}
	return nil
}

func newIdentityProbe(timeout time.Duration) *resty.Client {
	return resty.New().SetTimeout(timeout)
}

// fetchIdentity reads the IP-echo endpoint. Both common response
// shapes are accepted: a JSON object with an "ip" or "origin" field,
// or the bare address as text.
func fetchIdentity(rc *resty.Client, checkURL string) (string, error) {
	resp, err := rc.R().Get(checkURL)
	if err != nil {
		return "", err
	}
	body := resp.Body()

	var fields map[string]string
	if err := json.Unmarshal(body, &fields); err == nil {
		if ip := fields["ip"]; ip != "" {
			return ip, nil
		}
		if origin := fields["origin"]; origin != "" {
			return origin, nil
		}
	}
	return strings.TrimSpace(string(body)), nil
}
