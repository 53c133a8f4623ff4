package client

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betbot/gokraken/kraken/types"
)

// identityServers returns a direct IP-echo server and a fake forward
// proxy that answers every proxied request with proxyIP.
func identityServers(t *testing.T, directIP, proxyIP string) (checkURL, proxyURL string) {
	t.Helper()
	echo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ip":"` + directIP + `"}`))
	}))
	t.Cleanup(echo.Close)

	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Plain-HTTP proxying arrives as an absolute-form request;
		// answer in place of the upstream.
		w.Write([]byte(`{"ip":"` + proxyIP + `"}`))
	}))
	t.Cleanup(proxy.Close)

	return echo.URL, proxy.URL
}

func TestVerifyProxyIdentityChanged(t *testing.T) {
	checkURL, proxyURL := identityServers(t, "203.0.113.7", "198.51.100.99")
	assert.NoError(t, verifyProxyIdentity(proxyURL, checkURL, 5*time.Second))
}

func TestVerifyProxyIdentityUnchangedFailsConstruction(t *testing.T) {
	checkURL, proxyURL := identityServers(t, "203.0.113.7", "203.0.113.7")

	err := verifyProxyIdentity(proxyURL, checkURL, 5*time.Second)
	var cfgErr *types.ConfigError
	require.ErrorAs(t, err, &cfgErr)

	// The same failure must stop New before any call can be issued.
	_, err = New(Options{
		Proxy:            proxyURL,
		IdentityCheckURL: checkURL,
	})
	assert.ErrorAs(t, err, &cfgErr)
}

func TestFetchIdentityShapes(t *testing.T) {
	for name, body := range map[string]string{
		"ip field":     `{"ip":"203.0.113.7"}`,
		"origin field": `{"origin":"203.0.113.7"}`,
		"plain text":   "203.0.113.7\n",
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer srv.Close()

			ip, err := fetchIdentity(newIdentityProbe(5*time.Second), srv.URL)
			require.NoError(t, err)
			assert.Equal(t, "203.0.113.7", ip)
		})
	}
}
