package types

import (
	"fmt"
	"strings"
)

// ConfigError reports an invalid or incomplete session configuration:
// a malformed secret, missing credentials on a private call, or a proxy
// that failed its identity check. It is never retried.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("kraken: configuration: %s: %v", e.Reason, e.Err)
	}
	return "kraken: configuration: " + e.Reason
}

func (e *ConfigError) Unwrap() error { return e.Err }

// TransportError wraps a network-level failure (timeout, refused
// connection, TLS failure) or a non-2xx HTTP status that carried no
// parseable exchange envelope.
type TransportError struct {
	StatusCode int // 0 when the request never produced a response
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("kraken: transport: status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("kraken: transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError reports a response whose shape does not match the
// documented {error, result} envelope. Raw holds the offending payload
// for diagnosis.
type ProtocolError struct {
	Reason string
	Raw    []byte
}

func (e *ProtocolError) Error() string {
	return "kraken: protocol violation: " + e.Reason
}

// ExchangeError carries the verbatim error codes reported by the
// exchange envelope, e.g. "EOrder:Insufficient funds". The client does
// not interpret individual codes; callers inspect them to decide
// between retry and abort.
type ExchangeError struct {
	Codes []string
}

func (e *ExchangeError) Error() string {
	return "kraken: exchange error: " + strings.Join(e.Codes, ", ")
}

// HasClass reports whether any code carries the given category, such
// as "EOrder" or "EAPI". The severity prefix (E or W) is part of the
// class as transmitted.
func (e *ExchangeError) HasClass(class string) bool {
	for _, c := range e.Codes {
		if code, _, ok := strings.Cut(c, ":"); ok && code == class {
			return true
		}
	}
	return false
}
