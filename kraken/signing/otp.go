package signing

import (
	"time"

	"github.com/pkg/errors"
	"github.com/pquerna/otp/totp"
)

// OTPProvider yields the second-factor code injected into private
// requests when two-factor auth is enabled on the API key.
type OTPProvider interface {
	Code() (string, error)
}

// StaticOTP is a fixed second-factor password.
type StaticOTP string

func (s StaticOTP) Code() (string, error) { return string(s), nil }

// TOTPProvider derives time-based one-time codes from an authenticator
// app setup key.
type TOTPProvider struct {
	secret string
	now    func() time.Time
}

// NewTOTPProvider wraps an authenticator setup key.
func NewTOTPProvider(secret string) *TOTPProvider {
	return &TOTPProvider{secret: secret, now: time.Now}
}

func (t *TOTPProvider) Code() (string, error) {
	code, err := totp.GenerateCode(t.secret, t.now())
	if err != nil {
		return "", errors.Wrap(err, "generate TOTP code")
	}
	return code, nil
}
