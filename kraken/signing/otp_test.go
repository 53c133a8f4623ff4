package signing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticOTP(t *testing.T) {
	code, err := StaticOTP("/&59s^wqUU=baQ~W").Code()
	require.NoError(t, err)
	assert.Equal(t, "/&59s^wqUU=baQ~W", code)
}

func TestTOTPProvider(t *testing.T) {
	p := NewTOTPProvider("E452ZYHEX22AXGKIFUGQVPXF")
	p.now = func() time.Time { return time.Unix(1700000000, 0) }

	code, err := p.Code()
	require.NoError(t, err)
	assert.Len(t, code, 6)

	again, err := p.Code()
	require.NoError(t, err)
	assert.Equal(t, code, again, "same timestep must give same code")
}

func TestTOTPProviderBadSecret(t *testing.T) {
	p := NewTOTPProvider("not base32 !!!")
	_, err := p.Code()
	assert.Error(t, err)
}
