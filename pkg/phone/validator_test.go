package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeE164(t *testing.T) {
	e164, err := NormalizeE164("(813) 819-1450", "US")
	require.NoError(t, err)
	assert.Equal(t, "+18138191450", e164)

	// Already normalized numbers pass through
	e164, err = NormalizeE164("+18138191450", "")
	require.NoError(t, err)
	assert.Equal(t, "+18138191450", e164)
}

func TestNormalizeE164_Invalid(t *testing.T) {
	_, err := NormalizeE164("", "US")
	assert.Error(t, err)

	_, err = NormalizeE164("123", "US")
	assert.Error(t, err)

	_, err = NormalizeE164("not a phone", "US")
	assert.Error(t, err)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("813-819-1450", "US"))
	assert.False(t, IsValid("0000", "US"))
}
