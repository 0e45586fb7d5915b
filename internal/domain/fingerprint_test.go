package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFingerprint(t *testing.T, raw string) Fingerprint {
	t.Helper()

	fp, err := FingerprintOf(decodeConfig(t, raw))
	require.NoError(t, err)
	return fp
}

func TestFingerprintIgnoresKeyOrder(t *testing.T) {
	t.Parallel()

	a := mustFingerprint(t, `{"capacity": 10, "base_ttl": 60, "nested": {"x": 1, "y": 2}}`)
	b := mustFingerprint(t, `{"nested": {"y": 2, "x": 1}, "base_ttl": 60, "capacity": 10}`)

	assert.Equal(t, a, b)
	assert.Len(t, string(a), 64)
}

func TestFingerprintDistinguishesValues(t *testing.T) {
	t.Parallel()

	base := mustFingerprint(t, `{"capacity": 10, "base_ttl": 60}`)

	tests := []struct {
		name string
		raw  string
	}{
		{name: "changed value", raw: `{"capacity": 11, "base_ttl": 60}`},
		{name: "extra key", raw: `{"capacity": 10, "base_ttl": 60, "boredom_weight": 0}`},
		{name: "missing key", raw: `{"capacity": 10}`},
		{name: "integer vs float literal", raw: `{"capacity": 10.0, "base_ttl": 60}`},
		{name: "number vs string", raw: `{"capacity": "10", "base_ttl": 60}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base, mustFingerprint(t, tt.raw))
		})
	}
}

// Array element order is part of the fingerprint; reordered arrays miss the cache.
func TestFingerprintArrayOrderIsSignificant(t *testing.T) {
	t.Parallel()

	a := mustFingerprint(t, `{"windows": [1, 2, 3]}`)
	b := mustFingerprint(t, `{"windows": [3, 2, 1]}`)

	assert.NotEqual(t, a, b)
}

func TestFingerprintShort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", Fingerprint("abc").Short())
	assert.Equal(t, "0123456789ab", Fingerprint("0123456789abcdef").Short())
}
