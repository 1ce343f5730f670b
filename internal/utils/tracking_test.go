package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrackingCode(t *testing.T) {
	code := GenerateTrackingCode()

	require.Len(t, code, 11)
	assert.True(t, strings.HasPrefix(code, "AL-"))

	for _, r := range code[3:] {
		assert.Contains(t, trackingAlphabet, string(r))
	}

	// Pas de caractères ambigus dans l'alphabet lui-même
	for _, forbidden := range []string{"0", "O", "1", "I"} {
		assert.NotContains(t, trackingAlphabet, forbidden)
	}
}

func TestGenerateTrackingCodeUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code := GenerateTrackingCode()
		assert.False(t, seen[code], "collision sur %s", code)
		seen[code] = true
	}
}
