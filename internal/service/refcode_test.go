package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReferralCode(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		code, err := newReferralCode()
		require.NoError(t, err)
		assert.Len(t, code, refCodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(refCodeAlphabet, r),
				"unexpected character %q in code %q", r, code)
		}
		seen[code] = struct{}{}
	}

	// 100 кодов из пространства 31^8 не должны совпасть.
	assert.Greater(t, len(seen), 90)
}
