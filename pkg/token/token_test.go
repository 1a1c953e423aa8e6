package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	code, err := Generate(4)
	assert.NoError(t, err)
	assert.Equal(t, 4, len(code))

	for _, r := range code {
		assert.True(t, strings.ContainsRune(alphabet, r))
	}

	code2, err := Generate(16)
	assert.NoError(t, err)
	assert.Equal(t, 16, len(code2))
}

func TestGenerate_distribution(t *testing.T) {
	counts := make(map[rune]int)
	for i := 0; i < 500; i++ {
		code, err := Generate(8)
		require.NoError(t, err)

		for _, r := range code {
			require.True(t, strings.ContainsRune(alphabet, r))
			counts[r]++
		}
	}

	// 4000 draws over a 31-character alphabet: rejection sampling keeps
	// every character reachable at roughly equal frequency
	assert.Equal(t, len(alphabet), len(counts))
}
