package shortcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		code, err := Generate()
		require.NoError(t, err)
		require.Len(t, code, Length)

		for _, r := range code {
			assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q in %q", r, code)
		}

		seen[code] = true
	}

	// 62^8 codes; 1000 draws colliding would point at a broken generator
	assert.Len(t, seen, 1000)
}

func TestValidCustom(t *testing.T) {
	valid := []string{"abcd", "my-link", "my_link", "ABC123", strings.Repeat("a", 32)}
	for _, code := range valid {
		assert.True(t, ValidCustom(code), "expected %q to be valid", code)
	}

	invalid := []string{
		"",
		"abc",                      // too short
		strings.Repeat("a", 33),    // too long
		"has space",
		"has/slash",
		"uniçode",
		"dot.dot",
	}
	for _, code := range invalid {
		assert.False(t, ValidCustom(code), "expected %q to be invalid", code)
	}
}
