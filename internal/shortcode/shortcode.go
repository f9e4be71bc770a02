// Package shortcode generates and validates short link codes.
package shortcode

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

const (
	alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// Length of generated codes. Collisions are tolerated; the store's
	// uniqueness constraint plus the insert retry loop absorb them.
	Length = 8
)

var customCodePattern = regexp.MustCompile(`^[\w-]{4,32}$`)

// Generate returns a random code of Length characters from the 62-symbol
// alphabet.
func Generate() (string, error) {
	code := make([]byte, Length)
	max := big.NewInt(int64(len(alphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random code: %w", err)
		}
		code[i] = alphabet[n.Int64()]
	}
	return string(code), nil
}

// ValidCustom reports whether a caller-supplied code is acceptable:
// 4-32 word characters or hyphens.
func ValidCustom(code string) bool {
	return customCodePattern.MatchString(code)
}
