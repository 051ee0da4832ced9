// Package knol fingerprints card content so the same card imported twice can
// be recognised.
package knol

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// Normalize joins question and answer after lowercasing and trimming each
// and unifying line endings.
func Normalize(question, answer string) string {
	normalizePart := func(part string) string {
		p := strings.ToLower(part)
		p = strings.ReplaceAll(p, "\r\n", "\n")
		return strings.TrimSpace(p)
	}

	// The newline keeps "ab"+"c" and "a"+"bc" apart.
	return normalizePart(question) + "\n" + normalizePart(answer)
}

// Hash returns the hex SHA-256 of the normalized question and answer.
func Hash(question, answer string) string {
	sum := sha256.Sum256([]byte(Normalize(question, answer)))
	return fmt.Sprintf("%x", sum)
}
