package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// codeBytes is the entropy behind a generated short code. Six random
// bytes base64url-encode to exactly eight characters.
const codeBytes = 6

// GenerateShortCode returns a URL-safe random code of the given length,
// capped at 8 characters.
func GenerateShortCode(length int) string {
	b := make([]byte, codeBytes)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(err)
	}

	code := base64.RawURLEncoding.EncodeToString(b)
	if length > 0 && length < len(code) {
		code = code[:length]
	}
	return code
}
