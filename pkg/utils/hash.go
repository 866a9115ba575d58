package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	h := sha256.New()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}

// PhoneHash returns a short, stable identifier for a phone number so log
// lines can be correlated without writing the number itself. Formatting is
// ignored: "77 123 45 67" and "771234567" hash the same.
func PhoneHash(phone string) string {
	digits := PhoneDigits(phone)
	if digits == "" {
		return ""
	}
	return HashString(digits)[:12]
}
