package utils

import (
	"regexp"
	"strings"
)

// Senegal's country calling code. Numbers starting with it get the
// international layout.
const senegalPrefix = "221"

var (
	nonDigit     = regexp.MustCompile(`\D`)
	localPattern = regexp.MustCompile(`(\d{2})(\d{3})(\d{2})(\d{2})`)
)

// PhoneDigits strips every non-digit character from s.
func PhoneDigits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// NormalizePhone formats raw keystrokes into a display phone number. It is
// called on every keystroke, so partial input must pass through without error.
//
//	"221771234567" -> "+221 77 123 45 67"
//	"771234567"    -> "77 123 45 67"
//	"12345"        -> "12345"
//
// Numbers of ten or more digits without the 221 prefix are left ungrouped.
func NormalizePhone(raw string) string {
	digits := PhoneDigits(raw)
	switch {
	case digits == "":
		return ""
	case strings.HasPrefix(digits, senegalPrefix):
		formatted := "+221 " + slice(digits, 3, 5) + " " + slice(digits, 5, 8) + " " +
			slice(digits, 8, 10) + " " + slice(digits, 10, 12)
		return strings.TrimSpace(formatted)
	case len(digits) <= 9:
		return strings.TrimSpace(localPattern.ReplaceAllString(digits, "$1 $2 $3 $4"))
	default:
		return digits
	}
}

// slice returns s[from:to] clamped to the string bounds.
func slice(s string, from, to int) string {
	if from >= len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}
