package utils

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"only separators", " -()", ""},
		{"senegal full", "221771234567", "+221 77 123 45 67"},
		{"senegal with plus and spaces", "+221 77 123 45 67", "+221 77 123 45 67"},
		{"senegal prefix only", "221", "+221"},
		{"senegal partial", "2217712", "+221 77 12"},
		{"senegal partial mid group", "22177123", "+221 77 123"},
		{"senegal extra digits dropped", "22177123456789", "+221 77 123 45 67"},
		{"local nine digits", "771234567", "77 123 45 67"},
		{"local with dashes", "77-123-45-67", "77 123 45 67"},
		{"local with parentheses", "(77) 123 45 67", "77 123 45 67"},
		{"local partial left alone", "12345", "12345"},
		{"local eight digits left alone", "77123456", "77123456"},
		{"ten digits no prefix", "1234567890", "1234567890"},
		{"letters stripped", "7a7b1c2d3e4f5g6h7", "77 123 45 67"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.raw))
		})
	}
}

func TestPhoneDigits(t *testing.T) {
	assert.Equal(t, "221771234567", PhoneDigits("+221 77 123 45 67"))
	assert.Equal(t, "", PhoneDigits("abc"))
}

func TestPhoneHash(t *testing.T) {
	assert.Equal(t, "", PhoneHash(""))
	assert.Len(t, PhoneHash("771234567"), 12)
	assert.Equal(t, PhoneHash("77 123 45 67"), PhoneHash("771234567"))
	assert.NotEqual(t, PhoneHash("771234567"), PhoneHash("771234568"))
}

func TestNormalizePhoneProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("nine-digit numbers are stable when re-fed their digits", prop.ForAll(
		func(rs []rune) bool {
			first := NormalizePhone(string(rs))
			return NormalizePhone(PhoneDigits(first)) == first
		},
		gen.SliceOfN(9, gen.NumChar()),
	))

	properties.Property("221-prefixed numbers are stable when re-fed their digits", prop.ForAll(
		func(rest string) bool {
			first := NormalizePhone("221" + rest)
			return NormalizePhone(PhoneDigits(first)) == first
		},
		gen.NumString(),
	))

	properties.Property("separators never change the result", prop.ForAll(
		func(digits string) bool {
			spaced := strings.Join(strings.Split(digits, ""), "- ")
			return NormalizePhone(spaced) == NormalizePhone(digits)
		},
		gen.NumString(),
	))

	properties.TestingRun(t)
}
