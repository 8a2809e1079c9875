package utils

import (
	"strings"
)

// digitsOnly strips everything but ASCII digits from s
func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCardNumber normalizes a card number into 4-digit blocks separated
// by spaces. Non-digits are dropped and the number is capped at 16 digits.
// Example: "4242-4242-4242-4242" -> "4242 4242 4242 4242"
func FormatCardNumber(value string) string {
	digits := digitsOnly(value)
	if len(digits) > 16 {
		digits = digits[:16]
	}
	if len(digits) < 4 {
		return digits
	}

	var parts []string
	for i := 0; i < len(digits); i += 4 {
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		parts = append(parts, digits[i:end])
	}
	return strings.Join(parts, " ")
}

// FormatExpiryDate normalizes an expiry into MM/YY with an auto-inserted
// slash. Example: "1227" -> "12/27"
func FormatExpiryDate(value string) string {
	digits := digitsOnly(value)
	if len(digits) >= 2 {
		end := len(digits)
		if end > 4 {
			end = 4
		}
		return digits[:2] + "/" + digits[2:end]
	}
	return digits
}

// ValidCardNumber reports whether a formatted card number has a full 16
// digits. This is client-side-style formatting validation only; there is
// no issuer check because there is no real gateway.
func ValidCardNumber(value string) bool {
	return len(digitsOnly(value)) == 16
}

// ValidExpiryDate reports whether an expiry matches MM/YY with a month in
// range 01-12.
func ValidExpiryDate(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 4 {
		return false
	}
	month := (int(digits[0]-'0') * 10) + int(digits[1]-'0')
	return month >= 1 && month <= 12
}
