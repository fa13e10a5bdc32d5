package utils

import (
	"strings"
	"unicode"
)

// NormalizeString trims surrounding whitespace.
func NormalizeString(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone strips everything but digits, keeping a leading +.
func NormalizePhone(phone string) string {
	cleaned := strings.TrimSpace(phone)
	if cleaned == "" {
		return ""
	}

	var result strings.Builder
	for i, r := range cleaned {
		if i == 0 && r == '+' {
			result.WriteRune(r)
			continue
		}
		if unicode.IsDigit(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// IsValidEmail checks the minimal local@domain shape. Registries only need
// to reject obvious garbage; real deliverability is the mailer's problem.
func IsValidEmail(email string) bool {
	normalized := NormalizeEmail(email)
	at := strings.Index(normalized, "@")
	if at <= 0 || at != strings.LastIndex(normalized, "@") {
		return false
	}

	domain := normalized[at+1:]
	return len(domain) > 2 && strings.Contains(domain, ".")
}

// IsValidPhone accepts anything that normalizes to at least seven digits.
func IsValidPhone(phone string) bool {
	normalized := NormalizePhone(phone)
	digits := strings.TrimPrefix(normalized, "+")
	return len(digits) >= 7
}
