package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule is a predicate over a string field value.
type Rule func(string) bool

// All passes only when every rule passes.
func All(rules ...Rule) Rule {
	return func(s string) bool {
		for _, rule := range rules {
			if !rule(s) {
				return false
			}
		}
		return true
	}
}

// MinLength counts runes, not bytes.
func MinLength(n int) Rule {
	return func(s string) bool {
		return utf8.RuneCountInString(s) >= n
	}
}

// MinWords requires at least n whitespace-separated tokens after trimming.
func MinWords(n int) Rule {
	return func(s string) bool {
		return len(strings.Fields(strings.TrimSpace(s))) >= n
	}
}

func HasLower(s string) bool { return strings.IndexFunc(s, isASCIILower) >= 0 }

func HasUpper(s string) bool { return strings.IndexFunc(s, isASCIIUpper) >= 0 }

func HasDigit(s string) bool { return strings.IndexFunc(s, unicode.IsDigit) >= 0 }

// Alphanumeric accepts only ASCII letters and digits.
func Alphanumeric(s string) bool {
	for _, r := range s {
		if !isASCIILower(r) && !isASCIIUpper(r) && !('0' <= r && r <= '9') {
			return false
		}
	}
	return true
}

func isASCIILower(r rune) bool { return 'a' <= r && r <= 'z' }

func isASCIIUpper(r rune) bool { return 'A' <= r && r <= 'Z' }

// Built-in named rules
var (
	PasswordRule = All(MinLength(6), HasLower, HasUpper, HasDigit, Alphanumeric)
	FullnameRule = MinWords(2)
)

const (
	PasswordMessage = "Password must have at least one uppercase letter, one lowercase letter and one number"
	FullnameMessage = "Enter first and last name"
)
