package wizard

import (
	"regexp"
	"strconv"
	"strings"
)

// A Rule inspects the cumulative field map and reports at most one violation
// as (field, message). A satisfied rule returns an empty field name.
//
// Rules are evaluated per step; each step's rule set only looks at that
// step's fields, so a value invalidated after its step was passed is caught
// again only when the step is revisited.
type Rule func(Fields) (field, msg string)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

// passwordSymbols is the fixed symbol set the password rule accepts.
const passwordSymbols = "@$!%*?&#^"

// StrongPassword reports whether s satisfies the account password policy:
// at least 8 characters, at least one lowercase letter, one uppercase
// letter, one digit and one symbol from passwordSymbols, with no characters
// outside those classes.
func StrongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		default:
			return false
		}
	}
	return lower && upper && digit && symbol
}

// Required fails when the field is unset, blank, or (for file fields) has no
// chosen file.
func Required(field, msg string) Rule {
	return func(f Fields) (string, string) {
		if f.Get(field).Blank() {
			return field, msg
		}
		return "", ""
	}
}

// RequiredWhen applies a required check only while another field holds a
// specific value (e.g. "Other" selections that need a free-text companion).
func RequiredWhen(field, whenField, equals, msg string) Rule {
	return func(f Fields) (string, string) {
		if f.Get(whenField).Text() != equals {
			return "", ""
		}
		if f.Get(field).Blank() {
			return field, msg
		}
		return "", ""
	}
}

// Email requires a value matching the address pattern. With an empty
// requiredMsg the field is optional and only checked when set.
func Email(field, requiredMsg, invalidMsg string) Rule {
	return func(f Fields) (string, string) {
		v := f.Get(field)
		if v.Blank() {
			if requiredMsg == "" {
				return "", ""
			}
			return field, requiredMsg
		}
		if !emailPattern.MatchString(v.Text()) {
			return field, invalidMsg
		}
		return "", ""
	}
}

// Phone requires exactly ten digits. With an empty requiredMsg a blank value
// still fails the pattern check, matching the organization form where the
// pattern test ran unconditionally.
func Phone(field, requiredMsg, invalidMsg string) Rule {
	return func(f Fields) (string, string) {
		v := f.Get(field)
		if v.Blank() && requiredMsg != "" {
			return field, requiredMsg
		}
		if !phonePattern.MatchString(v.Text()) {
			return field, invalidMsg
		}
		return "", ""
	}
}

// NumberInRange parses the field as a decimal and requires min < n <= max.
func NumberInRange(field string, min, max float64, requiredMsg, rangeMsg string) Rule {
	return func(f Fields) (string, string) {
		v := f.Get(field)
		if v.Blank() {
			return field, requiredMsg
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(v.Text()), 64)
		if err != nil || n <= min || n > max {
			return field, rangeMsg
		}
		return "", ""
	}
}

// Password enforces the StrongPassword policy.
func Password(field, requiredMsg, weakMsg string) Rule {
	return func(f Fields) (string, string) {
		v := f.Get(field)
		if v.Text() == "" {
			if requiredMsg == "" {
				return field, weakMsg
			}
			return field, requiredMsg
		}
		if !StrongPassword(v.Text()) {
			return field, weakMsg
		}
		return "", ""
	}
}

// Matches requires exact, case-sensitive equality with another field
// (confirm-password).
func Matches(field, other, msg string) Rule {
	return func(f Fields) (string, string) {
		if f.Get(field).Text() != f.Get(other).Text() {
			return field, msg
		}
		return "", ""
	}
}
