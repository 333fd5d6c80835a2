package figi

import (
	"fmt"
	"strings"
)

// Length is the fixed length of a FIGI.
const Length = 12

// Prefixes reserved by the standard; a FIGI never starts with one of these.
var restrictedPrefixes = map[string]bool{
	"BS": true, "BM": true, "GG": true, "GB": true, "GH": true, "KY": true, "VG": true,
}

// FIGI is a validated Financial Instrument Global Identifier. Construct one
// with Parse; the zero value is not a valid identifier.
type FIGI string

// String returns the identifier text.
func (f FIGI) String() string { return string(f) }

// InvalidFIGIError describes why an input failed FIGI validation.
type InvalidFIGIError struct {
	Input  string
	Reason string
}

func (e *InvalidFIGIError) Error() string {
	return fmt.Sprintf("invalid FIGI %q: %s", e.Input, e.Reason)
}

// Parse validates s as a FIGI.
func Parse(s string) (FIGI, error) {
	if len(s) != Length {
		return "", &InvalidFIGIError{Input: s, Reason: fmt.Sprintf("length must be %d, got %d", Length, len(s))}
	}
	if restrictedPrefixes[s[:2]] {
		return "", &InvalidFIGIError{Input: s, Reason: fmt.Sprintf("restricted prefix %q", s[:2])}
	}
	if !isConsonant(s[0]) || !isConsonant(s[1]) {
		return "", &InvalidFIGIError{Input: s, Reason: "first two characters must be upper-case consonants"}
	}
	if s[2] != 'G' {
		return "", &InvalidFIGIError{Input: s, Reason: "third character must be 'G'"}
	}
	for i := 3; i < Length-1; i++ {
		if !isConsonant(s[i]) && !isDigit(s[i]) {
			return "", &InvalidFIGIError{Input: s, Reason: fmt.Sprintf("character %d must be an upper-case consonant or digit", i+1)}
		}
	}
	if !isDigit(s[Length-1]) {
		return "", &InvalidFIGIError{Input: s, Reason: "check digit must be numeric"}
	}
	if want := checkDigit(s[:Length-1]); int(s[Length-1]-'0') != want {
		return "", &InvalidFIGIError{Input: s, Reason: fmt.Sprintf("check digit mismatch, want %d", want)}
	}
	return FIGI(s), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isConsonant(c byte) bool {
	return c >= 'A' && c <= 'Z' && !strings.ContainsRune("AEIOU", rune(c))
}

// checkDigit computes the double-add-double mod 10 check digit over the
// first eleven characters: digits keep their value, letters map to
// 10 + their alphabet index, every second value (0-based odd position) is
// doubled, and the decimal digits of all results are summed.
func checkDigit(s string) int {
	sum := 0
	for i := 0; i < len(s); i++ {
		v := int(s[i] - '0')
		if s[i] >= 'A' {
			v = int(s[i]-'A') + 10
		}
		if i%2 == 1 {
			v *= 2
		}
		sum += v/10 + v%10
	}
	return (10 - sum%10) % 10
}
