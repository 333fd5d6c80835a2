package figi

import (
	"strings"
	"testing"
)

func TestParseValid(t *testing.T) {
	// Published identifiers with known-good check digits.
	valid := []string{
		"BBG000B9XRY4", // Apple Inc
		"BBG000BLNNH6", // IBM
	}

	for _, s := range valid {
		t.Run(s, func(t *testing.T) {
			f, err := Parse(s)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", s, err)
			}
			if f.String() != s {
				t.Errorf("String() = %q, want %q", f.String(), s)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string // substring expected in the error
	}{
		{"empty", "", "length"},
		{"too short", "BBG000B9XRY", "length"},
		{"too long", "BBG000B9XRY44", "length"},
		{"restricted prefix", "GBG000B9XRY4", "restricted prefix"},
		{"vowel in prefix", "BAG000B9XRY4", "consonants"},
		{"digit in prefix", "B1G000B9XRY4", "consonants"},
		{"third char not G", "BBX000B9XRY4", "'G'"},
		{"lowercase body", "BBG000b9XRY4", "consonant or digit"},
		{"vowel in body", "BBG000A9XRY4", "consonant or digit"},
		{"alpha check digit", "BBG000B9XRYZ", "numeric"},
		{"bad check digit", "BBG000B9XRY5", "mismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.input)
			}
			ferr, ok := err.(*InvalidFIGIError)
			if !ok {
				t.Fatalf("Parse(%q) returned %T, want *InvalidFIGIError", tt.input, err)
			}
			if ferr.Input != tt.input {
				t.Errorf("error Input = %q, want %q", ferr.Input, tt.input)
			}
			if !strings.Contains(ferr.Reason, tt.reason) {
				t.Errorf("error Reason = %q, want substring %q", ferr.Reason, tt.reason)
			}
		})
	}
}

func TestCheckDigit(t *testing.T) {
	tests := []struct {
		prefix string
		want   int
	}{
		{"BBG000B9XRY", 4},
		{"BBG000BLNNH", 6},
	}

	for _, tt := range tests {
		if got := checkDigit(tt.prefix); got != tt.want {
			t.Errorf("checkDigit(%q) = %d, want %d", tt.prefix, got, tt.want)
		}
	}
}
