package dedup

import (
	"strings"

	"github.com/prospekt/leadrank/extract"
)

// Corporate suffixes stripped from company names before fingerprinting.
// "Acme Pvt Ltd" and "ACME" must normalize to the same key.
var corporateSuffixes = map[string]bool{
	"pvt": true, "ltd": true, "llc": true, "inc": true, "incorporated": true,
	"corp": true, "corporation": true, "co": true, "company": true,
	"limited": true, "private": true, "gmbh": true, "llp": true, "plc": true,
	"pte": true, "sa": true, "ag": true, "bv": true, "srl": true,
}

// NormalizeCompany lowercases, strips punctuation, collapses whitespace and
// removes trailing corporate suffixes.
func NormalizeCompany(name string) string {
	tokens := strings.Fields(stripPunctuation(strings.ToLower(name)))
	for len(tokens) > 0 && corporateSuffixes[tokens[len(tokens)-1]] {
		tokens = tokens[:len(tokens)-1]
	}
	return strings.Join(tokens, " ")
}

// NormalizeContact lowercases, strips punctuation and collapses whitespace.
func NormalizeContact(name string) string {
	return strings.Join(strings.Fields(stripPunctuation(strings.ToLower(name))), " ")
}

// NormalizeEmail lowercases and trims. Only addresses passing
// extract.IsValidEmail should be used as identity.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone reduces a phone number to its digits.
func NormalizePhone(phone string) string {
	return extract.DigitsOnly(phone)
}

func stripPunctuation(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '\t':
			b.WriteRune(' ')
		default:
			// Punctuation becomes a separator so "A.B.C" != "ABC" collisions
			// do not silently merge distinct names.
			b.WriteRune(' ')
		}
	}
	return b.String()
}
