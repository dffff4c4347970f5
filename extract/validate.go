package extract

import (
	"net/url"
	"strings"
)

const (
	emailLocalCharset  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789._%+-"
	emailDomainCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.-"
)

// IsValidEmail reports whether the string is a plausible email address:
// exactly one '@', non-empty local and domain parts, no leading, trailing
// or consecutive dots, a dotted domain with a TLD of at least two
// characters, and a restricted character set on both sides.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	local, domain := parts[0], parts[1]
	if local == "" || domain == "" {
		return false
	}

	for _, part := range []string{local, domain} {
		if strings.HasPrefix(part, ".") || strings.HasSuffix(part, ".") {
			return false
		}
		if strings.Contains(part, "..") {
			return false
		}
	}

	if !containsOnly(local, emailLocalCharset) || !containsOnly(domain, emailDomainCharset) {
		return false
	}

	dot := strings.LastIndex(domain, ".")
	if dot < 0 {
		return false
	}
	tld := domain[dot+1:]
	return len(tld) >= 2
}

// IsValidPhone reports whether the string contains a plausible phone
// number: between 8 and 15 digits once everything else is stripped.
func IsValidPhone(phone string) bool {
	digits := DigitsOnly(phone)
	return len(digits) >= 8 && len(digits) <= 15
}

// IsValidWebsite reports whether the string parses as a URL with a dotted
// host. A scheme-less value is tried with an "http://" prefix first.
func IsValidWebsite(website string) bool {
	website = strings.TrimSpace(website)
	if website == "" {
		return false
	}

	if !strings.Contains(website, "://") {
		website = "http://" + website
	}

	parsed, err := url.Parse(website)
	if err != nil {
		return false
	}
	host := parsed.Hostname()
	return host != "" && strings.Contains(host, ".")
}

// DigitsOnly strips everything but ASCII digits.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func containsOnly(s, charset string) bool {
	for _, r := range s {
		if !strings.ContainsRune(charset, r) {
			return false
		}
	}
	return true
}
