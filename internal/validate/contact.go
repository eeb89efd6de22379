package validate

import (
	"net/mail"
	"regexp"
	"strings"
)

var (
	reLetters = regexp.MustCompile(`[A-Za-z]`)
	// Only allow digits, spaces, +, -, (, )
	reAllowed = regexp.MustCompile(`^[0-9+\-\s\(\)]+$`)
)

// NormEmail lowercases and trims an address and reports whether it
// parses. Empty is ok: callers decide whether the field is required.
func NormEmail(s string) (string, bool) {
	e := strings.TrimSpace(strings.ToLower(s))
	if e == "" {
		return "", true
	}
	_, err := mail.ParseAddress(e)
	return e, err == nil
}

// NormPhone strips separators and rejects anything that is not a
// plausible phone number. Returns "" for unusable input.
func NormPhone(p string) string {
	s := strings.TrimSpace(p)
	if s == "" {
		return ""
	}
	if reLetters.MatchString(s) {
		return ""
	}
	if !reAllowed.MatchString(s) {
		return ""
	}
	repl := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "\n", "", "\r", "")
	s = repl.Replace(s)
	if len(strings.TrimLeft(s, "+")) < 7 {
		return ""
	}
	return s
}
