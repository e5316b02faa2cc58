package search

import "strings"

// ErrorClass buckets feed errors for backoff selection. The classes map
// to distinct backoff multipliers and blocking behavior.
type ErrorClass string

const (
	ClassRateLimit  ErrorClass = "rate_limit"
	ClassSSL        ErrorClass = "ssl_error"
	ClassConnection ErrorClass = "connection_error"
	ClassTimeout    ErrorClass = "timeout_error"
	ClassDenied     ErrorClass = "access_denied"
	ClassNotFound   ErrorClass = "not_found"
	ClassUnknown    ErrorClass = "unknown_error"
)

var classKeywords = []struct {
	class    ErrorClass
	keywords []string
}{
	{ClassRateLimit, []string{"max retries", "retries exceeded", "too many requests", "429"}},
	{ClassSSL, []string{"ssl", "eof", "certificate"}},
	{ClassConnection, []string{"connection", "remotedisconnected", "broken pipe"}},
	{ClassTimeout, []string{"timeout", "timed out", "deadline exceeded"}},
	{ClassDenied, []string{"forbidden", "403", "blocked"}},
	{ClassNotFound, []string{"not found", "404"}},
}

// Classify buckets an error by inspecting its message. Order matters:
// "connection timed out" is a timeout only if no connection keyword hits
// first, matching how backoff severity is tiered.
func Classify(err error) ErrorClass {
	if err == nil {
		return ClassUnknown
	}
	msg := strings.ToLower(err.Error())
	for _, c := range classKeywords {
		for _, kw := range c.keywords {
			if strings.Contains(msg, kw) {
				return c.class
			}
		}
	}
	return ClassUnknown
}

var fatalIndicators = []string{
	"forbidden", "403", "access denied", "authentication",
	"invalid api key", "quota exceeded permanently",
}

// IsFatal reports whether an error indicates a condition retrying cannot
// fix, such as revoked access.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, ind := range fatalIndicators {
		if strings.Contains(msg, ind) {
			return true
		}
	}
	return false
}
