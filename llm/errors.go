package llm

import "strings"

// Failure signatures the providers use for quota and rate-limit responses.
// Classification is by substring only; anything else is treated as a
// generic failure.
var quotaSignatures = []string{
	"quota",
	"rate limit",
	"ratelimit",
	"429",
	"exhausted",
}

// IsQuotaError reports whether err looks like a quota or rate-limit
// condition. The chat service answers those with canned templates instead
// of surfacing the provider error.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, sig := range quotaSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}
