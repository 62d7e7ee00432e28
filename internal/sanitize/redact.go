package sanitize

import (
	"regexp"
)

var secretPatterns = []*regexp.Regexp{
	// OpenAI-style API keys
	regexp.MustCompile(`\bsk-[A-Za-z0-9_-]{16,}\b`),
	// Bearer tokens in pasted headers
	regexp.MustCompile(`(?i)\bBearer\s+[A-Za-z0-9._~+/-]{16,}=*`),
	// AWS access key IDs
	regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`),
	// GitHub tokens
	regexp.MustCompile(`\bgh[pousr]_[A-Za-z0-9]{20,}\b`),
}

// Redact replaces credential-looking tokens in document text with a
// placeholder before the text leaves the machine in a prompt.
func Redact(text string) string {
	for _, p := range secretPatterns {
		text = p.ReplaceAllString(text, "[redacted]")
	}
	return text
}
