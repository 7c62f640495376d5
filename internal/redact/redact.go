// Package redact scrubs credentials, tokens, email addresses and SQL from
// strings before they are logged. Errors coming back from the database
// driver or the token library can echo connection strings, queries and
// bearer tokens, none of which belong in log output.
package redact

import "regexp"

// rule pairs a pattern with the placeholder that replaces its matches.
type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules are applied in order; connection strings go first so the password
// inside them is not half-matched by the password rule.
var rules = []rule{
	{
		regexp.MustCompile(`(?i)(postgres|postgresql|pgx5?)://[^@\s]+@`),
		"[REDACTED_CREDENTIAL]@",
	},
	{
		regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		"[REDACTED_JWT]",
	},
	{
		regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]+=*`),
		"Bearer [REDACTED_TOKEN]",
	},
	{
		regexp.MustCompile(`(?i)(password|passwd|pwd|secret)([=:\s]+['"]?)[^'"&\s]{3,}`),
		"$1$2[REDACTED_CREDENTIAL]",
	},
	{
		regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}`),
		"[REDACTED_HASH]",
	},
	{
		regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		"[REDACTED_EMAIL]",
	},
	{
		regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE)\b[^;]*?\b(FROM|INTO|SET)\b[^;]*`),
		"[REDACTED_SQL]",
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
