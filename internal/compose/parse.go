// File path: internal/compose/parse.go
package compose

import (
	"strings"
)

const (
	subjectMarker = "Subject:"
	bodyMarker    = "Body:"

	// FallbackSubject is used whenever the Subject/Body heuristic fails.
	FallbackSubject = "Generated Email"
)

// ParseSubjectBody extracts a subject/body pair from raw generated text.
//
// When both markers are present the text is split at the first occurrence of
// "Body:"; the head minus its "Subject:" label becomes the subject and the
// tail becomes the body. Any other outcome, including either candidate being
// empty after trimming, yields the fallback pair (FallbackSubject, trimmed
// raw). The function is total: it never fails, and both results are non-empty
// whenever raw is non-empty.
func ParseSubjectBody(raw string) (string, string) {
	if strings.Contains(raw, subjectMarker) && strings.Contains(raw, bodyMarker) {
		head, tail, found := strings.Cut(raw, bodyMarker)
		if found {
			subject := strings.TrimSpace(strings.ReplaceAll(head, subjectMarker, ""))
			body := strings.TrimSpace(tail)
			if subject != "" && body != "" {
				return subject, body
			}
		}
	}
	return FallbackSubject, strings.TrimSpace(raw)
}

// CleanSuggestions turns raw suggestion output into at most limit plain lines,
// stripping list bullets and numbering.
func CleanSuggestions(raw string, limit int) []string {
	if limit <= 0 {
		limit = 5
	}
	var suggestions []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-•*0123456789.) ")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		suggestions = append(suggestions, line)
		if len(suggestions) >= limit {
			break
		}
	}
	return suggestions
}
