package usecase

import "encoding/json"

// Fallback values substituted when the model's output cannot be parsed as
// structured data. Extraction is total: it never fails the request.
var (
	fallbackTopics = []string{
		"Professional Development",
		"Industry News",
		"Business Updates",
		"Technology",
		"Networking",
	}
	fallbackInsights = []string{
		"Stay updated with industry trends",
		"Engage with professional content",
		"Build meaningful connections",
	}
)

const fallbackSummaryLimit = 500

type modelPayload struct {
	Summary   string   `json:"summary"`
	KeyTopics []string `json:"keyTopics"`
	Insights  []string `json:"insights"`
}

// parseModelOutput extracts the structured payload embedded in the model's
// free-text response. Two stages: a tolerant scanner locates the first
// balanced top-level {...} span, then a strict JSON parse runs over it. On
// any failure the deterministic fallback is returned instead.
func parseModelOutput(raw string) modelPayload {
	span, ok := extractJSONObject(raw)
	if ok {
		var parsed modelPayload
		if err := json.Unmarshal([]byte(span), &parsed); err == nil {
			if parsed.Summary == "" {
				parsed.Summary = "Summary generation failed"
			}
			if parsed.KeyTopics == nil {
				parsed.KeyTopics = []string{}
			}
			if parsed.Insights == nil {
				parsed.Insights = []string{}
			}
			return parsed
		}
	}

	return modelPayload{
		Summary:   truncateRunes(raw, fallbackSummaryLimit) + "...",
		KeyTopics: fallbackTopics,
		Insights:  fallbackInsights,
	}
}

// extractJSONObject finds the first balanced top-level brace span in s. The
// scanner tracks JSON string literals so braces inside values don't count.
// If no balanced span exists it falls back to the widest first-{ to last-}
// slice, leaving the strict parser to reject garbage.
func extractJSONObject(s string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start >= 0 {
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
	}

	// Unbalanced: take first { to last } and let the parser decide.
	if start >= 0 {
		for i := len(s) - 1; i > start; i-- {
			if s[i] == '}' {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
