package sentiment

import "strings"

// stopWords are function words excluded from lexicon token counts.
// Keeping them in would dilute scores on short posts.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {},
	"by": {}, "at": {}, "in": {}, "on": {}, "of": {}, "to": {},
	"is": {}, "was": {}, "are": {}, "were": {}, "be": {}, "it": {},
	"this": {}, "that": {}, "with": {}, "from": {},
}

// Normalize lowercases text and strips URLs, @mentions, and #hashtags,
// collapsing whitespace. The extractor works on the same normalized form.
func Normalize(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.HasPrefix(f, "http://") || strings.HasPrefix(f, "https://") || strings.HasPrefix(f, "www.") {
			continue
		}
		if strings.HasPrefix(f, "@") || strings.HasPrefix(f, "#") {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// Tokenize splits normalized text into scoring tokens: punctuation is
// trimmed from token edges and stop words are dropped.
func Tokenize(normalized string) []string {
	fields := strings.Fields(normalized)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.Trim(f, ".,!?;:'\"()[]")
		if w == "" {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}
