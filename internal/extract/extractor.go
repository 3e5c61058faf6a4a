// Package extract derives ranked keywords and typed entities from post text
// using a fixed NFL vocabulary. Extraction is best-effort: callers treat a
// failure as empty keyword/entity lists, never as a fatal error.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/domain"
	"github.com/cdobratz/nfl-sentiment-analyzer/internal/sentiment"
)

const (
	maxKeywords = 10
	maxEntities = 5

	hashtagWeight  = 2.0
	baseWeight     = 1.0
	statBonus      = 0.5
	positionBonus  = 1.0
	minTokenLength = 4
)

var (
	tagPattern      = regexp.MustCompile(`[#@](\w+)`)
	positionPattern = regexp.MustCompile(`\b(` + strings.Join(positionAbbrevs, "|") + `)\b`)
	statPattern     = regexp.MustCompile(`(?i)\b(` + strings.Join(statTerms, "|") + `)\b`)
	playerPattern   = regexp.MustCompile(`([A-Z][a-z]+(?: [A-Z][a-z]+)+) (?:` + strings.Join(reportingVerbs, "|") + `)\b`)
)

// Extractor derives keywords and entities from raw post text.
type Extractor struct{}

// NewExtractor creates an extractor over the built-in NFL vocabulary.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns ranked keywords and discovered entities for text.
func (e *Extractor) Extract(text string) ([]domain.KeywordEntry, []domain.Entity, error) {
	return e.Keywords(text), e.Entities(text), nil
}

// Keywords extracts up to 10 weighted keywords. Hashtags and mentions come
// from the original text (normalization strips them) at double weight; plain
// tokens get a base weight plus vocabulary bonuses. Duplicate words merge by
// summing weight; ties keep first-seen order.
func (e *Extractor) Keywords(text string) []domain.KeywordEntry {
	weights := make(map[string]float64)
	var order []string

	add := func(word string, weight float64) {
		if _, seen := weights[word]; !seen {
			order = append(order, word)
		}
		weights[word] += weight
	}

	for _, m := range tagPattern.FindAllStringSubmatch(text, -1) {
		add(strings.ToLower(m[1]), hashtagWeight)
	}

	for _, tok := range strings.Fields(sentiment.Normalize(text)) {
		word := strings.Trim(tok, ".,!?;:'\"()[]")
		if len(word) < minTokenLength {
			continue
		}
		if _, stop := keywordStopList[word]; stop {
			continue
		}

		weight := baseWeight
		for _, stat := range statTerms {
			if strings.Contains(stat, word) {
				weight += statBonus
				break
			}
		}
		for _, pos := range positionAbbrevs {
			if strings.EqualFold(word, pos) {
				weight += positionBonus
				break
			}
		}
		add(word, weight)
	}

	entries := make([]domain.KeywordEntry, 0, len(order))
	for _, word := range order {
		entries = append(entries, domain.KeywordEntry{Word: word, Score: weights[word]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > maxKeywords {
		entries = entries[:maxKeywords]
	}
	return entries
}

// Entities scans the original text for teams, positions, stat terms, and
// player mentions, in that discovery order, capped at 5.
func (e *Extractor) Entities(text string) []domain.Entity {
	var entities []domain.Entity
	seen := make(map[string]struct{})
	matchedTeams := make(map[string]struct{})

	add := func(name string, typ domain.EntityType) {
		key := string(typ) + ":" + name
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		entities = append(entities, domain.Entity{Name: name, Type: typ})
	}

	for _, team := range teamNames {
		if strings.Contains(text, team) {
			matchedTeams[team] = struct{}{}
			add(team, domain.EntityTeam)
		}
	}

	for _, m := range positionPattern.FindAllString(text, -1) {
		add(m, domain.EntityPosition)
	}

	for _, m := range statPattern.FindAllString(text, -1) {
		add(strings.ToLower(m), domain.EntityStat)
	}

	for _, m := range playerPattern.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if containsTeam(name, matchedTeams) {
			continue
		}
		add(name, domain.EntityPlayer)
	}

	if len(entities) > maxEntities {
		entities = entities[:maxEntities]
	}
	return entities
}

// containsTeam reports whether a candidate player name overlaps an already
// matched team, e.g. "Green Bay Packers announced" is a team, not a player.
func containsTeam(name string, teams map[string]struct{}) bool {
	for team := range teams {
		if strings.Contains(name, team) {
			return true
		}
	}
	return false
}
