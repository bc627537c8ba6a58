package knowledge

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// Matcher maps free symptom text to knowledge-base records. Phrase patterns
// are compiled once at construction; Match itself is pure and safe for
// concurrent use.
type Matcher struct {
	records []SymptomRecord
	phrases []*regexp.Regexp
}

func NewMatcher(records []SymptomRecord) *Matcher {
	m := &Matcher{records: records, phrases: make([]*regexp.Regexp, len(records))}
	for i, r := range records {
		m.phrases[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(r.Name)) + `\b`)
	}
	return m
}

// Match returns every record whose name occurs in text, in knowledge-base
// order. Single-word symptoms match as standalone tokens; multi-word
// symptoms require all constituent words as tokens plus the exact phrase as
// a contiguous word-boundary substring. Overlapping matches are not
// deduplicated: "pain" and "chest pain" can both match the same input.
func (m *Matcher) Match(text string) []SymptomRecord {
	lower := strings.ToLower(text)
	tokens := make(map[string]bool)
	for _, w := range wordPattern.FindAllString(lower, -1) {
		tokens[w] = true
	}

	var matched []SymptomRecord
	for i, r := range m.records {
		parts := strings.Fields(r.Name)
		if len(parts) == 1 {
			if tokens[strings.ToLower(parts[0])] {
				matched = append(matched, r)
			}
			continue
		}
		allPresent := true
		for _, p := range parts {
			if !tokens[strings.ToLower(p)] {
				allPresent = false
				break
			}
		}
		if allPresent && m.phrases[i].MatchString(lower) {
			matched = append(matched, r)
		}
	}
	return matched
}
