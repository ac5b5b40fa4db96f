package matchrecord

import (
	"strings"
	"unicode"
)

// NormalizeLabel maps heterogeneous column spellings onto one display
// convention: snake_case and camelCase become Title Case with spaces
// ("shots_against" and "shotsAgainst" both become "Shots Against").
// Labels that are neither pass through verbatim, so the function is
// idempotent and never fails.
func NormalizeLabel(raw string) string {
	label := strings.TrimSpace(raw)
	if label == "" {
		return label
	}

	if strings.Contains(label, "_") {
		segments := strings.Split(label, "_")
		words := make([]string, 0, len(segments))
		for _, seg := range segments {
			seg = strings.TrimSpace(seg)
			if seg == "" {
				continue
			}
			words = append(words, titleWord(seg))
		}
		if len(words) == 0 {
			return label
		}
		return strings.Join(words, " ")
	}

	fields := strings.Fields(label)
	words := make([]string, 0, len(fields))
	expanded := false
	for _, field := range fields {
		parts := splitCamel(field)
		if len(parts) > 1 {
			expanded = true
		}
		words = append(words, parts...)
	}
	if !expanded {
		return label
	}

	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func splitCamel(word string) []string {
	runes := []rune(word)
	if len(runes) < 2 {
		return []string{word}
	}

	var parts []string
	start := 0
	for i := 1; i < len(runes); i++ {
		if unicode.IsUpper(runes[i]) && !unicode.IsUpper(runes[i-1]) {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	parts = append(parts, string(runes[start:]))
	return parts
}

func titleWord(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// AliasTable is an ordered list of spellings probed case-insensitively
// against a record. The first alias holding a non-empty value wins.
type AliasTable struct {
	Canonical string
	Aliases   []string
}

// Alias tables for the identity-bearing columns. Order matters: earlier
// spellings are more specific and take priority.
var (
	IdentityAliases = AliasTable{
		Canonical: "Match ID",
		Aliases:   []string{"Match ID", "Game ID", "Fixture ID", "External Ref", "ID"},
	}
	DateAliases = AliasTable{
		Canonical: "Date",
		Aliases:   []string{"Date", "Match Date", "Game Date", "Played At", "Kickoff"},
	}
	OpponentAliases = AliasTable{
		Canonical: "Opponent",
		Aliases:   []string{"Opponent", "Opposition", "Against", "Vs"},
	}
	TeamAliases = AliasTable{
		Canonical: "Team",
		Aliases:   []string{"Team", "Club", "Side"},
	}
	SeasonAliases = AliasTable{
		Canonical: "Season",
		Aliases:   []string{"Season", "Year", "Campaign"},
	}
)

// Lookup returns the record's actual label and value for the first alias
// that resolves to a non-empty value.
func (t AliasTable) Lookup(rec *MatchRecord) (string, Value, bool) {
	for _, alias := range t.Aliases {
		label, v, ok := rec.GetFold(alias)
		if ok && !v.IsEmpty() {
			return label, v, true
		}
	}
	return "", Absent(), false
}
