package matchrecord

import "strings"

// DeriveKey computes the deduplication identity of a record: the external id
// when one exists, else a date+opponent composite, else whichever of the two
// is present alone. Records with none of these cannot take part in a merge.
func DeriveKey(rec *MatchRecord) (string, bool) {
	if _, v, ok := IdentityAliases.Lookup(rec); ok {
		return "id:" + strings.ToLower(strings.TrimSpace(v.String())), true
	}

	var datePart, opponentPart string
	if _, v, ok := DateAliases.Lookup(rec); ok {
		datePart = CanonicalDate(v)
	}
	if _, v, ok := OpponentAliases.Lookup(rec); ok {
		opponentPart = strings.ToLower(strings.TrimSpace(v.String()))
	}

	switch {
	case datePart != "" && opponentPart != "":
		return "date:" + datePart + "|opponent:" + opponentPart, true
	case datePart != "":
		return "date:" + datePart, true
	case opponentPart != "":
		return "opponent:" + opponentPart, true
	}

	return "", false
}
