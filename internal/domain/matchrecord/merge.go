package matchrecord

import "sort"

// Source names reported through MergeObserver callbacks.
const (
	SourcePrimary   = "primary"
	SourceSecondary = "secondary"
)

// MergeObserver receives merge decisions worth surfacing to operators.
// Implementations must be cheap; the resolver calls them inline.
type MergeObserver interface {
	DuplicateSkipped(source, key string, rec *MatchRecord)
	KeylessDropped(source string, rec *MatchRecord)
	IdentityPreserved(key, label string)
}

// MergeStats counts what the resolver kept and lost.
type MergeStats struct {
	PrimaryIn         int `json:"primary_in"`
	SecondaryIn       int `json:"secondary_in"`
	Merged            int `json:"merged"`
	DuplicatesSkipped int `json:"duplicates_skipped"`
	KeylessPrimary    int `json:"keyless_primary"`
	KeylessSecondary  int `json:"keyless_secondary"`
	IdentityPreserved int `json:"identity_preserved"`
}

type nopObserver struct{}

func (nopObserver) DuplicateSkipped(string, string, *MatchRecord) {}
func (nopObserver) KeylessDropped(string, *MatchRecord)           {}
func (nopObserver) IdentityPreserved(string, string)              {}

// Merge reconciles the two source datasets into one canonical slice.
// A secondary record replaces the primary record sharing its key outright,
// never field by field, except that a primary-only external id is copied
// onto the winner so downstream links keep working. Primary records
// repeating a key are skipped; later secondary records replace earlier
// ones unconditionally.
// Keyless records from either side are dropped and counted. The result is
// sorted by canonical date string, newest first, and shares no record
// pointers with mutated inputs.
func Merge(primary, secondary []*MatchRecord, obs MergeObserver) ([]*MatchRecord, MergeStats) {
	if obs == nil {
		obs = nopObserver{}
	}

	stats := MergeStats{PrimaryIn: len(primary), SecondaryIn: len(secondary)}

	type identity struct {
		label string
		value Value
	}

	byKey := make(map[string]*MatchRecord, len(primary)+len(secondary))
	order := make([]string, 0, len(primary)+len(secondary))
	primaryID := make(map[string]identity)

	for _, rec := range primary {
		key, ok := DeriveKey(rec)
		if !ok {
			stats.KeylessPrimary++
			obs.KeylessDropped(SourcePrimary, rec)
			continue
		}
		if _, exists := byKey[key]; exists {
			stats.DuplicatesSkipped++
			obs.DuplicateSkipped(SourcePrimary, key, rec)
			continue
		}
		byKey[key] = rec
		order = append(order, key)
		if label, v, ok := IdentityAliases.Lookup(rec); ok {
			primaryID[key] = identity{label: label, value: v}
		}
	}

	for _, rec := range secondary {
		key, ok := DeriveKey(rec)
		if !ok {
			stats.KeylessSecondary++
			obs.KeylessDropped(SourceSecondary, rec)
			continue
		}
		if _, exists := byKey[key]; !exists {
			order = append(order, key)
		}
		winner := rec
		if id, ok := primaryID[key]; ok {
			if _, _, hasOwn := IdentityAliases.Lookup(rec); !hasOwn {
				winner = rec.Clone()
				winner.Set(id.label, id.value)
				stats.IdentityPreserved++
				obs.IdentityPreserved(key, id.label)
			}
		}
		byKey[key] = winner
	}

	out := make([]*MatchRecord, 0, len(order))
	for _, key := range order {
		out = append(out, byKey[key])
	}

	sort.SliceStable(out, func(i, j int) bool {
		return sortDate(out[i]) > sortDate(out[j])
	})

	stats.Merged = len(out)
	return out, stats
}

func sortDate(rec *MatchRecord) string {
	if _, v, ok := DateAliases.Lookup(rec); ok {
		return CanonicalDate(v)
	}
	return ""
}
