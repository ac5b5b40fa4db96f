package chart

import (
	"math"
	"strings"
	"time"

	"github.com/pitchside/matchboard/internal/domain/matchrecord"
)

// ApplyFilters narrows records per the config. Dimensions combine with AND.
// A dimension whose backing field is absent from every record in the
// dataset is skipped outright, since many datasets carry no season or team
// metadata. Presence is judged against the full input, not the already
// narrowed remainder.
func ApplyFilters(records []*matchrecord.MatchRecord, f *Filters, xKey string) []*matchrecord.MatchRecord {
	if f == nil {
		return records
	}

	out := records
	if len(f.Teams) > 0 && anyAliasPresent(records, matchrecord.TeamAliases) {
		out = keepSubstringMatches(out, matchrecord.TeamAliases, f.Teams)
	}
	if len(f.Opponents) > 0 && anyAliasPresent(records, matchrecord.OpponentAliases) {
		out = keepSubstringMatches(out, matchrecord.OpponentAliases, f.Opponents)
	}
	if len(f.Seasons) > 0 && anyAliasPresent(records, matchrecord.SeasonAliases) {
		out = keepSeasonMatches(out, f.Seasons)
	}
	if f.DateRange != nil && anyFieldPresent(records, xKey) {
		out = keepDateRangeMatches(out, *f.DateRange, xKey)
	}
	return out
}

func anyAliasPresent(records []*matchrecord.MatchRecord, table matchrecord.AliasTable) bool {
	for _, rec := range records {
		if _, _, ok := table.Lookup(rec); ok {
			return true
		}
	}
	return false
}

func anyFieldPresent(records []*matchrecord.MatchRecord, key string) bool {
	for _, rec := range records {
		if _, v, ok := rec.GetFold(key); ok && !v.IsEmpty() {
			return true
		}
	}
	return false
}

// keepSubstringMatches keeps records whose field contains any wanted value,
// case-insensitively. Substring rather than exact match tolerates suffix
// variants like club-night labels.
func keepSubstringMatches(records []*matchrecord.MatchRecord, table matchrecord.AliasTable, wanted []string) []*matchrecord.MatchRecord {
	needles := make([]string, 0, len(wanted))
	for _, w := range wanted {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			needles = append(needles, w)
		}
	}
	if len(needles) == 0 {
		return records
	}

	out := make([]*matchrecord.MatchRecord, 0, len(records))
	for _, rec := range records {
		_, v, ok := table.Lookup(rec)
		if !ok {
			continue
		}
		field := strings.ToLower(v.String())
		for _, needle := range needles {
			if strings.Contains(field, needle) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

func keepSeasonMatches(records []*matchrecord.MatchRecord, seasons []int) []*matchrecord.MatchRecord {
	wanted := make(map[int]struct{}, len(seasons))
	for _, s := range seasons {
		wanted[s] = struct{}{}
	}

	out := make([]*matchrecord.MatchRecord, 0, len(records))
	for _, rec := range records {
		_, v, ok := matchrecord.SeasonAliases.Lookup(rec)
		if !ok {
			continue
		}
		n, numeric := v.Numeric()
		if !numeric || n != math.Trunc(n) {
			continue
		}
		if _, hit := wanted[int(n)]; hit {
			out = append(out, rec)
		}
	}
	return out
}

func keepDateRangeMatches(records []*matchrecord.MatchRecord, r DateRange, xKey string) []*matchrecord.MatchRecord {
	start, hasStart := parseBound(r.Start)
	end, hasEnd := parseBound(r.End)
	if !hasStart && !hasEnd {
		return records
	}

	out := make([]*matchrecord.MatchRecord, 0, len(records))
	for _, rec := range records {
		_, v, ok := rec.GetFold(xKey)
		if !ok {
			continue
		}
		t, parsed := matchrecord.ParseDate(v)
		if !parsed {
			continue
		}
		day := dayOf(t)
		if hasStart && day.Before(start) {
			continue
		}
		if hasEnd && day.After(end) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// parseBound treats an empty or unparseable bound as open on that side.
func parseBound(s string) (time.Time, bool) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, false
	}
	t, ok := matchrecord.ParseDate(matchrecord.Text(s))
	if !ok {
		return time.Time{}, false
	}
	return dayOf(t), true
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
