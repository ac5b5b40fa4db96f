package chart

import (
	"strconv"

	"github.com/pitchside/matchboard/internal/domain/matchrecord"
)

// UnknownDateKey buckets records whose x axis value does not parse as a
// date, so they chart as a visible group instead of vanishing.
const UnknownDateKey = "unknown"

// Group is one partition of the filtered record set.
type Group struct {
	Key     string
	Records []*matchrecord.MatchRecord
}

// GroupRecords partitions records per the strategy, preserving first-seen
// order. Match grouping keeps every record as its own singleton, keyed by
// position, so no aggregation happens downstream. Date grouping buckets by
// the day of the x axis field. Team grouping is resolved by the caller
// narrowing the record set to one team before rendering, so here it behaves
// like match grouping.
func GroupRecords(records []*matchrecord.MatchRecord, strategy, xKey string) []Group {
	if strategy != GroupByDate {
		groups := make([]Group, 0, len(records))
		for i, rec := range records {
			groups = append(groups, Group{
				Key:     strconv.Itoa(i),
				Records: []*matchrecord.MatchRecord{rec},
			})
		}
		return groups
	}

	index := make(map[string]int, len(records))
	groups := make([]Group, 0, len(records))
	for _, rec := range records {
		key := UnknownDateKey
		if _, v, ok := rec.GetFold(xKey); ok {
			if t, parsed := matchrecord.ParseDate(v); parsed {
				key = matchrecord.FormatDate(t)
			}
		}
		at, seen := index[key]
		if !seen {
			at = len(groups)
			index[key] = at
			groups = append(groups, Group{Key: key})
		}
		groups[at].Records = append(groups[at].Records, rec)
	}
	return groups
}
