package chart

import (
	"testing"

	"github.com/pitchside/matchboard/internal/domain/matchrecord"
)

func TestGroupRecordsByMatch(t *testing.T) {
	records := filterFixtures()
	groups := GroupRecords(records, GroupByMatch, "Date")
	if len(groups) != len(records) {
		t.Fatalf("got %d groups, want one singleton per record", len(groups))
	}
	for i, g := range groups {
		if len(g.Records) != 1 {
			t.Fatalf("group %d holds %d records, want 1", i, len(g.Records))
		}
	}
	if groups[0].Key != "0" || groups[2].Key != "2" {
		t.Fatalf("keys = %q/%q, want positional keys", groups[0].Key, groups[2].Key)
	}
}

func TestGroupRecordsEmptyStrategyActsLikeMatch(t *testing.T) {
	groups := GroupRecords(filterFixtures(), "", "Date")
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3 singletons", len(groups))
	}
}

func TestGroupRecordsByDate(t *testing.T) {
	records := []*matchrecord.MatchRecord{
		filterRecord("Date", "01/15/2024", "Shots", "4"),
		filterRecord("Date", "2024-01-15", "Shots", "10"),
		filterRecord("Date", "02/01/2024", "Shots", "7"),
		filterRecord("Date", "soon", "Shots", "2"),
	}

	groups := GroupRecords(records, GroupByDate, "Date")
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3 (two spellings of one day collapse)", len(groups))
	}
	if groups[0].Key != "01/15/2024" || len(groups[0].Records) != 2 {
		t.Fatalf("first group = %q with %d records, want both January records", groups[0].Key, len(groups[0].Records))
	}
	if groups[1].Key != "02/01/2024" {
		t.Fatalf("second group = %q, want first-seen order preserved", groups[1].Key)
	}
	if groups[2].Key != UnknownDateKey || len(groups[2].Records) != 1 {
		t.Fatalf("third group = %q, want the unparseable date bucketed as %q", groups[2].Key, UnknownDateKey)
	}
}

func TestGroupRecordsByDateHonorsAliasedXKey(t *testing.T) {
	records := []*matchrecord.MatchRecord{
		filterRecord("played_at", "01/15/2024"),
	}
	groups := GroupRecords(records, GroupByDate, "Played At")
	if len(groups) != 1 || groups[0].Key != "01/15/2024" {
		t.Fatalf("groups = %+v, want the snake_case column found under its canonical label", groups)
	}
}
