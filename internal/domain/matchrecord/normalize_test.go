package matchrecord

import "testing"

func TestNormalizeLabel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "camel case splits at boundaries", in: "goalsFor", want: "Goals For"},
		{name: "snake case splits on underscores", in: "shots_against", want: "Shots Against"},
		{name: "canonical form passes through", in: "Goals For", want: "Goals For"},
		{name: "single lowercase word stays verbatim", in: "opponent", want: "opponent"},
		{name: "free text stays verbatim", in: "GF%", want: "GF%"},
		{name: "surrounding whitespace is trimmed", in: "  goalsFor  ", want: "Goals For"},
		{name: "snake case with numeric segment", in: "expected_goals_90", want: "Expected Goals 90"},
		{name: "longer camel run", in: "cleanSheetStreak", want: "Clean Sheet Streak"},
		{name: "empty input", in: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeLabel(tc.in); got != tc.want {
				t.Fatalf("NormalizeLabel(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeLabelIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"goalsFor", "shots_against", "Goals For", "GF%", "matchRating", "clean_sheets", "Vs"}
	for _, in := range inputs {
		once := NormalizeLabel(in)
		twice := NormalizeLabel(once)
		if once != twice {
			t.Errorf("NormalizeLabel is not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNormalizeLabelCollidesRawSpellings(t *testing.T) {
	t.Parallel()

	if a, b := NormalizeLabel("goalsFor"), NormalizeLabel("goals_for"); a != b {
		t.Fatalf("expected both spellings to share a canonical label, got %q and %q", a, b)
	}
}

func TestAliasTableLookupOrder(t *testing.T) {
	t.Parallel()

	rec := NewRecord()
	rec.Set("ID", Text("DB-1"))
	rec.Set("match id", Text("M-9"))

	label, v, ok := IdentityAliases.Lookup(rec)
	if !ok {
		t.Fatal("expected an identity value")
	}
	if label != "match id" {
		t.Fatalf("label = %q, want the record's own spelling %q", label, "match id")
	}
	if got := v.String(); got != "M-9" {
		t.Fatalf("value = %q, want %q (Match ID outranks ID regardless of insertion order)", got, "M-9")
	}
}

func TestAliasTableLookupSkipsEmptyValues(t *testing.T) {
	t.Parallel()

	rec := NewRecord()
	rec.Set("Match ID", Text(""))
	rec.Set("Fixture ID", Text("F-3"))

	label, v, ok := IdentityAliases.Lookup(rec)
	if !ok {
		t.Fatal("expected lookup to fall through to the next alias")
	}
	if label != "Fixture ID" || v.String() != "F-3" {
		t.Fatalf("got %q=%q, want Fixture ID=F-3", label, v.String())
	}
}

func TestAliasTableLookupMisses(t *testing.T) {
	t.Parallel()

	rec := NewRecord()
	rec.Set("Shots", Number(4))

	if _, _, ok := OpponentAliases.Lookup(rec); ok {
		t.Fatal("expected no opponent on a shots-only record")
	}
}
