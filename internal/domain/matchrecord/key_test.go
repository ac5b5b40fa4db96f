package matchrecord

import "testing"

func keyRecord(pairs ...string) *MatchRecord {
	rec := NewRecord()
	for i := 0; i+1 < len(pairs); i += 2 {
		rec.Set(pairs[i], ValueFromCell(pairs[i+1]))
	}
	return rec
}

func TestDeriveKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		rec    *MatchRecord
		want   string
		wantOK bool
	}{
		{
			name:   "external id outranks everything",
			rec:    keyRecord("Match ID", "M1", "Date", "01/01/2024", "Opponent", "A"),
			want:   "id:m1",
			wantOK: true,
		},
		{
			name:   "id is trimmed and lowercased",
			rec:    keyRecord("Game ID", "  AbC-7 "),
			want:   "id:abc-7",
			wantOK: true,
		},
		{
			name:   "date and opponent compose",
			rec:    keyRecord("Date", "2024-01-01", "Opponent", "Arsenal"),
			want:   "date:01/01/2024|opponent:arsenal",
			wantOK: true,
		},
		{
			name:   "aliased spellings still compose",
			rec:    keyRecord("played_at", "2024-01-01", "Vs", "Leeds"),
			want:   "date:01/01/2024|opponent:leeds",
			wantOK: true,
		},
		{
			name:   "date alone",
			rec:    keyRecord("Date", "2024-01-01"),
			want:   "date:01/01/2024",
			wantOK: true,
		},
		{
			name:   "opponent alone",
			rec:    keyRecord("Opponent", "Arsenal"),
			want:   "opponent:arsenal",
			wantOK: true,
		},
		{
			name:   "empty id falls through to the composite",
			rec:    keyRecord("Match ID", "", "Date", "2024-01-01", "Opponent", "A"),
			want:   "date:01/01/2024|opponent:a",
			wantOK: true,
		},
		{
			name:   "no identity fields at all",
			rec:    keyRecord("Shots", "4"),
			wantOK: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := DeriveKey(tc.rec)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if got != tc.want {
				t.Fatalf("key = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDeriveKeyUnparseableDateStillKeys(t *testing.T) {
	t.Parallel()

	key, ok := DeriveKey(keyRecord("Date", "round one", "Opponent", "Leeds"))
	if !ok {
		t.Fatal("expected a key")
	}
	if key != "date:round one|opponent:leeds" {
		t.Fatalf("key = %q, want the stringified original date", key)
	}
}
