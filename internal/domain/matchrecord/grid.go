package matchrecord

import (
	"fmt"
	"strconv"
	"strings"
)

// FromGrid converts a spreadsheet value range into records. The first
// argument is the header row; every following row produces one record keyed
// by the normalized header labels. Columns with a blank header and rows with
// no values at all are skipped, and cells past the header width are dropped.
func FromGrid(header []string, rows [][]any) []*MatchRecord {
	labels := make([]string, len(header))
	for i, h := range header {
		labels[i] = strings.TrimSpace(h)
	}

	records := make([]*MatchRecord, 0, len(rows))
	for _, row := range rows {
		rec := NewRecord()
		empty := true
		for i, cell := range row {
			if i >= len(labels) || labels[i] == "" {
				continue
			}
			v := ValueFromAny(cell)
			if !v.IsEmpty() {
				empty = false
			}
			rec.Set(labels[i], v)
		}
		if empty {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// ValueFromAny coerces a decoded JSON cell into a Value. Unformatted sheet
// responses carry numbers as float64 and everything else as strings.
func ValueFromAny(cell any) Value {
	switch c := cell.(type) {
	case nil:
		return Absent()
	case float64:
		return Number(c)
	case bool:
		return Text(strconv.FormatBool(c))
	case string:
		return ValueFromCell(c)
	default:
		return ValueFromCell(fmt.Sprint(c))
	}
}
