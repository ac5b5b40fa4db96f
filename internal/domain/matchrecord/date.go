package matchrecord

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Dates are displayed as MM/DD/YYYY. Zero-padded, so lexical order within a
// year is chronological order.
const canonicalDateLayout = "01/02/2006"

const (
	minDateSerial = 1
	maxDateSerial = 2958465 // 12/31/9999
)

// dateLayouts are tried in order when parsing text. Canonical and ISO forms
// first, loose free-form layouts as last resort.
var dateLayouts = []string{
	canonicalDateLayout,
	"1/2/2006",
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02-01-2006",
}

// ParseDate resolves a value to a point in time. Numbers are read as
// spreadsheet date serials, text through the layout list.
func ParseDate(v Value) (time.Time, bool) {
	if n, ok := v.Number(); ok {
		return dateFromSerial(n)
	}
	if s, ok := v.Text(); ok {
		return parseDateText(s)
	}
	return time.Time{}, false
}

// CanonicalDate renders a value as MM/DD/YYYY. Unparseable input comes back
// as the stringified original so downstream sorting and grouping still have
// something stable to work with.
func CanonicalDate(v Value) string {
	if t, ok := ParseDate(v); ok {
		return FormatDate(t)
	}
	return v.String()
}

// FormatDate reads the local calendar fields of t. Converting through UTC
// here would shift dates by one day near timezone boundaries.
func FormatDate(t time.Time) string {
	year, month, day := t.Date()
	return fmt.Sprintf("%02d/%02d/%04d", int(month), day, year)
}

// CanonicalizeDateField rewrites the record's date field in place to the
// display format, so records from both sources agree before key derivation
// and grouping compare them.
func CanonicalizeDateField(rec *MatchRecord) {
	if label, v, ok := DateAliases.Lookup(rec); ok {
		rec.Set(label, Text(CanonicalDate(v)))
	}
}

func parseDateText(s string) (time.Time, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, trimmed, time.Local)
		if err != nil {
			continue
		}
		return t.In(time.Local), true
	}
	return time.Time{}, false
}

// dateFromSerial interprets a spreadsheet day serial against the 1899-12-30
// epoch. Serials 59 and below predate the phantom 1900 leap day and shift
// forward one day.
func dateFromSerial(serial float64) (time.Time, bool) {
	if math.IsNaN(serial) || serial < minDateSerial || serial > maxDateSerial {
		return time.Time{}, false
	}

	days := int(math.Floor(serial))
	if days <= 59 {
		days++
	}
	epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.Local)
	return epoch.AddDate(0, 0, days), true
}
