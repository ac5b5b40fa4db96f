package matchrecord

import (
	"math"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// Kind discriminates the scalar held by a Value.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindText
	KindNumber
)

// Value is one cell of a match record: a number, a piece of text, or absent.
// Consumers branch on Kind instead of coercing at the point of use.
type Value struct {
	kind Kind
	num  float64
	text string
}

func Number(v float64) Value {
	return Value{kind: KindNumber, num: v}
}

func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

func Absent() Value {
	return Value{}
}

// ValueFromCell converts one spreadsheet cell. Purely numeric-looking text
// becomes a number; empty text becomes absent; everything else stays text.
func ValueFromCell(cell string) Value {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return Absent()
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return Number(n)
	}
	return Text(cell)
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// IsEmpty reports whether the value is absent or blank text.
func (v Value) IsEmpty() bool {
	if v.kind == KindAbsent {
		return true
	}
	return v.kind == KindText && strings.TrimSpace(v.text) == ""
}

func (v Value) Number() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Numeric returns the value as a number, parsing numeric-looking text.
// Aggregation and season filtering treat parseable text as numeric.
func (v Value) Numeric() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindText:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func (v Value) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// String renders the display form: text verbatim, numbers without a trailing
// zero fraction, absent as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.text
	default:
		return ""
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return sonic.Marshal(v.num)
	case KindText:
		return sonic.Marshal(v.text)
	default:
		return []byte("null"), nil
	}
}

// MatchRecord is one logical match's statistics as an ordered, open mapping
// from canonical column label to Value. Labels are canonicalized on write and
// on lookup, so two raw spellings of the same column land in one slot.
type MatchRecord struct {
	labels []string
	values map[string]Value
	fold   map[string]string
}

func NewRecord() *MatchRecord {
	return &MatchRecord{
		values: make(map[string]Value),
		fold:   make(map[string]string),
	}
}

func (r *MatchRecord) Set(label string, v Value) {
	canonical := NormalizeLabel(label)
	if canonical == "" {
		return
	}
	if _, exists := r.values[canonical]; !exists {
		r.labels = append(r.labels, canonical)
		folded := strings.ToLower(canonical)
		if _, taken := r.fold[folded]; !taken {
			r.fold[folded] = canonical
		}
	}
	r.values[canonical] = v
}

func (r *MatchRecord) Get(label string) Value {
	if r == nil {
		return Absent()
	}
	return r.values[NormalizeLabel(label)]
}

func (r *MatchRecord) Has(label string) bool {
	if r == nil {
		return false
	}
	_, ok := r.values[NormalizeLabel(label)]
	return ok
}

// GetFold resolves a label ignoring case and returns the record's actual
// label alongside the value. Alias probing goes through here.
func (r *MatchRecord) GetFold(label string) (string, Value, bool) {
	if r == nil {
		return "", Absent(), false
	}
	canonical := NormalizeLabel(label)
	if v, ok := r.values[canonical]; ok {
		return canonical, v, true
	}
	if actual, ok := r.fold[strings.ToLower(canonical)]; ok {
		return actual, r.values[actual], true
	}
	return "", Absent(), false
}

// Labels returns the canonical labels in insertion order.
func (r *MatchRecord) Labels() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.labels...)
}

func (r *MatchRecord) Len() int {
	if r == nil {
		return 0
	}
	return len(r.labels)
}

func (r *MatchRecord) Clone() *MatchRecord {
	if r == nil {
		return NewRecord()
	}
	out := &MatchRecord{
		labels: append([]string(nil), r.labels...),
		values: make(map[string]Value, len(r.values)),
		fold:   make(map[string]string, len(r.fold)),
	}
	for k, v := range r.values {
		out.values[k] = v
	}
	for k, v := range r.fold {
		out.fold[k] = v
	}
	return out
}

// MarshalJSON writes an object with fields in insertion order, so identical
// records always serialize to identical bytes.
func (r *MatchRecord) MarshalJSON() ([]byte, error) {
	if r == nil || len(r.labels) == 0 {
		return []byte("{}"), nil
	}

	var buf strings.Builder
	buf.WriteByte('{')
	for i, label := range r.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := sonic.Marshal(label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := r.values[label].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return []byte(buf.String()), nil
}
