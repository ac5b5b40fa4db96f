package chart

import (
	"sort"
	"strings"

	"github.com/pitchside/matchboard/internal/domain/matchrecord"
)

// Point is one plotted coordinate. Y stays nil when the group held no
// numeric values for the series; the null must reach the renderer as a gap.
type Point struct {
	X any      `json:"x"`
	Y *float64 `json:"y"`
}

// SeriesData is one named line of points.
type SeriesData struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Data  []Point `json:"data"`
}

// Data is the renderer-facing result. Field names and null semantics are
// part of the contract and never change shape with input size or content.
type Data struct {
	XKey   string       `json:"xKey"`
	XLabel string       `json:"xLabel"`
	Series []SeriesData `json:"series"`
}

// Assemble turns the canonical record set and a chart config into plotted
// series. The config is validated first, then records are filtered and
// grouped once for the whole request and aggregated per configured series.
// The function is pure; identical inputs produce byte-identical output. A
// series key present in no record yields all-null points rather than an
// error, so one bad column cannot abort the whole render.
func Assemble(records []*matchrecord.MatchRecord, cfg *Config) (*Data, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	xKey := strings.TrimSpace(cfg.XAxis.Key)
	filtered := ApplyFilters(records, cfg.Filters, xKey)
	groups := GroupRecords(filtered, cfg.GroupBy, xKey)

	out := &Data{
		XKey:   xKey,
		XLabel: strings.TrimSpace(cfg.XAxis.Label),
		Series: make([]SeriesData, 0, len(cfg.Series)),
	}
	if out.XLabel == "" {
		out.XLabel = matchrecord.NormalizeLabel(xKey)
	}

	byDate := cfg.GroupBy == GroupByDate
	for _, s := range cfg.Series {
		agg := EffectiveAggregation(s.Aggregation)
		points := make([]Point, 0, len(groups))
		for _, g := range groups {
			points = append(points, Point{
				X: xValue(g, xKey, byDate),
				Y: yValue(g.Records, s.Key, agg),
			})
		}
		sortPoints(points)
		out.Series = append(out.Series, SeriesData{Key: s.Key, Label: s.Label, Data: points})
	}
	return out, nil
}

// xValue is the group key for date grouping, else the raw x axis value of
// the group's first record.
func xValue(g Group, xKey string, byDate bool) any {
	if byDate {
		return g.Key
	}
	if len(g.Records) == 0 {
		return ""
	}
	_, v, ok := g.Records[0].GetFold(xKey)
	if !ok {
		return ""
	}
	if n, isNumber := v.Number(); isNumber {
		return n
	}
	return v.String()
}

func yValue(records []*matchrecord.MatchRecord, seriesKey, agg string) *float64 {
	values := make([]float64, 0, len(records))
	for _, rec := range records {
		_, v, ok := rec.GetFold(seriesKey)
		if !ok {
			continue
		}
		if n, numeric := v.Numeric(); numeric {
			values = append(values, n)
		}
	}
	y, ok := Aggregate(values, agg)
	if !ok {
		return nil
	}
	return &y
}

func sortPoints(points []Point) {
	sort.SliceStable(points, func(i, j int) bool {
		return lessX(points[i].X, points[j].X)
	})
}

// lessX orders strings lexically and numbers numerically. Zero-padded date
// strings within one year sort chronologically this way. Mixed kinds keep
// their relative order.
func lessX(a, b any) bool {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	}
	return false
}
