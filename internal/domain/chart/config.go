package chart

import (
	"errors"
	"fmt"
	"strings"
)

const (
	AggregationNone = "none"
	AggregationAvg  = "avg"
	AggregationSum  = "sum"

	GroupByMatch = "match"
	GroupByDate  = "date"
	GroupByTeam  = "team"

	MaxSeries = 10
)

var (
	ErrNilConfig          = errors.New("chart config is required")
	ErrMissingXAxisKey    = errors.New("x axis key is required")
	ErrNoSeries           = errors.New("at least one series is required")
	ErrTooManySeries      = errors.New("too many series")
	ErrSeriesIncomplete   = errors.New("series needs both key and label")
	ErrUnknownAggregation = errors.New("unknown aggregation")
	ErrUnknownGroupBy     = errors.New("unknown group by")
)

// XAxis names the record field plotted on the horizontal axis.
type XAxis struct {
	Key   string `json:"key"`
	Label string `json:"label,omitempty"`
}

// Series selects one record field and how to reduce it per group. An empty
// aggregation means avg.
type Series struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Aggregation string `json:"aggregation,omitempty"`
}

// DateRange bounds records on the x axis field, inclusive on both ends.
// Either bound may be empty.
type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Filters narrows the record set before grouping. Dimensions combine with
// AND; values inside one dimension combine with OR.
type Filters struct {
	Teams     []string   `json:"teams,omitempty"`
	Opponents []string   `json:"opponents,omitempty"`
	Seasons   []int      `json:"seasons,omitempty"`
	DateRange *DateRange `json:"dateRange,omitempty"`
}

// Config is the user-authored chart document. Its JSON shape is shared by
// the API, persistence, and the rendering layer.
type Config struct {
	XAxis   XAxis    `json:"xAxis"`
	Series  []Series `json:"series"`
	Filters *Filters `json:"filters,omitempty"`
	GroupBy string   `json:"groupBy,omitempty"`
}

// Validate rejects a malformed config before any data is touched. Rendering
// never re-checks these rules mid-assembly.
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}
	if strings.TrimSpace(c.XAxis.Key) == "" {
		return ErrMissingXAxisKey
	}
	if len(c.Series) == 0 {
		return ErrNoSeries
	}
	if len(c.Series) > MaxSeries {
		return fmt.Errorf("%w: %d configured, limit is %d", ErrTooManySeries, len(c.Series), MaxSeries)
	}
	for i, s := range c.Series {
		if strings.TrimSpace(s.Key) == "" || strings.TrimSpace(s.Label) == "" {
			return fmt.Errorf("%w: series %d", ErrSeriesIncomplete, i)
		}
		switch s.Aggregation {
		case "", AggregationNone, AggregationAvg, AggregationSum:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownAggregation, s.Aggregation)
		}
	}
	switch c.GroupBy {
	case "", GroupByMatch, GroupByDate, GroupByTeam:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGroupBy, c.GroupBy)
	}
	return nil
}

// IsConfigError reports whether err comes from config validation, so
// callers can map it to a rejection rather than a server fault.
func IsConfigError(err error) bool {
	for _, sentinel := range []error{
		ErrNilConfig,
		ErrMissingXAxisKey,
		ErrNoSeries,
		ErrTooManySeries,
		ErrSeriesIncomplete,
		ErrUnknownAggregation,
		ErrUnknownGroupBy,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
