package chart

// EffectiveAggregation resolves the configured aggregation, defaulting to
// avg when the series left it unset.
func EffectiveAggregation(agg string) string {
	if agg == "" {
		return AggregationAvg
	}
	return agg
}

// Aggregate reduces a group's numeric values to one point. none takes the
// first value in iteration order. An empty value set yields no point at
// all; the caller renders that as an explicit null, never as zero, because
// zero is a real score and a gap is not.
func Aggregate(values []float64, agg string) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	switch agg {
	case AggregationNone:
		return values[0], true
	case AggregationSum:
		return sum(values), true
	default:
		return sum(values) / float64(len(values)), true
	}
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
