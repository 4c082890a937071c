package pipeline

import "math"

// PickMetric returns the first candidate field that coerces to a finite
// number, or 0. Only absent fields are passed over; null, blank strings and
// booleans coerce (see Value.Coerce).
func PickMetric(row Row, keys []string) float64 {
	for _, key := range keys {
		v, ok := row.Get(key)
		if !ok {
			continue
		}
		if f, ok := v.Coerce(); ok {
			return f
		}
	}
	return 0
}

// Round2 rounds half away from zero to two decimals.
func Round2(f float64) float64 {
	if !isFinite(f) {
		return 0
	}
	return math.Round(f*100) / 100
}

func nonNegative(f float64) float64 {
	if !isFinite(f) || f < 0 {
		return 0
	}
	return f
}
