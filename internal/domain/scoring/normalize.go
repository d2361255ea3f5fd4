package scoring

import "math"

// singleValueTolerance treats nearly equal bounds as a single value.
const singleValueTolerance = 1e-10

// MinMax is the observed range of a raw score column.
type MinMax struct {
	Min float64
	Max float64
}

// Range returns max - min.
func (m MinMax) Range() float64 { return m.Max - m.Min }

// IsSingleValue reports whether every observation was the same.
func (m MinMax) IsSingleValue() bool {
	return math.Abs(m.Max-m.Min) < singleValueTolerance
}

// Bounds returns the range of raw. The zero MinMax is returned for an empty map.
func Bounds(raw Scores) MinMax {
	first := true
	var mm MinMax
	for _, v := range raw {
		if first {
			mm = MinMax{Min: v, Max: v}
			first = false
			continue
		}
		mm.Min = math.Min(mm.Min, v)
		mm.Max = math.Max(mm.Max, v)
	}
	return mm
}

// NormalizeMinMax rescales raw to [0,100] with (x-min)/(max-min)*100.
// When every company has the same raw value all scores are 0.
func NormalizeMinMax(raw Scores) Scores {
	out := make(Scores, len(raw))
	mm := Bounds(raw)
	for company, v := range raw {
		if mm.IsSingleValue() {
			out[company] = 0
			continue
		}
		out[company] = clamp((v - mm.Min) / mm.Range() * maxScoreValue)
	}
	return out
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(maxScoreValue, v))
}
