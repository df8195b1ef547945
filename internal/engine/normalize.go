package engine

import "math"

// Normalize maps a score from any of the upstream scales onto the
// canonical 0-10 range:
//
//	non-numeric (NaN)  -> 0.0
//	[0,1]   fractional -> x10
//	(1,10]  canonical  -> identity
//	(10,100] percent   -> /10
//	>100               -> 10.0
//	<0                 -> 0.0
//
// It is total (never fails) and idempotent for inputs already in
// (1,10], which lets heterogeneous score sources merge without the
// caller knowing their provenance.
func Normalize(v float64) float64 {
	if math.IsNaN(v) {
		return 0.0
	}

	switch {
	case v >= 0 && v <= 1:
		return round2(v * 10)
	case v > 1 && v <= 10:
		return round2(v)
	case v > 10 && v <= 100:
		return round2(v / 10)
	case v > 100:
		return 10.0
	default:
		return 0.0
	}
}

// LengthFit scores answer word count on the 0-1 band used by the
// report rubric: too short is penalized hard, the 25-60 word range is
// ideal, and rambling answers lose ground again.
func LengthFit(answer string) float64 {
	wc := wordCount(answer)
	switch {
	case wc < 8:
		return 0.1
	case wc < 15:
		return 0.4
	case wc < 25:
		return 0.7
	case wc < 60:
		return 1.0
	default:
		return 0.6
	}
}
