package sim

import (
	"errors"
	"math"
)

var ErrInvalidProb = errors.New("invalid probability p; must be 0..1")

// validateProb rejects probabilities outside [0,1] and any NaN/Inf.
// A NaN here means broken ratings upstream; it must surface as an error
// instead of silently skewing every draw.
func validateProb(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return ErrInvalidProb
	}
	if p < 0 || p > 1 {
		return ErrInvalidProb
	}
	return nil
}

// validateFinite rejects NaN/Inf only; used for thresholds that may
// leave [0,1].
func validateFinite(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ErrInvalidProb
	}
	return nil
}
