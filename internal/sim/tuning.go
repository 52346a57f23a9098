package sim

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadTuning = errors.New("invalid tuning")

// Tuning holds every calibration constant of the engine as a named field
// so the model can be re-tuned from config instead of editing literals.
// Zero value is not usable; start from DefaultTuning.
type Tuning struct {
	// At-bat resolution
	AvgWHIP        float64 // league-average WHIP baseline
	WHIPCoeff      float64 // dampener on (effective WHIP - AvgWHIP)
	MinOBP         float64 // lower clamp on adjusted on-base probability
	MaxOBP         float64 // upper clamp on adjusted on-base probability
	DefenseDivisor float64 // Rdrs -> fielding save chance divisor

	// Cumulative hit-type thresholds on a single [0,1) roll.
	// Must satisfy 0 < WalkRate < SingleRate < XBHRate < 1.
	WalkRate      float64
	SingleRate    float64
	XBHRate       float64
	TripleChance  float64 // triple vs double split inside the XBH band
	ISOMultiplier float64 // scales ISO into the home-run power threshold

	// Game progression
	FatigueStep       float64 // added to each pitcher's effective WHIP per inning
	RegulationInnings int     // innings before extra-inning rules apply
	MaxInnings        int     // hard cap; game is called beyond this
}

// DefaultTuning returns the calibrated 2025-season constants.
func DefaultTuning() Tuning {
	return Tuning{
		AvgWHIP:        1.30,
		WHIPCoeff:      0.40,
		MinOBP:         0.100,
		MaxOBP:         0.700,
		DefenseDivisor: 300,

		// MLB OBP average is .315 and walk rate ~.080 => .225 of
		// on-base events are walks; 53% are singles (.530 + .225).
		WalkRate:      0.225,
		SingleRate:    0.755,
		XBHRate:       0.92,
		TripleChance:  0.15,
		ISOMultiplier: 2.5,

		FatigueStep:       0.05,
		RegulationInnings: 9,
		MaxInnings:        15,
	}
}

// Validate checks semantic constraints of a Tuning.
func (t Tuning) Validate() error {
	var errs []string

	if !(t.MinOBP > 0 && t.MinOBP < 1) || !(t.MaxOBP > 0 && t.MaxOBP <= 1) || t.MinOBP >= t.MaxOBP {
		errs = append(errs, "obp clamp must satisfy 0 < min < max <= 1")
	}
	if t.DefenseDivisor <= 0 {
		errs = append(errs, "defense_divisor must be > 0")
	}
	if !(t.WalkRate > 0 && t.WalkRate < t.SingleRate && t.SingleRate < t.XBHRate && t.XBHRate < 1) {
		errs = append(errs, "hit thresholds must satisfy 0 < walk_rate < single_rate < xbh_rate < 1")
	}
	if t.TripleChance < 0 || t.TripleChance > 1 {
		errs = append(errs, "triple_chance must be in [0,1]")
	}
	if t.ISOMultiplier < 0 {
		errs = append(errs, "iso_multiplier must be >= 0")
	}
	if t.FatigueStep < 0 {
		errs = append(errs, "fatigue_step must be >= 0")
	}
	if t.RegulationInnings < 1 {
		errs = append(errs, "regulation_innings must be >= 1")
	}
	if t.MaxInnings < t.RegulationInnings {
		errs = append(errs, "max_innings must be >= regulation_innings")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrBadTuning, strings.Join(errs, "; "))
	}
	return nil
}
