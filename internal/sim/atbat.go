package sim

import "github.com/xtding233/replay-backend/internal/league"

// AtBatResult reports one resolved plate appearance.

type AtBatResult struct {
	Outcome Outcome
	Robbed  bool // true when the defense turned a would-be hit into an out
}

// ResolveAtBat runs the three-stage sabermetric pipeline for a single
// plate appearance:
//  1. contact check: batter OBP adjusted by the pitcher's effective WHIP
//     (season WHIP + accumulated fatigue) against the league baseline
//  2. defense check: the fielding team's Rdrs can rob a hit
//  3. hit-type roll against the cumulative walk/single/XBH thresholds,
//     with the ISO power check deciding HR vs wall-ball double
//
// Each stage terminates early on OUT, so later draws are never consumed.
// Derived probabilities are validated before every draw; a NaN or
// out-of-range value from broken ratings comes back as ErrInvalidProb.
func (t Tuning) ResolveAtBat(batter *league.Batter, pitcher *league.Pitcher, defense, fatigue float64, rng RandomSource) (AtBatResult, error) {
	if rng == nil {
		rng = DefaultRNG()
	}

	// 1. contact chance
	effectiveWHIP := pitcher.WHIP + fatigue
	whipDiff := effectiveWHIP - t.AvgWHIP

	adjustedOBP := batter.OBP + whipDiff*t.WHIPCoeff
	if adjustedOBP < t.MinOBP {
		adjustedOBP = t.MinOBP
	}
	if adjustedOBP > t.MaxOBP {
		adjustedOBP = t.MaxOBP
	}
	if err := validateProb(adjustedOBP); err != nil {
		return AtBatResult{}, err
	}
	if rng.Float64() > adjustedOBP {
		return AtBatResult{Outcome: Out}, nil
	}

	// 2. defense check
	saveChance := defense / t.DefenseDivisor
	if saveChance < 0 {
		saveChance = 0
	}
	if err := validateProb(saveChance); err != nil {
		return AtBatResult{}, err
	}
	if rng.Float64() < saveChance {
		return AtBatResult{Outcome: Out, Robbed: true}, nil
	}

	// 3. hit type
	roll := rng.Float64()
	switch {
	case roll < t.WalkRate:
		return AtBatResult{Outcome: Walk}, nil
	case roll < t.SingleRate:
		return AtBatResult{Outcome: Single}, nil
	case roll < t.XBHRate:
		if rng.Float64() < t.TripleChance {
			return AtBatResult{Outcome: Triple}, nil
		}
		return AtBatResult{Outcome: Double}, nil
	}

	// 4. power check: HR vs off-the-wall double
	iso := batter.OPS - batter.OBP
	powerThreshold := 1.0 - iso*t.ISOMultiplier
	if err := validateFinite(powerThreshold); err != nil {
		return AtBatResult{}, err
	}
	// powerThreshold can fall below 0 for high-ISO batters; the HR
	// then becomes guaranteed at this stage
	if rng.Float64() > powerThreshold {
		return AtBatResult{Outcome: HomeRun}, nil
	}
	return AtBatResult{Outcome: Double}, nil
}
