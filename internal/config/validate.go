package config

import (
	"fmt"
	"strings"
)

// ValidateRaw checks semantic constraints of a RawTuning before it is
// merged onto the defaults. Only fields the file actually provides are
// checked; cross-field ordering is enforced later by Tuning.Validate.
func ValidateRaw(cfg RawTuning) error {
	var errs []string

	inUnit := func(name string, p *float64) {
		if p != nil && !(*p > 0 && *p < 1) {
			errs = append(errs, name+" must be in (0,1)")
		}
	}

	inUnit("at_bat.min_obp", cfg.AtBat.MinOBP)
	inUnit("at_bat.max_obp", cfg.AtBat.MaxOBP)
	inUnit("at_bat.walk_rate", cfg.AtBat.WalkRate)
	inUnit("at_bat.single_rate", cfg.AtBat.SingleRate)
	inUnit("at_bat.xbh_rate", cfg.AtBat.XBHRate)

	if cfg.AtBat.TripleChance != nil && (*cfg.AtBat.TripleChance < 0 || *cfg.AtBat.TripleChance > 1) {
		errs = append(errs, "at_bat.triple_chance must be in [0,1]")
	}
	if cfg.AtBat.AvgWHIP != nil && *cfg.AtBat.AvgWHIP <= 0 {
		errs = append(errs, "at_bat.avg_whip must be > 0")
	}
	if cfg.AtBat.WHIPCoeff != nil && *cfg.AtBat.WHIPCoeff < 0 {
		errs = append(errs, "at_bat.whip_coeff must be >= 0")
	}
	if cfg.AtBat.DefenseDivisor != nil && *cfg.AtBat.DefenseDivisor <= 0 {
		errs = append(errs, "at_bat.defense_divisor must be > 0")
	}
	if cfg.AtBat.ISOMultiplier != nil && *cfg.AtBat.ISOMultiplier < 0 {
		errs = append(errs, "at_bat.iso_multiplier must be >= 0")
	}

	if cfg.Game.FatigueStep != nil && *cfg.Game.FatigueStep < 0 {
		errs = append(errs, "game.fatigue_step must be >= 0")
	}
	if cfg.Game.RegulationInnings != nil && *cfg.Game.RegulationInnings < 1 {
		errs = append(errs, "game.regulation_innings must be >= 1")
	}
	if cfg.Game.MaxInnings != nil && *cfg.Game.MaxInnings < 1 {
		errs = append(errs, "game.max_innings must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("tuning validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
