// types.go
package config

import "github.com/xtding233/replay-backend/internal/sim"

// RawTuning is the tuning schema as loaded from YAML. Every knob is a
// pointer so a file can override just the fields it names; nil means
// "keep the default".
type RawTuning struct {
	Version string      `yaml:"version"`
	AtBat   AtBatConfig `yaml:"at_bat"`
	Game    GameConfig  `yaml:"game"`
	Notes   string      `yaml:"notes,omitempty"`
}

type AtBatConfig struct {
	AvgWHIP        *float64 `yaml:"avg_whip,omitempty"`
	WHIPCoeff      *float64 `yaml:"whip_coeff,omitempty"`
	MinOBP         *float64 `yaml:"min_obp,omitempty"`
	MaxOBP         *float64 `yaml:"max_obp,omitempty"`
	DefenseDivisor *float64 `yaml:"defense_divisor,omitempty"`
	WalkRate       *float64 `yaml:"walk_rate,omitempty"`
	SingleRate     *float64 `yaml:"single_rate,omitempty"`
	XBHRate        *float64 `yaml:"xbh_rate,omitempty"`
	TripleChance   *float64 `yaml:"triple_chance,omitempty"`
	ISOMultiplier  *float64 `yaml:"iso_multiplier,omitempty"`
}

type GameConfig struct {
	FatigueStep       *float64 `yaml:"fatigue_step,omitempty"`
	RegulationInnings *int     `yaml:"regulation_innings,omitempty"`
	MaxInnings        *int     `yaml:"max_innings,omitempty"`
}

// Normalize folds the raw overrides onto the engine defaults and
// validates the result.
func (c RawTuning) Normalize() (sim.Tuning, error) {
	t := sim.DefaultTuning()

	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setI := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}

	setF(&t.AvgWHIP, c.AtBat.AvgWHIP)
	setF(&t.WHIPCoeff, c.AtBat.WHIPCoeff)
	setF(&t.MinOBP, c.AtBat.MinOBP)
	setF(&t.MaxOBP, c.AtBat.MaxOBP)
	setF(&t.DefenseDivisor, c.AtBat.DefenseDivisor)
	setF(&t.WalkRate, c.AtBat.WalkRate)
	setF(&t.SingleRate, c.AtBat.SingleRate)
	setF(&t.XBHRate, c.AtBat.XBHRate)
	setF(&t.TripleChance, c.AtBat.TripleChance)
	setF(&t.ISOMultiplier, c.AtBat.ISOMultiplier)

	setF(&t.FatigueStep, c.Game.FatigueStep)
	setI(&t.RegulationInnings, c.Game.RegulationInnings)
	setI(&t.MaxInnings, c.Game.MaxInnings)

	if err := t.Validate(); err != nil {
		return sim.Tuning{}, err
	}
	return t, nil
}
