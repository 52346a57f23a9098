package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Paths helper for default/season tuning files.
type Paths struct {
	BaseDir string // base directory, e.g., /opt/app/config
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "tuning", "default.yaml")
}
func (p Paths) SeasonPath(season string) string {
	return filepath.Join(p.BaseDir, "tuning", season+".yaml")
}

// Loader reads YAML tuning and merges default → season overrides.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawTuning // key: season name or "$default"
}

// NewLoader creates a tuning loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawTuning),
	}
}

// LoadMerged loads and merges default → season (season optional).
// It returns the merged RawTuning (without normalization).
func (l *Loader) LoadMerged(season string) (RawTuning, error) {
	key := season
	if key == "" {
		key = "$default"
	}

	l.mu.RLock()
	if cfg, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	defCfg, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawTuning{}, fmt.Errorf("read default: %w", err)
	}
	var seasonCfg RawTuning
	if season != "" {
		seasonCfg, _ = readYAML(l.paths.SeasonPath(season)) // season file optional
	}

	merged := mergeRaw(defCfg, seasonCfg)

	l.mu.Lock()
	l.cache[key] = merged
	l.cache["$default"] = defCfg
	l.mu.Unlock()

	return merged, nil
}

// Invalidate clears loader's cache. Call after hot-reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawTuning)
}

// readYAML loads a YAML file into RawTuning. Missing files return zero cfg, no error.
func readYAML(path string) (RawTuning, error) {
	var cfg RawTuning
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawTuning{}, nil
		}
		return RawTuning{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawTuning{}, err
	}
	return cfg, nil
}

// mergeRaw overlays b onto a: fields b provides win.
func mergeRaw(a, b RawTuning) RawTuning {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	overF := func(dst **float64, src *float64) {
		if src != nil {
			v := *src
			*dst = &v
		}
	}
	overI := func(dst **int, src *int) {
		if src != nil {
			v := *src
			*dst = &v
		}
	}

	overF(&out.AtBat.AvgWHIP, b.AtBat.AvgWHIP)
	overF(&out.AtBat.WHIPCoeff, b.AtBat.WHIPCoeff)
	overF(&out.AtBat.MinOBP, b.AtBat.MinOBP)
	overF(&out.AtBat.MaxOBP, b.AtBat.MaxOBP)
	overF(&out.AtBat.DefenseDivisor, b.AtBat.DefenseDivisor)
	overF(&out.AtBat.WalkRate, b.AtBat.WalkRate)
	overF(&out.AtBat.SingleRate, b.AtBat.SingleRate)
	overF(&out.AtBat.XBHRate, b.AtBat.XBHRate)
	overF(&out.AtBat.TripleChance, b.AtBat.TripleChance)
	overF(&out.AtBat.ISOMultiplier, b.AtBat.ISOMultiplier)

	overF(&out.Game.FatigueStep, b.Game.FatigueStep)
	overI(&out.Game.RegulationInnings, b.Game.RegulationInnings)
	overI(&out.Game.MaxInnings, b.Game.MaxInnings)

	return out
}
