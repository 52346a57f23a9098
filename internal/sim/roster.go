package sim

import (
	"errors"
	"sort"

	"github.com/xtding233/replay-backend/internal/league"
)

var ErrNoPitchers = errors.New("team has no pitchers")

const (
	lineupSize    = 9
	rotationDepth = 3
)

// StartingPitcher picks uniformly among the team's top pitchers by
// overall rating, simulating rotation variance. Empty pool is an error:
// a game must not start without a pitcher.
func StartingPitcher(t *league.Team, rng RandomSource) (*league.Pitcher, error) {
	if len(t.Pitchers) == 0 {
		return nil, ErrNoPitchers
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	sorted := append([]*league.Pitcher(nil), t.Pitchers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Overall > sorted[j].Overall
	})
	top := sorted
	if len(top) > rotationDepth {
		top = top[:rotationDepth]
	}
	return top[IntN(rng, len(top))], nil
}

// StartingLineup returns the best nine batters by overall rating, or the
// whole pool when a team is short. The sort is stable so equal ratings
// keep their input order and lineups stay reproducible.
func StartingLineup(t *league.Team) []*league.Batter {
	if len(t.Batters) < lineupSize {
		return append([]*league.Batter(nil), t.Batters...)
	}
	sorted := append([]*league.Batter(nil), t.Batters...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Overall > sorted[j].Overall
	})
	return sorted[:lineupSize]
}
