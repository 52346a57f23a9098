package sim

import (
	"errors"
	"fmt"

	"github.com/xtding233/replay-backend/internal/league"
)

var ErrNoBatters = errors.New("team has no batters")

// side bundles one team's in-game state. The batter index is cyclic over
// the actual lineup length and persists across innings; the order does
// not reset to the top each inning.
type side struct {
	team      *league.Team
	pitcher   *league.Pitcher
	lineup    []*league.Batter
	fatigue   float64
	batterIdx int
	score     int
}

// Game owns the full state of one simulated game. It is single-threaded:
// Play drives everything synchronously and nothing else touches the
// state while it runs.
type Game struct {
	tuning Tuning
	rng    RandomSource
	sink   EventSink

	home *side
	away *side

	inning int
	called bool
}

// NewGame sets up a game between two rosters with pre-selected starting
// pitchers. Pitchers are fixed here so both report views and the engine
// agree on who is on the mound. A nil pitcher or an empty lineup is a
// fatal precondition.
func NewGame(home, away *league.Team, homePitcher, awayPitcher *league.Pitcher, tuning Tuning, rng RandomSource, sink EventSink) (*Game, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	if homePitcher == nil {
		return nil, fmt.Errorf("%s: %w", home.Code, ErrNoPitchers)
	}
	if awayPitcher == nil {
		return nil, fmt.Errorf("%s: %w", away.Code, ErrNoPitchers)
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	if sink == nil {
		sink = NopSink()
	}

	g := &Game{
		tuning: tuning,
		rng:    rng,
		sink:   sink,
		home:   &side{team: home, pitcher: homePitcher, lineup: StartingLineup(home)},
		away:   &side{team: away, pitcher: awayPitcher, lineup: StartingLineup(away)},
		inning: 1,
	}
	if len(g.home.lineup) == 0 {
		return nil, fmt.Errorf("%s: %w", home.Code, ErrNoBatters)
	}
	if len(g.away.lineup) == 0 {
		return nil, fmt.Errorf("%s: %w", away.Code, ErrNoBatters)
	}
	return g, nil
}

func (g *Game) HomePitcher() *league.Pitcher { return g.home.pitcher }
func (g *Game) AwayPitcher() *league.Pitcher { return g.away.pitcher }

// Play runs innings until a decision: regulation innings are always
// played, ties force extras, and the hard inning cap calls the game
// regardless of the score.
func (g *Game) Play() (Result, error) {
	for g.inning <= g.tuning.RegulationInnings || g.home.score == g.away.score {
		if g.inning > g.tuning.MaxInnings {
			g.called = true
			break
		}

		if err := g.playInning(); err != nil {
			return Result{}, err
		}

		// stamina loss for both starters after every full inning
		g.home.fatigue += g.tuning.FatigueStep
		g.away.fatigue += g.tuning.FatigueStep

		g.inning++
	}

	res := g.result()
	g.sink.OnGameEnd(res)
	return res, nil
}

// playInning runs the top half unconditionally, then the bottom half
// unless the home team already leads in the 9th or later (the walk-off
// rule applied at the half-inning boundary).
func (g *Game) playInning() error {
	if err := g.playHalfInning(g.away, g.home, Top); err != nil {
		return err
	}
	g.sink.OnHalfInningEnd(ScoreSnapshot{Inning: g.inning, Half: Top, AwayScore: g.away.score, HomeScore: g.home.score})

	if g.inning >= g.tuning.RegulationInnings && g.home.score > g.away.score {
		return nil
	}

	if err := g.playHalfInning(g.home, g.away, Bottom); err != nil {
		return err
	}
	g.sink.OnHalfInningEnd(ScoreSnapshot{Inning: g.inning, Half: Bottom, AwayScore: g.away.score, HomeScore: g.home.score})
	return nil
}

// playHalfInning loops plate appearances until 3 outs, or until a
// mid-inning walk-off: home takes the lead during the bottom of the 9th
// or later and the game ends on the spot. A tie does not end the inning;
// tied games always go to extras.
func (g *Game) playHalfInning(batting, defending *side, half Half) error {
	outs := 0
	bases := Bases{}

	for outs < 3 {
		if half == Bottom && g.inning >= g.tuning.RegulationInnings && g.home.score > g.away.score {
			break
		}

		batter := batting.lineup[batting.batterIdx]

		res, err := g.tuning.ResolveAtBat(batter, defending.pitcher, defending.team.Defense, defending.fatigue, g.rng)
		if err != nil {
			return fmt.Errorf("at-bat %s vs %s: %w", batter.Name, defending.pitcher.Name, err)
		}

		runs := 0
		if res.Outcome == Out {
			outs++
		} else {
			bases, runs = AdvanceRunners(bases, res.Outcome)
			batting.score += runs
		}

		g.sink.OnPlay(PlayEvent{
			Inning:  g.inning,
			Half:    half,
			Batter:  batter.Name,
			Outcome: res.Outcome,
			Result:  res.Outcome.String(),
			Robbed:  res.Robbed,
			Runs:    runs,
		})

		batting.batterIdx = (batting.batterIdx + 1) % len(batting.lineup)
	}
	return nil
}

func (g *Game) result() Result {
	winner := TieGame
	switch {
	case g.home.score > g.away.score:
		winner = HomeWins
	case g.away.score > g.home.score:
		winner = AwayWins
	}
	return Result{
		AwayCode:  g.away.team.Code,
		HomeCode:  g.home.team.Code,
		AwayScore: g.away.score,
		HomeScore: g.home.score,
		Innings:   g.inning - 1,
		Winner:    winner,
		Called:    g.called,
	}
}
