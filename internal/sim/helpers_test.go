package sim

import (
	"fmt"
	"testing"

	"github.com/xtding233/replay-backend/internal/league"
)

// scriptRNG replays a fixed draw sequence so at-bat pipelines can be
// steered draw by draw. Exhausting a non-cycling script fails the test:
// it means the code consumed more draws than the scenario scheduled.
type scriptRNG struct {
	t     *testing.T
	draws []float64
	i     int
	cycle bool
}

func (s *scriptRNG) Float64() float64 {
	if s.i >= len(s.draws) {
		if !s.cycle {
			s.t.Fatalf("rng script exhausted after %d draws", len(s.draws))
		}
		s.i = 0
	}
	v := s.draws[s.i]
	s.i++
	return v
}

func script(t *testing.T, draws ...float64) *scriptRNG {
	return &scriptRNG{t: t, draws: draws}
}

func cycling(t *testing.T, draws ...float64) *scriptRNG {
	return &scriptRNG{t: t, draws: draws, cycle: true}
}

// allOut cycles a single high contact roll, so every plate appearance
// is an out and every at-bat consumes exactly one draw.
func allOut(t *testing.T) *scriptRNG { return cycling(t, 0.99) }

func testTeam(code string, batters int) *league.Team {
	tm := league.NewTeam(code)
	for i := 0; i < batters; i++ {
		tm.AddBatter(&league.Batter{
			Name:    fmt.Sprintf("%s batter %d", code, i+1),
			Team:    code,
			OBP:     0.330,
			OPS:     0.780,
			Overall: float64(100 - i),
		})
	}
	tm.AddPitcher(&league.Pitcher{Name: code + " ace", Team: code, WHIP: 1.30, Overall: 90})
	return tm
}

func testGame(t *testing.T, rng RandomSource) *Game {
	home := testTeam("HOM", 9)
	away := testTeam("AWY", 9)
	g, err := NewGame(home, away, home.Pitchers[0], away.Pitchers[0], DefaultTuning(), rng, nil)
	if err != nil {
		t.Fatal(err)
	}
	return g
}
