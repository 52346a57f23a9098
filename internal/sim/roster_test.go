package sim

import (
	"errors"
	"testing"

	"github.com/xtding233/replay-backend/internal/league"
)

func TestStartingLineupTakesTopNine(t *testing.T) {
	tm := testTeam("NYY", 12)
	lineup := StartingLineup(tm)
	if len(lineup) != 9 {
		t.Fatalf("lineup size %d", len(lineup))
	}
	for i := 1; i < len(lineup); i++ {
		if lineup[i].Overall > lineup[i-1].Overall {
			t.Fatalf("lineup not sorted by rating at %d", i)
		}
	}
	// the three weakest never crack the lineup
	for _, b := range lineup {
		if b.Overall < 100-8 {
			t.Fatalf("weak batter %s in lineup", b.Name)
		}
	}
}

func TestStartingLineupShortPool(t *testing.T) {
	tm := testTeam("SDP", 6)
	lineup := StartingLineup(tm)
	if len(lineup) != 6 {
		t.Fatalf("degraded lineup size %d, want the whole pool", len(lineup))
	}
}

func TestStartingLineupStableOnTies(t *testing.T) {
	tm := league.NewTeam("TIE")
	for i := 0; i < 10; i++ {
		tm.AddBatter(&league.Batter{Name: string(rune('a' + i)), Overall: 70})
	}
	first := StartingLineup(tm)
	second := StartingLineup(tm)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("tie-broken lineup not deterministic at %d", i)
		}
	}
	if first[0].Name != "a" {
		t.Fatalf("stable sort must keep input order on ties; got %s first", first[0].Name)
	}
}

func TestStartingPitcherFromTopThree(t *testing.T) {
	tm := league.NewTeam("BOS")
	for i := 0; i < 6; i++ {
		tm.AddPitcher(&league.Pitcher{Name: string(rune('a' + i)), Overall: float64(90 - i*10)})
	}
	rng := NewSeededRNG(3)
	for i := 0; i < 50; i++ {
		p, err := StartingPitcher(tm, rng)
		if err != nil {
			t.Fatal(err)
		}
		if p.Overall < 70 {
			t.Fatalf("pitcher %s outside the top three", p.Name)
		}
	}
}

func TestStartingPitcherScripted(t *testing.T) {
	tm := league.NewTeam("LAD")
	tm.AddPitcher(&league.Pitcher{Name: "third", Overall: 70})
	tm.AddPitcher(&league.Pitcher{Name: "best", Overall: 95})
	tm.AddPitcher(&league.Pitcher{Name: "second", Overall: 80})

	p, err := StartingPitcher(tm, script(t, 0.0))
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "best" {
		t.Fatalf("draw 0 must pick the top-rated pitcher, got %s", p.Name)
	}

	p, err = StartingPitcher(tm, script(t, 0.99))
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "third" {
		t.Fatalf("draw near 1 must pick the last of the top three, got %s", p.Name)
	}
}

func TestStartingPitcherSmallPool(t *testing.T) {
	tm := league.NewTeam("COL")
	tm.AddPitcher(&league.Pitcher{Name: "only", Overall: 60})
	p, err := StartingPitcher(tm, script(t, 0.7))
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "only" {
		t.Fatalf("got %s", p.Name)
	}
}

func TestStartingPitcherEmptyPool(t *testing.T) {
	_, err := StartingPitcher(league.NewTeam("CHW"), nil)
	if !errors.Is(err, ErrNoPitchers) {
		t.Fatalf("want ErrNoPitchers, got %v", err)
	}
}

func TestSelectionDoesNotReorderRoster(t *testing.T) {
	tm := testTeam("SEA", 12)
	before := append([]*league.Batter(nil), tm.Batters...)
	StartingLineup(tm)
	for i := range before {
		if tm.Batters[i] != before[i] {
			t.Fatalf("roster order mutated at %d", i)
		}
	}
}
