package sim

import "testing"

func TestWalkForcesOnlyForcedRunners(t *testing.T) {
	// runner on first: forced to second
	b, runs := AdvanceRunners(Bases{First: true}, Walk)
	if b != (Bases{First: true, Second: true}) || runs != 0 {
		t.Fatalf("walk with runner on first: got %+v runs=%d", b, runs)
	}

	// bases loaded: everyone forced, runner from third scores
	b, runs = AdvanceRunners(Bases{First: true, Second: true, Third: true}, Walk)
	if b != (Bases{First: true, Second: true, Third: true}) || runs != 1 {
		t.Fatalf("walk with bases loaded: got %+v runs=%d", b, runs)
	}

	// runner on second only: not forced, stays put
	b, runs = AdvanceRunners(Bases{Second: true}, Walk)
	if b != (Bases{First: true, Second: true}) || runs != 0 {
		t.Fatalf("walk with runner on second: got %+v runs=%d", b, runs)
	}

	// first and third: third not forced
	b, runs = AdvanceRunners(Bases{First: true, Third: true}, Walk)
	if b != (Bases{First: true, Second: true, Third: true}) || runs != 0 {
		t.Fatalf("walk with first+third: got %+v runs=%d", b, runs)
	}
}

func TestHomeRunClearsBases(t *testing.T) {
	b, runs := AdvanceRunners(Bases{First: true, Third: true}, HomeRun)
	if b != (Bases{}) || runs != 3 {
		t.Fatalf("HR with two on: got %+v runs=%d", b, runs)
	}

	b, runs = AdvanceRunners(Bases{}, HomeRun)
	if b != (Bases{}) || runs != 1 {
		t.Fatalf("solo HR: got %+v runs=%d", b, runs)
	}
}

func TestDoubleWithRunnerOnFirst(t *testing.T) {
	// runner from first takes third, batter to second, nobody scores
	b, runs := AdvanceRunners(Bases{First: true}, Double)
	if b != (Bases{Second: true, Third: true}) || runs != 0 {
		t.Fatalf("double with runner on first: got %+v runs=%d", b, runs)
	}
}

func TestSingleWithBasesLoaded(t *testing.T) {
	// third scores, second to third, first to second, batter to first
	b, runs := AdvanceRunners(Bases{First: true, Second: true, Third: true}, Single)
	if b != (Bases{First: true, Second: true, Third: true}) || runs != 1 {
		t.Fatalf("single with bases loaded: got %+v runs=%d", b, runs)
	}
}

func TestDoubleScoresFromSecond(t *testing.T) {
	b, runs := AdvanceRunners(Bases{Second: true, Third: true}, Double)
	if b != (Bases{Second: true}) || runs != 2 {
		t.Fatalf("double with second+third: got %+v runs=%d", b, runs)
	}
}

func TestTripleClearsAllRunners(t *testing.T) {
	b, runs := AdvanceRunners(Bases{First: true, Second: true}, Triple)
	if b != (Bases{Third: true}) || runs != 2 {
		t.Fatalf("triple with first+second: got %+v runs=%d", b, runs)
	}
}

func TestOutLeavesBasesAlone(t *testing.T) {
	start := Bases{First: true, Third: true}
	b, runs := AdvanceRunners(start, Out)
	if b != start || runs != 0 {
		t.Fatalf("out must not move runners: got %+v runs=%d", b, runs)
	}
}

// Exhaustive sweep of all 8 occupancies x all outcomes: occupancy stays
// in 0..3, grows by at most one per play, and every runner plus the
// batter is accounted for (scored or still on base).
func TestBaseStateInvariants(t *testing.T) {
	outcomes := []Outcome{Out, Walk, Single, Double, Triple, HomeRun}
	for mask := 0; mask < 8; mask++ {
		start := Bases{First: mask&1 != 0, Second: mask&2 != 0, Third: mask&4 != 0}
		for _, o := range outcomes {
			after, runs := AdvanceRunners(start, o)

			if got := after.Occupied(); got < 0 || got > 3 {
				t.Fatalf("%v on %+v: occupancy %d out of range", o, start, got)
			}
			if after.Occupied() > start.Occupied()+1 {
				t.Fatalf("%v on %+v: occupancy grew by more than one", o, start)
			}
			if runs < 0 {
				t.Fatalf("%v on %+v: negative runs", o, start)
			}

			// conservation: batter + runners in == runs + runners out
			in := start.Occupied()
			if o == Out {
				if runs != 0 || after != start {
					t.Fatalf("out on %+v: state changed", start)
				}
				continue
			}
			if runs+after.Occupied() != in+1 {
				t.Fatalf("%v on %+v: %d in, %d runs + %d left", o, start, in, runs, after.Occupied())
			}
		}
	}
}
