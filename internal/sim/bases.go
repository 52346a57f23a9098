package sim

// Bases is the occupancy of the three bases. It is a plain value;
// AdvanceRunners returns a new value instead of mutating in place so a
// half-inning's base state can never alias anything else.

type Bases struct {
	First  bool
	Second bool
	Third  bool
}

// Occupied returns the number of runners on base, always in 0..3.
func (b Bases) Occupied() int {
	n := 0
	if b.First {
		n++
	}
	if b.Second {
		n++
	}
	if b.Third {
		n++
	}
	return n
}

// AdvanceRunners applies one play to the base state and returns the new
// occupancy plus runs scored on the play.
//
// Runners are processed third, then second, then first, and the batter
// is placed last. Evaluating in any other order double-advances runners,
// so the order here must not change.
//
// Walks move runners by force only: each runner advances exactly one
// base and only when the base behind them is occupied.
func AdvanceRunners(b Bases, play Outcome) (Bases, int) {
	runs := 0

	switch play {
	case Out:
		return b, 0

	case Walk:
		if b.First {
			if b.Second {
				if b.Third {
					runs++
				}
				b.Third = true
			}
			b.Second = true
		}
		b.First = true
		return b, runs

	case HomeRun:
		runs = b.Occupied() + 1
		return Bases{}, runs
	}

	// Single/Double/Triple
	hits := play.Bases()

	if b.Third {
		runs++
		b.Third = false
	}
	if b.Second {
		if hits >= 2 {
			runs++
		} else {
			b.Third = true
		}
		b.Second = false
	}
	if b.First {
		switch hits {
		case 3:
			runs++
		case 2:
			b.Third = true
		default:
			b.Second = true
		}
		b.First = false
	}

	switch hits {
	case 1:
		b.First = true
	case 2:
		b.Second = true
	case 3:
		b.Third = true
	}
	return b, runs
}
