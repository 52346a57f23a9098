package sim

// Outcome is the closed set of plate-appearance results.
// Keeping it a small int enum lets the base state machine and the
// half-inning driver switch exhaustively.

type Outcome int

const (
	Out Outcome = iota
	Walk
	Single
	Double
	Triple
	HomeRun
)

// Bases returns how many bases the batter gains on a clean hit.
// Walks also put the batter on first but advance runners by force only,
// so they are handled separately in AdvanceRunners.
func (o Outcome) Bases() int {
	switch o {
	case Single, Walk:
		return 1
	case Double:
		return 2
	case Triple:
		return 3
	case HomeRun:
		return 4
	}
	return 0
}

// ParseOutcome maps a stored category string back to the enum.
// Unknown strings come back as Out with ok=false.
func ParseOutcome(s string) (Outcome, bool) {
	switch s {
	case "OUT":
		return Out, true
	case "WALK":
		return Walk, true
	case "SINGLE":
		return Single, true
	case "DOUBLE":
		return Double, true
	case "TRIPLE":
		return Triple, true
	case "HR":
		return HomeRun, true
	}
	return Out, false
}

func (o Outcome) String() string {
	switch o {
	case Out:
		return "OUT"
	case Walk:
		return "WALK"
	case Single:
		return "SINGLE"
	case Double:
		return "DOUBLE"
	case Triple:
		return "TRIPLE"
	case HomeRun:
		return "HR"
	}
	return "UNKNOWN"
}
