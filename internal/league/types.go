package league

// Batter carries one hitter's season stats plus the derived overall rating.
// Fields are read-only after loading; the engine never mutates them.
type Batter struct {
	Name string
	Team string

	OPS float64
	WAR float64
	OBP float64
	SLG float64

	Overall float64
}

// Pitcher carries one pitcher's season stats plus the derived overall rating.
type Pitcher struct {
	Name string
	Team string

	ERA  float64
	WHIP float64
	WAR  float64

	Overall float64
}

// Team is a roster keyed by the 3-letter code used in the stat files
// (e.g. "NYY"). Defense is the accumulated Rdrs (runs saved) scalar.
type Team struct {
	Code     string
	Batters  []*Batter
	Pitchers []*Pitcher
	Defense  float64
}

func NewTeam(code string) *Team {
	return &Team{Code: code}
}

func (t *Team) AddBatter(b *Batter)   { t.Batters = append(t.Batters, b) }
func (t *Team) AddPitcher(p *Pitcher) { t.Pitchers = append(t.Pitchers, p) }

// BatterOverall derives the composite rating used for lineup ordering.
func BatterOverall(war, ops float64) float64 {
	return 50 + 3*war + 25*ops
}

// PitcherOverall derives the composite rating used for rotation ordering.
// Weighted toward WAR and ERA, with WHIP as the control term.
func PitcherOverall(war, era, whip float64) float64 {
	return 50 + 3*war + 8*(5.5-era) + 20*(1.5-whip)
}
