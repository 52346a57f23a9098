package sim

// Half marks which side of the inning is batting.

type Half int

const (
	Top Half = iota
	Bottom
)

func (h Half) String() string {
	if h == Bottom {
		return "Bottom"
	}
	return "Top"
}

func (h Half) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// Winner designates the end-of-game verdict.

type Winner string

const (
	HomeWins Winner = "home"
	AwayWins Winner = "away"
	TieGame  Winner = "tie"
)

// PlayEvent is emitted for every resolved plate appearance.
type PlayEvent struct {
	Inning  int     `json:"inning"`
	Half    Half    `json:"half"`
	Batter  string  `json:"batter"`
	Outcome Outcome `json:"-"`
	Result  string  `json:"result"` // Outcome.String(), stable for JSON
	Robbed  bool    `json:"robbed,omitempty"`
	Runs    int     `json:"runs"` // runs scored on this play
}

// ScoreSnapshot is emitted at the end of each half-inning.
type ScoreSnapshot struct {
	Inning    int  `json:"inning"`
	Half      Half `json:"half"`
	AwayScore int  `json:"away_score"`
	HomeScore int  `json:"home_score"`
}

// Result is the terminal game report.
type Result struct {
	AwayCode  string `json:"away"`
	HomeCode  string `json:"home"`
	AwayScore int    `json:"away_score"`
	HomeScore int    `json:"home_score"`
	Innings   int    `json:"innings"` // completed innings
	Winner    Winner `json:"winner"`
	Called    bool   `json:"called,omitempty"` // stopped at the inning cap
}

// EventSink receives narration-grade events from the drivers. The engine
// never formats text itself; presentation layers implement this.
type EventSink interface {
	OnPlay(PlayEvent)
	OnHalfInningEnd(ScoreSnapshot)
	OnGameEnd(Result)
}

type nopSink struct{}

func (nopSink) OnPlay(PlayEvent)              {}
func (nopSink) OnHalfInningEnd(ScoreSnapshot) {}
func (nopSink) OnGameEnd(Result)              {}

// NopSink discards all events.
func NopSink() EventSink { return nopSink{} }
