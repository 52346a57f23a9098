package league

import (
	"strings"
	"testing"
)

const battingCSV = `Rk,Player,Team,OPS,WAR,OBP,SLG
1,Aaron Judge*,NYY,1.144,10.1,.458,.686
2,Juan Soto#,NYM,.921,6.2,.396,.525
3,Bad Row,BOS,n/a,n/a,n/a,n/a
4,Combined Guy,2TM,.800,2.0,.350,.450
`

const pitchingCSV = `Rk,Player,Team,IP,ERA,WHIP,WAR
1,Tarik Skubal,DET,195.1,2.21,0.89,7.0
2,Mopup Man,DET,12.0,6.50,1.80,0.1
3,Broken Stats,NYY,150.0,bad,bad,bad
`

const fieldingCSV = `Team,Rdrs
NYY,12
NYY,-3
DET,25
XXX,99
`

func TestLoadBatters(t *testing.T) {
	batters, err := LoadBatters(strings.NewReader(battingCSV))
	if err != nil {
		t.Fatal(err)
	}
	if len(batters) != 4 {
		t.Fatalf("batters = %d", len(batters))
	}

	judge := batters[0]
	if judge.Name != "Aaron Judge" {
		t.Fatalf("marker not stripped: %q", judge.Name)
	}
	if judge.OBP != 0.458 || judge.OPS != 1.144 {
		t.Fatalf("judge stats %+v", judge)
	}
	wantOverall := BatterOverall(10.1, 1.144)
	if judge.Overall != wantOverall {
		t.Fatalf("overall %f, want %f", judge.Overall, wantOverall)
	}

	if batters[1].Name != "Juan Soto" {
		t.Fatalf("hash marker not stripped: %q", batters[1].Name)
	}

	// bad numerics default to zero, not an error
	bad := batters[2]
	if bad.OPS != 0 || bad.WAR != 0 || bad.OBP != 0 || bad.SLG != 0 {
		t.Fatalf("bad row defaults %+v", bad)
	}
}

func TestLoadPitchersFiltersShortOutings(t *testing.T) {
	pitchers, err := LoadPitchers(strings.NewReader(pitchingCSV))
	if err != nil {
		t.Fatal(err)
	}
	if len(pitchers) != 2 {
		t.Fatalf("pitchers = %d, want the 12 IP reliever dropped", len(pitchers))
	}
	if pitchers[0].Name != "Tarik Skubal" {
		t.Fatalf("got %q", pitchers[0].Name)
	}
	if got, want := pitchers[0].Overall, PitcherOverall(7.0, 2.21, 0.89); got != want {
		t.Fatalf("overall %f, want %f", got, want)
	}

	// bad numerics get the penalizing defaults
	broken := pitchers[1]
	if broken.ERA != 99.99 || broken.WHIP != 99.99 || broken.WAR != 0 {
		t.Fatalf("broken stats defaults %+v", broken)
	}
	if broken.Overall >= 0 {
		t.Fatalf("penalized pitcher should rate badly, got %f", broken.Overall)
	}
}

func TestBuildLeagueSkipsAggregates(t *testing.T) {
	batters, _ := LoadBatters(strings.NewReader(battingCSV))
	pitchers, _ := LoadPitchers(strings.NewReader(pitchingCSV))
	lg := BuildLeague(batters, pitchers)

	if _, ok := lg["2TM"]; ok {
		t.Fatalf("multi-team aggregate row must be skipped")
	}
	nyy, ok := lg["NYY"]
	if !ok {
		t.Fatalf("NYY missing")
	}
	if len(nyy.Batters) != 1 || len(nyy.Pitchers) != 1 {
		t.Fatalf("NYY roster %d/%d", len(nyy.Batters), len(nyy.Pitchers))
	}
	if len(lg["DET"].Pitchers) != 1 {
		t.Fatalf("DET pitchers %d", len(lg["DET"].Pitchers))
	}
}

func TestLoadDefenseAccumulates(t *testing.T) {
	batters, _ := LoadBatters(strings.NewReader(battingCSV))
	pitchers, _ := LoadPitchers(strings.NewReader(pitchingCSV))
	lg := BuildLeague(batters, pitchers)

	if err := LoadDefense(strings.NewReader(fieldingCSV), lg); err != nil {
		t.Fatal(err)
	}
	if lg["NYY"].Defense != 9 {
		t.Fatalf("NYY defense %f, want 12 + (-3)", lg["NYY"].Defense)
	}
	if lg["DET"].Defense != 25 {
		t.Fatalf("DET defense %f", lg["DET"].Defense)
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	lg := map[string]*Team{"NYY": NewTeam("NYY")}
	if _, ok := Lookup(lg, " nyy "); !ok {
		t.Fatalf("lowercase lookup failed")
	}
	if _, ok := Lookup(lg, "LAD"); ok {
		t.Fatalf("unknown code must miss")
	}
}

func TestDisplayName(t *testing.T) {
	if DisplayName("BOS") != "Boston Red Sox" {
		t.Fatalf("got %q", DisplayName("BOS"))
	}
	if DisplayName("ZZZ") != "ZZZ" {
		t.Fatalf("unknown code must fall back to itself")
	}
}

func TestTeamInfoCoversLeague(t *testing.T) {
	if len(TeamInfo) != 30 {
		t.Fatalf("team info has %d entries", len(TeamInfo))
	}
	for code, info := range TeamInfo {
		if len(code) != 3 || info.Name == "" || info.Stadium == "" {
			t.Fatalf("bad entry %q: %+v", code, info)
		}
	}
}
