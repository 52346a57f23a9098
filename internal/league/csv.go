package league

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Season stat exports come as CSV with a header row. Columns are looked
// up by name, so extra columns and reordering are fine. Unparseable
// numbers fall back to neutral/penalizing defaults instead of failing
// the whole load: a bad WHIP row should bury that pitcher's rating, not
// abort the league.

const minInningsPitched = 20.0 // below this, likely a position player mopping up

// LoadBatters parses a batting CSV into Batter records.
func LoadBatters(r io.Reader) ([]*Batter, error) {
	rows, idx, err := readTable(r)
	if err != nil {
		return nil, fmt.Errorf("batting csv: %w", err)
	}
	var out []*Batter
	for _, row := range rows {
		b := &Batter{
			Name: cleanName(field(row, idx, "Player")),
			Team: field(row, idx, "Team"),
			OPS:  floatOr(field(row, idx, "OPS"), 0),
			WAR:  floatOr(field(row, idx, "WAR"), 0),
			OBP:  floatOr(field(row, idx, "OBP"), 0),
			SLG:  floatOr(field(row, idx, "SLG"), 0),
		}
		b.Overall = BatterOverall(b.WAR, b.OPS)
		out = append(out, b)
	}
	return out, nil
}

// LoadPitchers parses a pitching CSV into Pitcher records, skipping
// anyone with 20 or fewer innings pitched.
func LoadPitchers(r io.Reader) ([]*Pitcher, error) {
	rows, idx, err := readTable(r)
	if err != nil {
		return nil, fmt.Errorf("pitching csv: %w", err)
	}
	var out []*Pitcher
	for _, row := range rows {
		if floatOr(field(row, idx, "IP"), 0) <= minInningsPitched {
			continue
		}
		p := &Pitcher{
			Name: cleanName(field(row, idx, "Player")),
			Team: field(row, idx, "Team"),
			ERA:  floatOr(field(row, idx, "ERA"), 99.99),
			WHIP: floatOr(field(row, idx, "WHIP"), 99.99),
			WAR:  floatOr(field(row, idx, "WAR"), 0),
		}
		p.Overall = PitcherOverall(p.WAR, p.ERA, p.WHIP)
		out = append(out, p)
	}
	return out, nil
}

// BuildLeague groups players into teams keyed by code. Blank codes and
// the "2TM"/"3TM" multi-team aggregate rows are skipped.
func BuildLeague(batters []*Batter, pitchers []*Pitcher) map[string]*Team {
	lg := make(map[string]*Team)

	teamFor := func(code string) *Team {
		t, ok := lg[code]
		if !ok {
			t = NewTeam(code)
			lg[code] = t
		}
		return t
	}

	for _, b := range batters {
		if b.Team == "" || strings.HasSuffix(b.Team, "TM") {
			continue
		}
		teamFor(b.Team).AddBatter(b)
	}
	for _, p := range pitchers {
		if p.Team == "" || strings.HasSuffix(p.Team, "TM") {
			continue
		}
		teamFor(p.Team).AddPitcher(p)
	}
	return lg
}

// LoadDefense reads a fielding CSV and accumulates each team's Rdrs
// (runs saved) into Team.Defense. Rows for unknown teams are ignored.
func LoadDefense(r io.Reader, lg map[string]*Team) error {
	rows, idx, err := readTable(r)
	if err != nil {
		return fmt.Errorf("fielding csv: %w", err)
	}
	for _, row := range rows {
		code := field(row, idx, "Team")
		t, ok := lg[code]
		if !ok {
			continue
		}
		t.Defense += floatOr(field(row, idx, "Rdrs"), 0)
	}
	return nil
}

// LoadLeagueFiles loads the three CSVs from disk and assembles a league.
func LoadLeagueFiles(battingPath, pitchingPath, fieldingPath string) (map[string]*Team, error) {
	batters, err := loadFrom(battingPath, LoadBatters)
	if err != nil {
		return nil, err
	}
	pitchers, err := loadFrom(pitchingPath, LoadPitchers)
	if err != nil {
		return nil, err
	}
	lg := BuildLeague(batters, pitchers)

	f, err := os.Open(fieldingPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", fieldingPath, err)
	}
	defer f.Close()
	if err := LoadDefense(f, lg); err != nil {
		return nil, err
	}
	return lg, nil
}

func loadFrom[T any](path string, load func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return load(f)
}

// readTable reads all CSV rows and returns a header name -> column map.
func readTable(r io.Reader) ([][]string, map[string]int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	all, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("empty table")
	}
	idx := make(map[string]int, len(all[0]))
	for i, name := range all[0] {
		idx[strings.TrimSpace(name)] = i
	}
	return all[1:], idx, nil
}

func field(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func floatOr(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}

// cleanName strips the award/HOF markers stat exports append to names.
func cleanName(s string) string {
	return strings.TrimSpace(strings.Trim(s, "*#"))
}
