package league

import "strings"

// Info carries display metadata for a team code.
type Info struct {
	Name    string
	Stadium string
}

// TeamInfo maps the 3-letter stat-file codes to full names and 2025
// home stadiums.
var TeamInfo = map[string]Info{
	"ARI": {"Arizona Diamondbacks", "Chase Field"},
	"ATH": {"Athletics", "Sutter Health Park"},
	"ATL": {"Atlanta Braves", "Truist Park"},
	"BAL": {"Baltimore Orioles", "Camden Yards"},
	"BOS": {"Boston Red Sox", "Fenway Park"},
	"CHC": {"Chicago Cubs", "Wrigley Field"},
	"CHW": {"Chicago White Sox", "Guaranteed Rate Field"},
	"CIN": {"Cincinnati Reds", "Great American Ball Park"},
	"CLE": {"Cleveland Guardians", "Progressive Field"},
	"COL": {"Colorado Rockies", "Coors Field"},
	"DET": {"Detroit Tigers", "Comerica Park"},
	"HOU": {"Houston Astros", "Minute Maid Park"},
	"KCR": {"Kansas City Royals", "Kauffman Stadium"},
	"LAA": {"Los Angeles Angels", "Angel Stadium"},
	"LAD": {"Los Angeles Dodgers", "Dodger Stadium"},
	"MIA": {"Miami Marlins", "LoanDepot Park"},
	"MIL": {"Milwaukee Brewers", "American Family Field"},
	"MIN": {"Minnesota Twins", "Target Field"},
	"NYM": {"New York Mets", "Citi Field"},
	"NYY": {"New York Yankees", "Yankee Stadium"},
	"PHI": {"Philadelphia Phillies", "Citizens Bank Park"},
	"PIT": {"Pittsburgh Pirates", "PNC Park"},
	"SDP": {"San Diego Padres", "Petco Park"},
	"SEA": {"Seattle Mariners", "T-Mobile Park"},
	"SFG": {"San Francisco Giants", "Oracle Park"},
	"STL": {"St. Louis Cardinals", "Busch Stadium"},
	"TBR": {"Tampa Bay Rays", "Steinbrenner Field"},
	"TEX": {"Texas Rangers", "Globe Life Field"},
	"TOR": {"Toronto Blue Jays", "Rogers Centre"},
	"WSN": {"Washington Nationals", "Nationals Park"},
}

// DisplayName returns the full team name, falling back to the code.
func DisplayName(code string) string {
	if info, ok := TeamInfo[code]; ok {
		return info.Name
	}
	return code
}

// Lookup finds a team by code, case-insensitive.
func Lookup(lg map[string]*Team, code string) (*Team, bool) {
	t, ok := lg[strings.ToUpper(strings.TrimSpace(code))]
	return t, ok
}
