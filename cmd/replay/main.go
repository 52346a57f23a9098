package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/xtding233/replay-backend/internal/league"
	"github.com/xtding233/replay-backend/internal/sim"
)

// narrator prints the play-by-play. Half-inning headers are derived
// from the event stream: a new (inning, half) pair starts a section.
type narrator struct {
	awayCode string
	homeCode string

	curInning int
	curHalf   sim.Half
	started   bool
}

func (n *narrator) OnPlay(e sim.PlayEvent) {
	if !n.started || e.Inning != n.curInning || e.Half != n.curHalf {
		fmt.Printf("--- %s of the %d ---\n", e.Half, e.Inning)
		n.curInning, n.curHalf, n.started = e.Inning, e.Half, true
	}

	switch e.Result {
	case "OUT":
		if e.Robbed {
			fmt.Printf("  🛡️ ROBBED! Great play takes a hit away from %s!\n", e.Batter)
		}
	case "WALK":
		fmt.Printf("  🚶 %s walks.\n", e.Batter)
	case "SINGLE":
		fmt.Printf("  ⚾ %s singles.\n", e.Batter)
	case "DOUBLE":
		fmt.Printf("  ⚡ %s hits a DOUBLE!\n", e.Batter)
	case "TRIPLE":
		fmt.Printf("  🔥 %s hits a TRIPLE!\n", e.Batter)
	case "HR":
		fmt.Printf("  🚀 HOME RUN!! %s goes deep!\n", e.Batter)
	}
	if e.Runs > 0 && e.Result != "HR" {
		fmt.Printf("  ✨ %d run(s) scored!\n", e.Runs)
	} else if e.Result == "HR" && e.Runs > 1 {
		fmt.Printf("  ✨ %d runs come around!\n", e.Runs)
	}
}

func (n *narrator) OnHalfInningEnd(s sim.ScoreSnapshot) {
	if s.Half == sim.Bottom {
		fmt.Printf("   [SCORE] %s: %d | %s: %d\n\n", n.awayCode, s.AwayScore, n.homeCode, s.HomeScore)
	}
}

func (n *narrator) OnGameEnd(res sim.Result) {
	if res.Called {
		fmt.Println("\n   ⚠️ GAME CALLED (innings limit) ⚠️")
	}
	fmt.Println(strings.Repeat("=", 40))
	fmt.Println("         FINAL SCORE")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf(" %s: %d\n", res.AwayCode, res.AwayScore)
	fmt.Printf(" %s: %d\n", res.HomeCode, res.HomeScore)
	switch res.Winner {
	case sim.HomeWins:
		fmt.Printf("🏆 %s WINS! 🏆\n", res.HomeCode)
	case sim.AwayWins:
		fmt.Printf("🏆 %s WINS! 🏆\n", res.AwayCode)
	default:
		fmt.Println("It's a TIE!")
	}
}

func displayTeams(lg map[string]*league.Team) {
	codes := make([]string, 0, len(lg))
	for code := range lg {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Printf("             ⚾ AVAILABLE TEAMS (%d) ⚾\n", len(codes))
	fmt.Println(strings.Repeat("=", 50))
	for i := 0; i < len(codes); i += 2 {
		if i+1 < len(codes) {
			fmt.Printf("[%s] %-25s | [%s] %s\n",
				codes[i], league.DisplayName(codes[i]),
				codes[i+1], league.DisplayName(codes[i+1]))
		} else {
			fmt.Printf("[%s] %s\n", codes[i], league.DisplayName(codes[i]))
		}
	}
	fmt.Println(strings.Repeat("=", 50) + "\n")
}

func promptTeam(in *bufio.Scanner, lg map[string]*league.Team, label string) *league.Team {
	for {
		fmt.Printf("Enter %s Team Code: (e.g. NYY)\n> ", label)
		if !in.Scan() {
			log.Fatal("input closed")
		}
		code := strings.TrimSpace(in.Text())
		if t, ok := league.Lookup(lg, code); ok {
			return t
		}
		fmt.Printf("ERROR: '%s' is not a valid team code.\n", code)
	}
}

func printSummary(t *league.Team, label string, pitcher *league.Pitcher) {
	fmt.Printf("\n--- %s: %s ---\n", label, league.DisplayName(t.Code))
	fmt.Printf("Starting Pitcher: %s (Rating: %.1f)\n", pitcher.Name, pitcher.Overall)
	fmt.Printf("Defense Rating:   %.1f\n", t.Defense)
	fmt.Println("Lineup:")
	for i, b := range sim.StartingLineup(t) {
		fmt.Printf("  %d. %-20s (Rat: %.1f)\n", i+1, b.Name, b.Overall)
	}
}

func main() {
	batting := flag.String("batting", "data/batting_2025.csv", "batting stats csv")
	pitching := flag.String("pitching", "data/pitching_2025.csv", "pitching stats csv")
	fielding := flag.String("fielding", "data/fielding_2025.csv", "fielding stats csv")
	seed := flag.Uint64("seed", 0, "rng seed; 0 uses a non-deterministic source")
	flag.Parse()

	fmt.Println("\n" + strings.Repeat("=", 40))
	fmt.Println("         ⚾ MLB REPLAY SIMULATOR ⚾ ")
	fmt.Println(strings.Repeat("=", 40) + "\n")
	fmt.Println("Loading 2025 data...")

	lg, err := league.LoadLeagueFiles(*batting, *pitching, *fielding)
	if err != nil {
		log.Fatal("Critical Error: ", err)
	}
	fmt.Printf("✔ League Loaded: %d Teams ready.\n", len(lg))

	displayTeams(lg)

	fmt.Println("=== SELECT MATCHUP ===")
	in := bufio.NewScanner(os.Stdin)
	awayTeam := promptTeam(in, lg, "AWAY")
	homeTeam := promptTeam(in, lg, "HOME")

	stadium := "Unknown"
	if info, ok := league.TeamInfo[homeTeam.Code]; ok {
		stadium = info.Stadium
	}
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Printf(" ⚾ MATCHUP SET: %s @ %s\n", league.DisplayName(awayTeam.Code), league.DisplayName(homeTeam.Code))
	fmt.Printf(" 🏟  VENUE: %s\n", stadium)
	fmt.Println(strings.Repeat("=", 60))

	var rng sim.RandomSource
	if *seed != 0 {
		rng = sim.NewSeededRNG(*seed)
	} else {
		rng = sim.DefaultRNG()
	}

	awayPitcher, err := sim.StartingPitcher(awayTeam, rng)
	if err != nil {
		log.Fatalf("%s: %v", awayTeam.Code, err)
	}
	homePitcher, err := sim.StartingPitcher(homeTeam, rng)
	if err != nil {
		log.Fatalf("%s: %v", homeTeam.Code, err)
	}

	printSummary(awayTeam, "AWAY", awayPitcher)
	printSummary(homeTeam, "HOME", homePitcher)

	fmt.Print("\nPress Enter to start simulation...")
	in.Scan()

	g, err := sim.NewGame(homeTeam, awayTeam, homePitcher, awayPitcher, sim.DefaultTuning(), rng, &narrator{awayCode: awayTeam.Code, homeCode: homeTeam.Code})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\n ⚾ PLAY BALL! %s vs %s ⚾\n", awayTeam.Code, homeTeam.Code)
	fmt.Printf("   Pitching Matchup: %s vs %s\n\n", awayPitcher.Name, homePitcher.Name)

	if _, err := g.Play(); err != nil {
		log.Fatal(err)
	}
}
