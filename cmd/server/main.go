package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/xtding233/replay-backend/internal/config"
	"github.com/xtding233/replay-backend/internal/league"
	"github.com/xtding233/replay-backend/internal/sim"
	"github.com/xtding233/replay-backend/internal/store"
)

type simulateResp struct {
	GameID string          `json:"game_id,omitempty"`
	Result sim.Result      `json:"result"`
	Plays  []sim.PlayEvent `json:"plays"`
	Err    string          `json:"err,omitempty"`
}

type teamsResp struct {
	Teams []teamEntry `json:"teams"`
}

type teamEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var (
	teams        map[string]*league.Team
	tuningLoader *config.Loader
	results      *store.Store
	lock         sync.Mutex
)

func parseUint64(r *http.Request, key string) (uint64, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return v, true, ""
}

func parseInt(r *http.Request, key string) (int, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return v, true, ""
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// matchup resolves home/away query params against the loaded league.
func matchup(w http.ResponseWriter, r *http.Request) (*league.Team, *league.Team, bool) {
	home, ok := league.Lookup(teams, r.URL.Query().Get("home"))
	if !ok {
		http.Error(w, "missing/unknown param home", http.StatusBadRequest)
		return nil, nil, false
	}
	away, ok := league.Lookup(teams, r.URL.Query().Get("away"))
	if !ok {
		http.Error(w, "missing/unknown param away", http.StatusBadRequest)
		return nil, nil, false
	}
	return home, away, true
}

// loadTuning returns the effective tuning, with optional per-season
// override selected by the "season" query param. Invalid files fall
// back to the defaults so a bad edit cannot take the server down.
func loadTuning(r *http.Request) sim.Tuning {
	raw, err := tuningLoader.LoadMerged(r.URL.Query().Get("season"))
	if err != nil {
		log.Println("tuning load:", err)
		return sim.DefaultTuning()
	}
	if err := config.ValidateRaw(raw); err != nil {
		log.Println("tuning rejected:", err)
		return sim.DefaultTuning()
	}
	t, err := raw.Normalize()
	if err != nil {
		log.Println("tuning rejected:", err)
		return sim.DefaultTuning()
	}
	return t
}

// recordingSink collects play events for the JSON response.
type recordingSink struct {
	plays []sim.PlayEvent
}

func (s *recordingSink) OnPlay(e sim.PlayEvent)            { s.plays = append(s.plays, e) }
func (s *recordingSink) OnHalfInningEnd(sim.ScoreSnapshot) {}
func (s *recordingSink) OnGameEnd(sim.Result)              {}

// one game, persisted
func handleSimulate(w http.ResponseWriter, r *http.Request) {
	home, away, ok := matchup(w, r)
	if !ok {
		return
	}
	seed, hasSeed, msg := parseUint64(r, "seed")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	var rng sim.RandomSource
	if hasSeed {
		rng = sim.NewSeededRNG(seed)
	} else {
		rng = sim.DefaultRNG()
	}
	tuning := loadTuning(r)

	lock.Lock()
	defer lock.Unlock()

	hp, err := sim.StartingPitcher(home, rng)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	ap, err := sim.StartingPitcher(away, rng)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	rec := &recordingSink{}
	g, err := sim.NewGame(home, away, hp, ap, tuning, rng, rec)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	res, err := g.Play()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		writeJSON(w, simulateResp{Err: err.Error()})
		return
	}

	resp := simulateResp{Result: res, Plays: rec.plays}
	if results != nil {
		id, serr := results.SaveGame(res, rec.plays)
		if serr != nil {
			log.Println("save game:", serr)
		} else {
			resp.GameID = id
		}
	}
	writeJSON(w, resp)
}

// repeated games, summary stats only
func handleMonteCarlo(w http.ResponseWriter, r *http.Request) {
	home, away, ok := matchup(w, r)
	if !ok {
		return
	}
	trials, hasTrials, msg := parseInt(r, "trials")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if !hasTrials {
		trials = 1000
	}
	if trials <= 0 || trials > 100000 {
		http.Error(w, "trials must be in 1..100000", http.StatusBadRequest)
		return
	}
	seed, hasSeed, msg := parseUint64(r, "seed")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if !hasSeed {
		seed = uint64(time.Now().UnixNano())
	}
	tuning := loadTuning(r)

	rep, err := sim.RunMonteCarlo(home, away, tuning, trials, seed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, rep)
}

func handleTeams(w http.ResponseWriter, _ *http.Request) {
	codes := make([]string, 0, len(teams))
	for code := range teams {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	resp := teamsResp{Teams: make([]teamEntry, 0, len(codes))}
	for _, code := range codes {
		resp.Teams = append(resp.Teams, teamEntry{Code: code, Name: league.DisplayName(code)})
	}
	writeJSON(w, resp)
}

func handleResults(w http.ResponseWriter, r *http.Request) {
	if results == nil {
		http.Error(w, "persistence disabled", http.StatusNotFound)
		return
	}
	limit, _, msg := parseInt(r, "limit")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	games, err := results.RecentGames(limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, games)
}

func handlePlays(w http.ResponseWriter, r *http.Request) {
	if results == nil {
		http.Error(w, "persistence disabled", http.StatusNotFound)
		return
	}
	id := r.URL.Query().Get("game")
	if id == "" {
		http.Error(w, "missing param game", http.StatusBadRequest)
		return
	}
	plays, err := results.Plays(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, plays)
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	baseDir := flag.String("config", "config", "base directory holding tuning/*.yaml")
	dbPath := flag.String("db", "replay.db", "sqlite path for results; empty disables persistence")
	batting := flag.String("batting", "data/batting_2025.csv", "batting stats csv")
	pitching := flag.String("pitching", "data/pitching_2025.csv", "pitching stats csv")
	fielding := flag.String("fielding", "data/fielding_2025.csv", "fielding stats csv")
	flag.Parse()

	lg, err := league.LoadLeagueFiles(*batting, *pitching, *fielding)
	if err != nil {
		log.Fatal("load league: ", err)
	}
	teams = lg
	log.Printf("league loaded: %d teams", len(teams))

	tuningLoader = config.NewLoader(*baseDir)
	config.WatchTuning(tuningLoader, 5*time.Second, func(path string) {
		log.Println("tuning changed, cache dropped:", path)
	})

	if *dbPath != "" {
		results, err = store.NewStore(*dbPath)
		if err != nil {
			log.Fatal("open store: ", err)
		}
		defer results.Close()
	}

	http.HandleFunc("/simulate", handleSimulate)
	http.HandleFunc("/montecarlo", handleMonteCarlo)
	http.HandleFunc("/teams", handleTeams)
	http.HandleFunc("/results", handleResults)
	http.HandleFunc("/plays", handlePlays)

	log.Println("listening on", *addr, "...")
	log.Fatal(http.ListenAndServe(*addr, nil))
}
