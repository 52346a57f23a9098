package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/xtding233/replay-backend/internal/sim"
)

const schema = `
CREATE TABLE IF NOT EXISTS game_results (
	game_id     TEXT PRIMARY KEY,
	away_code   TEXT NOT NULL,
	home_code   TEXT NOT NULL,
	away_score  INTEGER NOT NULL,
	home_score  INTEGER NOT NULL,
	innings     INTEGER NOT NULL,
	winner      TEXT NOT NULL,
	called      INTEGER NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS play_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id     TEXT NOT NULL,
	seq         INTEGER NOT NULL,
	inning      INTEGER NOT NULL,
	half        TEXT NOT NULL,
	batter      TEXT NOT NULL,
	result      TEXT NOT NULL,
	robbed      INTEGER NOT NULL DEFAULT 0,
	runs        INTEGER NOT NULL,
	FOREIGN KEY (game_id) REFERENCES game_results(game_id)
);

CREATE INDEX IF NOT EXISTS idx_play_log_game ON play_log(game_id, seq);
`

// Store persists finished games and their play-by-play in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// SavedGame is a persisted game result row.
type SavedGame struct {
	GameID    string     `json:"game_id"`
	Result    sim.Result `json:"result"`
	CreatedAt time.Time  `json:"created_at"`
}

// SaveGame writes a result and its play log in one transaction and
// returns the generated game id.
func (s *Store) SaveGame(res sim.Result, plays []sim.PlayEvent) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO game_results (game_id, away_code, home_code, away_score, home_score, innings, winner, called, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, res.AwayCode, res.HomeCode, res.AwayScore, res.HomeScore,
		res.Innings, string(res.Winner), boolInt(res.Called), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert result: %w", err)
	}

	for i, p := range plays {
		_, err = tx.Exec(
			`INSERT INTO play_log (game_id, seq, inning, half, batter, result, robbed, runs)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, i, p.Inning, p.Half.String(), p.Batter, p.Result, boolInt(p.Robbed), p.Runs,
		)
		if err != nil {
			return "", fmt.Errorf("insert play %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// RecentGames returns the newest results first, up to limit.
func (s *Store) RecentGames(limit int) ([]SavedGame, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT game_id, away_code, home_code, away_score, home_score, innings, winner, called, created_at
		 FROM game_results ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []SavedGame
	for rows.Next() {
		var g SavedGame
		var winner, createdAt string
		var called int
		err := rows.Scan(&g.GameID, &g.Result.AwayCode, &g.Result.HomeCode,
			&g.Result.AwayScore, &g.Result.HomeScore, &g.Result.Innings,
			&winner, &called, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		g.Result.Winner = sim.Winner(winner)
		g.Result.Called = called != 0
		if ts, perr := time.Parse(time.RFC3339Nano, createdAt); perr == nil {
			g.CreatedAt = ts
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Plays returns the play-by-play for one game in order.
func (s *Store) Plays(gameID string) ([]sim.PlayEvent, error) {
	rows, err := s.db.Query(
		`SELECT inning, half, batter, result, robbed, runs
		 FROM play_log WHERE game_id = ? ORDER BY seq`, gameID)
	if err != nil {
		return nil, fmt.Errorf("query plays: %w", err)
	}
	defer rows.Close()

	var out []sim.PlayEvent
	for rows.Next() {
		var p sim.PlayEvent
		var half string
		var robbed int
		if err := rows.Scan(&p.Inning, &half, &p.Batter, &p.Result, &robbed, &p.Runs); err != nil {
			return nil, fmt.Errorf("scan play: %w", err)
		}
		if half == "Bottom" {
			p.Half = sim.Bottom
		}
		p.Outcome, _ = sim.ParseOutcome(p.Result)
		p.Robbed = robbed != 0
		out = append(out, p)
	}
	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
