package tournament

import (
	"database/sql"
	"fmt"
	"math"

	_ "modernc.org/sqlite"

	"throne/game"
)

const schema = `
CREATE TABLE IF NOT EXISTS agents (
	id          INTEGER PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	elo         REAL NOT NULL DEFAULT 1500.0,
	games       INTEGER NOT NULL DEFAULT 0,
	wins        INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS games (
	id          INTEGER PRIMARY KEY,
	seed        INTEGER NOT NULL,
	rounds      INTEGER NOT NULL,
	winner      TEXT NOT NULL,
	played_at   TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS game_players (
	id          INTEGER PRIMARY KEY,
	game_id     INTEGER NOT NULL REFERENCES games(id),
	agent_id    INTEGER NOT NULL REFERENCES agents(id),
	house       TEXT NOT NULL,
	castles     INTEGER NOT NULL,
	supply      INTEGER NOT NULL,
	power       INTEGER NOT NULL,
	iron_throne INTEGER NOT NULL,
	fiefdoms    INTEGER NOT NULL,
	kings_court INTEGER NOT NULL
);
`

// Store keeps tournament results and Elo ratings in SQLite.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the database at path.
func OpenStore(path string) (*Store, error) {
	return open(path)
}

// OpenMemoryStore opens a throwaway in-memory database.
func OpenMemoryStore() (*Store, error) {
	return open(":memory:")
}

func open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("tournament: open database: %w", err)
	}
	// SQLite allows one writer; a second connection to :memory: would
	// also see a different, empty database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("tournament: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// RegisterAgent inserts an agent if new and returns its row ID either
// way.
func (s *Store) RegisterAgent(name string) (int64, error) {
	if _, err := s.db.Exec(`INSERT OR IGNORE INTO agents (name) VALUES (?)`, name); err != nil {
		return 0, fmt.Errorf("tournament: register agent: %w", err)
	}
	var id int64
	if err := s.db.QueryRow(`SELECT id FROM agents WHERE name = ?`, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("tournament: look up agent: %w", err)
	}
	return id, nil
}

// StoreGame records a finished game and bumps each participant's game
// and win counters. agentIDs maps each seated house to its registered
// agent.
func (s *Store) StoreGame(result *GameResult, agentIDs map[game.House]int64) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO games (seed, rounds, winner) VALUES (?, ?, ?)`,
		int64(result.Seed), result.Rounds, result.Winner.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("tournament: store game: %w", err)
	}
	gameID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("tournament: game id: %w", err)
	}

	for _, pr := range result.Players {
		_, err := s.db.Exec(
			`INSERT INTO game_players
			 (game_id, agent_id, house, castles, supply, power, iron_throne, fiefdoms, kings_court)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			gameID, agentIDs[pr.House], pr.House.String(),
			pr.Castles, pr.Supply, pr.Power,
			pr.IronThrone, pr.Fiefdoms, pr.KingsCourt,
		)
		if err != nil {
			return 0, fmt.Errorf("tournament: store game player: %w", err)
		}
	}

	for h, id := range agentIDs {
		won := 0
		if h == result.Winner {
			won = 1
		}
		_, err := s.db.Exec(
			`UPDATE agents SET games = games + 1, wins = wins + ? WHERE id = ?`,
			won, id,
		)
		if err != nil {
			return 0, fmt.Errorf("tournament: update agent stats: %w", err)
		}
	}

	return gameID, nil
}

// UpdateELO applies a pairwise Elo update: the winner collects points
// from each loser as if they had played a head-to-head game.
func (s *Store) UpdateELO(winnerID int64, loserIDs []int64, k float64) error {
	for _, loserID := range loserIDs {
		winnerELO, err := s.agentELO(winnerID)
		if err != nil {
			return err
		}
		loserELO, err := s.agentELO(loserID)
		if err != nil {
			return err
		}

		expected := 1.0 / (1.0 + math.Pow(10, (loserELO-winnerELO)/400.0))
		deltaW := k * (1.0 - expected)
		deltaL := -k * (1.0 - expected)

		if _, err := s.db.Exec(`UPDATE agents SET elo = elo + ? WHERE id = ?`, deltaW, winnerID); err != nil {
			return fmt.Errorf("tournament: update winner elo: %w", err)
		}
		if _, err := s.db.Exec(`UPDATE agents SET elo = elo + ? WHERE id = ?`, deltaL, loserID); err != nil {
			return fmt.Errorf("tournament: update loser elo: %w", err)
		}
	}
	return nil
}

func (s *Store) agentELO(id int64) (float64, error) {
	var elo float64
	if err := s.db.QueryRow(`SELECT elo FROM agents WHERE id = ?`, id).Scan(&elo); err != nil {
		return 0, fmt.Errorf("tournament: read elo: %w", err)
	}
	return elo, nil
}

// LeaderboardEntry is one agent's standing.
type LeaderboardEntry struct {
	Name  string
	ELO   float64
	Games int
	Wins  int
}

// Leaderboard lists agents best-first by Elo.
func (s *Store) Leaderboard() ([]LeaderboardEntry, error) {
	rows, err := s.db.Query(`SELECT name, elo, games, wins FROM agents ORDER BY elo DESC`)
	if err != nil {
		return nil, fmt.Errorf("tournament: query leaderboard: %w", err)
	}
	defer rows.Close()

	var out []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.Name, &e.ELO, &e.Games, &e.Wins); err != nil {
			return nil, fmt.Errorf("tournament: scan leaderboard row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GameCount reports how many games the store holds.
func (s *Store) GameCount() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM games`).Scan(&n); err != nil {
		return 0, fmt.Errorf("tournament: count games: %w", err)
	}
	return n, nil
}
