package tournament

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Exporter writes tournament results to CSV files under a timestamped
// run directory, for offline analysis.
type Exporter struct {
	baseDir string
}

// NewExporter creates results/<timestamp>/ and returns a writer bound
// to it.
func NewExporter() (*Exporter, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("results", timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Exporter{baseDir: baseDir}, nil
}

// Dir returns the run directory.
func (e *Exporter) Dir() string {
	return e.baseDir
}

// WriteGames writes one row per game and one per seated player.
func (e *Exporter) WriteGames(results []*GameResult) error {
	path := filepath.Join(e.baseDir, "games.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create games file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"seed", "winner", "rounds", "house", "agent", "castles", "supply", "power", "iron_throne", "fiefdoms", "kings_court"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write games header: %w", err)
	}

	for _, r := range results {
		for _, pr := range r.Players {
			row := []string{
				strconv.FormatUint(r.Seed, 10),
				r.Winner.String(),
				strconv.Itoa(r.Rounds),
				pr.House.String(),
				pr.AgentName,
				strconv.Itoa(pr.Castles),
				strconv.Itoa(pr.Supply),
				strconv.Itoa(pr.Power),
				strconv.Itoa(pr.IronThrone),
				strconv.Itoa(pr.Fiefdoms),
				strconv.Itoa(pr.KingsCourt),
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write game row: %w", err)
			}
		}
	}
	return nil
}

// WriteLeaderboard writes the Elo standings.
func (e *Exporter) WriteLeaderboard(entries []LeaderboardEntry) error {
	path := filepath.Join(e.baseDir, "leaderboard.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create leaderboard file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"agent", "elo", "games", "wins"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write leaderboard header: %w", err)
	}

	for _, e := range entries {
		row := []string{
			e.Name,
			strconv.FormatFloat(e.ELO, 'f', 1, 64),
			strconv.Itoa(e.Games),
			strconv.Itoa(e.Wins),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write leaderboard row: %w", err)
		}
	}
	return nil
}
