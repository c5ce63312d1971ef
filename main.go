package main

import (
	"flag"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"throne/agent"
	"throne/config"
	"throne/engine"
	"throne/game"
	"throne/logger"
	"throne/tournament"
)

func main() {
	logger.Init()

	var (
		configPath  = flag.String("config", "", "optional YAML config file")
		games       = flag.Int("games", 0, "number of games to run")
		players     = flag.Int("players", 0, "players per game (3-6)")
		seed        = flag.Uint64("seed", 0, "base seed; game i uses seed+i")
		agents      = flag.String("agents", "", "comma-separated agent kinds cycled over houses (random, heuristic)")
		dbPath      = flag.String("db", "", "SQLite database path")
		workers     = flag.Int("workers", 0, "concurrent game runners")
		exportCSV   = flag.Bool("csv", false, "export results and leaderboard to CSV")
		leaderboard = flag.Bool("leaderboard", false, "print the leaderboard and exit")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *players > 0 {
		cfg.Players = *players
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}
	if *agents != "" {
		cfg.Agents = *agents
	}
	if *dbPath != "" {
		cfg.DatabasePath = *dbPath
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *exportCSV {
		cfg.ExportCSV = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	store, err := tournament.OpenStore(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("opening store")
	}
	defer store.Close()

	if *leaderboard {
		printLeaderboard(store)
		return
	}

	if err := runTournament(cfg, store); err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}
}

func runTournament(cfg *config.Config, store *tournament.Store) error {
	kinds := strings.Split(cfg.Agents, ",")
	for _, k := range kinds {
		if k != "random" && k != "heuristic" {
			return fmt.Errorf("unknown agent kind %q", k)
		}
	}

	houses := engine.PlayingHouses(cfg.Players)

	// Every agent kind is registered once; all seats running the same
	// kind share one rating.
	agentIDs := make(map[string]int64, len(kinds))
	for _, k := range kinds {
		id, err := store.RegisterAgent(k)
		if err != nil {
			return err
		}
		agentIDs[k] = id
	}

	log.Info().
		Int("games", cfg.Games).
		Int("players", cfg.Players).
		Str("agents", cfg.Agents).
		Int("workers", cfg.Workers).
		Msg("tournament starting")

	jobs := make(chan int)
	type outcome struct {
		result *tournament.GameResult
		err    error
	}
	outcomes := make(chan outcome, cfg.Games)

	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				gameSeed := cfg.Seed + uint64(i)
				table := buildAgents(houses, kinds, gameSeed)
				result, err := tournament.RunGame(table, cfg.Players, gameSeed, cfg.MaxDecisions)
				outcomes <- outcome{result, err}
			}
		}()
	}

	go func() {
		for i := 0; i < cfg.Games; i++ {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
		close(outcomes)
	}()

	var results []*tournament.GameResult
	failures := 0
	for o := range outcomes {
		if o.err != nil {
			failures++
			log.Error().Err(o.err).Msg("game failed")
			continue
		}
		results = append(results, o.result)
		if err := recordGame(store, o.result, agentIDs); err != nil {
			return err
		}
	}

	log.Info().
		Int("finished", len(results)).
		Int("failed", failures).
		Msg("tournament complete")

	if cfg.ExportCSV {
		if err := exportResults(store, results); err != nil {
			return err
		}
	}

	printLeaderboard(store)
	return nil
}

// buildAgents seats one agent per house, cycling through the requested
// kinds in house order. Each seat gets its own derived seed.
func buildAgents(houses []game.House, kinds []string, seed uint64) map[game.House]agent.Agent {
	table := make(map[game.House]agent.Agent, len(houses))
	for i, h := range houses {
		agentSeed := seed*uint64(len(houses)) + uint64(i)
		switch kinds[i%len(kinds)] {
		case "heuristic":
			table[h] = agent.NewHeuristic(h, agentSeed)
		default:
			table[h] = agent.NewRandom(h, agentSeed)
		}
	}
	return table
}

func recordGame(store *tournament.Store, result *tournament.GameResult, agentIDs map[string]int64) error {
	houseAgents := make(map[game.House]int64, len(result.Players))
	for _, pr := range result.Players {
		houseAgents[pr.House] = agentIDs[strings.ToLower(pr.AgentName)]
	}
	if _, err := store.StoreGame(result, houseAgents); err != nil {
		return err
	}

	winnerID := houseAgents[result.Winner]
	var losers []int64
	for _, pr := range result.Players {
		if pr.House != result.Winner {
			losers = append(losers, houseAgents[pr.House])
		}
	}
	return store.UpdateELO(winnerID, losers, 16)
}

func exportResults(store *tournament.Store, results []*tournament.GameResult) error {
	exporter, err := tournament.NewExporter()
	if err != nil {
		return err
	}
	if err := exporter.WriteGames(results); err != nil {
		return err
	}
	entries, err := store.Leaderboard()
	if err != nil {
		return err
	}
	if err := exporter.WriteLeaderboard(entries); err != nil {
		return err
	}
	log.Info().Str("dir", exporter.Dir()).Msg("results exported")
	return nil
}

func printLeaderboard(store *tournament.Store) {
	entries, err := store.Leaderboard()
	if err != nil {
		log.Fatal().Err(err).Msg("reading leaderboard")
	}
	count, err := store.GameCount()
	if err != nil {
		log.Fatal().Err(err).Msg("counting games")
	}

	fmt.Printf("Leaderboard (%d games)\n", count)
	fmt.Printf("%-12s %8s %7s %6s\n", "agent", "elo", "games", "wins")
	for _, e := range entries {
		fmt.Printf("%-12s %8.1f %7d %6d\n", e.Name, e.ELO, e.Games, e.Wins)
	}
}
