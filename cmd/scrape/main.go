// Command scrape is the ScoutDesk player extraction CLI.
//
// Usage:
//
//	scoutdesk-scrape player --url https://www.transfermarkt.it/.../spieler/300716
//	scoutdesk-scrape player --url ... --db-format --out player.json
//	scoutdesk-scrape import https://www.transfermarkt.it/.../spieler/300716 [more urls...]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/scoutdesk/scoutdesk-data/internal/config"
	"github.com/scoutdesk/scoutdesk-data/internal/db"
	"github.com/scoutdesk/scoutdesk-data/internal/player"
	"github.com/scoutdesk/scoutdesk-data/internal/scraper"
	"github.com/scoutdesk/scoutdesk-data/internal/seed"
	"github.com/scoutdesk/scoutdesk-data/internal/translate"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "scoutdesk-scrape",
		Short: "ScoutDesk player extraction CLI",
	}

	root.AddCommand(playerCmd())
	root.AddCommand(importCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// player command
// --------------------------------------------------------------------------

func playerCmd() *cobra.Command {
	var (
		profileURL string
		outFile    string
		dbFormat   bool
	)
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Extract a single player profile and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if profileURL == "" {
				return fmt.Errorf("--url is required")
			}
			return runScrape(func(ctx context.Context, cfg *config.Config, s *scraper.Scraper) error {
				start := time.Now()
				rec, err := s.ExtractPlayer(ctx, profileURL)
				if err != nil {
					return err
				}
				logger.Info("Extraction finished",
					"player_id", rec.ID,
					"duration", time.Since(start).Round(time.Millisecond))

				var out interface{} = rec
				if dbFormat {
					out = player.MapToDatabase(rec)
				}
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return fmt.Errorf("encode record: %w", err)
				}
				if outFile != "" {
					if err := os.WriteFile(outFile, data, 0o644); err != nil {
						return fmt.Errorf("write %s: %w", outFile, err)
					}
					logger.Info("Record written", "file", outFile)
					return nil
				}
				fmt.Println(string(data))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&profileURL, "url", "", "Profile URL to extract")
	cmd.Flags().StringVar(&outFile, "out", "", "Write JSON to this file instead of stdout")
	cmd.Flags().BoolVar(&dbFormat, "db-format", false, "Print the database shape instead of the canonical record")
	return cmd
}

// --------------------------------------------------------------------------
// import command
// --------------------------------------------------------------------------

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [urls...]",
		Short: "Extract player profiles and upsert them into the players table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScrape(func(ctx context.Context, cfg *config.Config, s *scraper.Scraper) error {
				if !cfg.HasDatabase() {
					return fmt.Errorf("DATABASE_URL is required for import")
				}
				pool, err := db.New(ctx, cfg)
				if err != nil {
					return fmt.Errorf("connect to database: %w", err)
				}
				defer pool.Close()

				start := time.Now()
				var result seed.Result
				for _, rawURL := range args {
					rec, err := s.ExtractPlayer(ctx, rawURL)
					if err != nil {
						result.AddErrorf("extract %s: %v", rawURL, err)
						continue
					}
					_, existed, err := pool.PlayerIDByTransfermarktID(ctx, rec.ID)
					if err != nil {
						result.AddErrorf("look up %s: %v", rec.ID, err)
						continue
					}
					if err := seed.UpsertPlayer(ctx, pool.Pool, rec.ID, player.MapToDatabase(rec)); err != nil {
						result.AddErrorf("upsert %s: %v", rec.ID, err)
						continue
					}
					result.PlayersUpserted++
					if existed {
						logger.Info("Player updated", "player_id", rec.ID, "name", rec.Name)
					} else {
						logger.Info("Player imported", "player_id", rec.ID, "name", rec.Name)
					}
				}

				logger.Info("Import finished",
					"duration", time.Since(start).Round(time.Second),
					"summary", result.Summary())
				for _, e := range result.Errors {
					logger.Error("import error", "error", e)
				}
				if result.PlayersUpserted == 0 && len(result.Errors) > 0 {
					return fmt.Errorf("no players imported")
				}
				return nil
			})
		},
	}
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runScrape handles config loading, pipeline construction, and context
// cancellation.
func runScrape(fn func(ctx context.Context, cfg *config.Config, s *scraper.Scraper) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Debug {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	translator := translate.New(translate.NewGoogleClient(cfg.TranslationURL), logger)
	s := scraper.New(scraper.Options{
		UserAgent:  cfg.UserAgent,
		Timeout:    cfg.FetchTimeout,
		Translator: translator,
		Logger:     logger,
	})

	return fn(ctx, cfg, s)
}
