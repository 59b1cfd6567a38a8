// Command seeder imports a word list into the saved-word store. Words whose
// headword (compared case-insensitively) is already stored are skipped, so
// the command is safe to rerun.
//
// Flags:
//
//	--file           path to a word list JSON file (default: bundled list)
//	--url            URL of a remote word list
//	--dry-run        report what would be inserted without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/lexicology-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lexicology-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/lexicology-backend/internal/adapter/wordlist"
	"github.com/heartmarshall/lexicology-backend/internal/app"
	"github.com/heartmarshall/lexicology-backend/internal/app/seeder"
	"github.com/heartmarshall/lexicology-backend/internal/config"
	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

// Compile-time interface assertion.
var _ seeder.WordRepo = (*word.Repo)(nil)

func main() {
	fileFlag := flag.String("file", "", "path to a word list JSON file")
	urlFlag := flag.String("url", "", "URL of a remote word list")
	dryRunFlag := flag.Bool("dry-run", false, "report without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	if *fileFlag != "" && *urlFlag != "" {
		logger.Error("--file and --url are mutually exclusive")
		os.Exit(1)
	}

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *fileFlag != "" {
		seederCfg.File, seederCfg.URL = *fileFlag, ""
	}
	if *urlFlag != "" {
		seederCfg.URL, seederCfg.File = *urlFlag, ""
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	records, err := loadWords(ctx, *seederCfg, appCfg.WordList, logger)
	if err != nil {
		logger.Error("load word list", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, appCfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if !appCfg.Database.SkipMigrations {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	pipeline := seeder.NewPipeline(logger, word.New(pool), seederCfg.DryRun)
	res, err := pipeline.Run(ctx, records)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if res.Errors > 0 {
		logger.Warn("seeding completed with errors", slog.Int("errors", res.Errors))
		os.Exit(1)
	}
}

func loadWords(ctx context.Context, cfg seeder.Config, listCfg config.WordListConfig, logger *slog.Logger) ([]domain.WordRecord, error) {
	if cfg.URL != "" {
		return wordlist.NewFetcher(cfg.URL, listCfg.FetchTimeout, logger).Fetch(ctx)
	}
	if cfg.File != "" {
		return wordlist.LoadFile(cfg.File)
	}
	return wordlist.Load(listCfg.Path)
}
