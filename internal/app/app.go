package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/lexicology-backend/internal/adapter/postgres"
	progressrepo "github.com/heartmarshall/lexicology-backend/internal/adapter/postgres/progress"
	wordrepo "github.com/heartmarshall/lexicology-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/lexicology-backend/internal/adapter/provider/merriam"
	"github.com/heartmarshall/lexicology-backend/internal/adapter/wordlist"
	"github.com/heartmarshall/lexicology-backend/internal/config"
	"github.com/heartmarshall/lexicology-backend/internal/metrics"
	"github.com/heartmarshall/lexicology-backend/internal/service/lookup"
	progresssvc "github.com/heartmarshall/lexicology-backend/internal/service/progress"
	"github.com/heartmarshall/lexicology-backend/internal/service/wordofday"
	"github.com/heartmarshall/lexicology-backend/internal/service/words"
	"github.com/heartmarshall/lexicology-backend/internal/transport/middleware"
	"github.com/heartmarshall/lexicology-backend/internal/transport/rest"
)

const (
	metricsNamespace   = "lexicology"
	searchSessionTTL   = 10 * time.Minute
	rateLimiterCleanup = 5 * time.Minute
)

// Run loads configuration, connects to PostgreSQL, builds the services and
// serves HTTP until ctx is canceled. Shutdown is graceful within
// cfg.Server.ShutdownTimeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("word_of_day_timezone", cfg.WordOfDay.Location.String()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if !cfg.Database.SkipMigrations {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	bundled, err := wordlist.Load(cfg.WordList.Path)
	if err != nil {
		return fmt.Errorf("load word list: %w", err)
	}
	store := wordlist.NewStore(bundled)
	logger.Info("word list loaded", slog.Int("words", len(bundled)))

	var collector *metrics.Collector
	if !cfg.Metrics.Disabled {
		collector = metrics.NewCollector(metricsNamespace)
	}

	// Repositories
	wordRepo := wordrepo.New(pool)
	progressRepo := progressrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	// Services
	dictionary := merriam.NewClient(cfg.Dictionary, logger)
	lookupService := lookup.NewService(logger, dictionary, lookupMetrics(collector),
		lookup.NewSessions(searchSessionTTL), cfg.Dictionary.LookupTimeout)
	wordsService := words.NewService(logger, wordRepo, store, wordMetrics(collector))
	progressService := progresssvc.NewService(logger, txManager, progressRepo, wordRepo, store,
		progressMetrics(collector), cfg.WordOfDay.Location)
	wordOfDayService := wordofday.NewService(logger, store, wordofday.Selector{
		Epoch:    cfg.WordOfDay.Epoch,
		Location: cfg.WordOfDay.Location,
	})

	limiter := middleware.NewRateLimiter(rateLimiterCleanup)
	defer limiter.Stop()

	deps := rest.RouterDeps{
		Logger:      logger,
		CORS:        cfg.CORS,
		Health:      rest.NewHealthHandler(pool, store, BuildVersion()),
		Lookup:      rest.NewLookupHandler(lookupService, logger),
		Words:       rest.NewWordsHandler(wordsService, logger),
		Progress:    rest.NewProgressHandler(progressService, logger),
		WordOfDay:   rest.NewWordOfDayHandler(wordOfDayService, logger),
		RateLimiter: limiter,
		LookupLimit: cfg.Dictionary.RateLimit,

		TrustProxyHeaders: cfg.Server.TrustProxyHeaders,
	}
	if collector != nil {
		deps.Requests = collector
		deps.MetricsPath = cfg.Metrics.Path
		deps.MetricsHandler = collector.Handler()
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      rest.NewRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if cfg.WordList.RemoteURL != "" {
		fetcher := wordlist.NewFetcher(cfg.WordList.RemoteURL, cfg.WordList.FetchTimeout, logger)
		g.Go(func() error {
			refreshWordList(gctx, fetcher, store, logger)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// refreshWordList swaps the remote list into store. On failure the bundled
// list stays active.
func refreshWordList(ctx context.Context, fetcher *wordlist.Fetcher, store *wordlist.Store, logger *slog.Logger) {
	remote, err := fetcher.Fetch(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logger.Warn("remote word list unavailable, keeping bundled list",
				slog.String("error", err.Error()),
			)
		}
		return
	}
	if len(remote) == 0 {
		logger.Warn("remote word list is empty, keeping bundled list")
		return
	}

	store.Replace(remote)
	logger.Info("remote word list loaded", slog.Int("words", len(remote)))
}

// A typed nil *Collector must reach the services as a nil interface.

func lookupMetrics(c *metrics.Collector) interface {
	ObserveLookup(string, time.Duration)
} {
	if c == nil {
		return nil
	}
	return c
}

func wordMetrics(c *metrics.Collector) interface{ WordCreated() } {
	if c == nil {
		return nil
	}
	return c
}

func progressMetrics(c *metrics.Collector) interface{ WordLearned() } {
	if c == nil {
		return nil
	}
	return c
}
