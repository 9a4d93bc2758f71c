package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/liftoff/internal/catalog"
	"github.com/alexanderramin/liftoff/internal/cli"
	"github.com/alexanderramin/liftoff/internal/db"
	"github.com/alexanderramin/liftoff/internal/generation"
	"github.com/alexanderramin/liftoff/internal/intelligence"
	"github.com/alexanderramin/liftoff/internal/llm"
	"github.com/alexanderramin/liftoff/internal/repository"
	"github.com/alexanderramin/liftoff/internal/service"
	"github.com/alexanderramin/liftoff/internal/session"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.liftoff/liftoff.db
	dbPath := os.Getenv("LIFTOFF_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".liftoff", "liftoff.db")
	}

	// Exercise catalog: built-in unless a YAML file is configured
	cat := catalog.Default()
	if path := os.Getenv("LIFTOFF_CATALOG"); path != "" {
		loaded, err := catalog.LoadFile(path)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
		cat = loaded
	}

	llmCfg := llm.LoadConfig()

	// Diagnostics go to stderr only when asked for; the TUI owns stdout.
	logOut := io.Discard
	if llmCfg.LogCalls {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logOut, nil))

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	workoutRepo := repository.NewSQLiteWorkoutRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	useCaseObserver := service.NewSlogUseCaseObserver(logger)
	workouts := service.NewWorkoutService(workoutRepo, uow, useCaseObserver)
	creds := service.NewCredentialService(settingsRepo, useCaseObserver)

	gen := generation.NewGenerator(cat, generation.NewLeastRecentRotation(workouts, logger))

	llmClient := llm.NewGeminiClient(llmCfg, creds, llm.NewSlogObserver(logger))
	recommender := intelligence.NewWorkoutRecommender(llmClient, cat)
	aiTimeout := time.Duration(llmCfg.TaskTimeout(llm.TaskWorkout)) * time.Millisecond

	app := &cli.App{
		Workouts:    workouts,
		Credentials: creds,
		Catalog:     cat,
		Generator:   gen,
		NewSession: func() *session.Controller {
			return session.NewController(gen, recommender, creds, workouts,
				session.WithAITimeout(aiTimeout),
				session.WithLogger(logger),
			)
		},
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
