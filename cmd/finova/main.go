package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/finovahq/finova/internal/advisor"
	"github.com/finovahq/finova/internal/cli"
	"github.com/finovahq/finova/internal/db"
	"github.com/finovahq/finova/internal/intelligence"
	"github.com/finovahq/finova/internal/llm"
	"github.com/finovahq/finova/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine store path: env var or default ~/.finova/finova.db
	dbPath := os.Getenv("FINOVA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".finova", "finova.db")
	}

	store, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	defer store.Close()

	// Wire the remote sentiment tier. It stays disabled without an API
	// key; every failure path falls back to local keyword counting.
	inferenceCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if inferenceCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	inferenceClient := llm.NewInferenceClient(inferenceCfg, observer)

	sentiment := intelligence.NewSentimentService(inferenceClient)
	health := advisor.NewHealthService()
	expenses := advisor.NewExpenseService()

	app := &cli.App{
		Advice:        advisor.NewAdviceService(sentiment, health),
		Health:        health,
		Expenses:      expenses,
		Reports:       advisor.NewReportService(health, expenses),
		Profiles:      repository.NewSQLiteProfileRepo(store),
		Ledger:        repository.NewSQLiteExpenseRepo(store),
		Conversations: repository.NewSQLiteConversationRepo(store),
	}

	return cli.NewRootCmd(app).Execute()
}
