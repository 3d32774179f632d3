package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/caseflow/internal/catalog"
	"github.com/alexanderramin/caseflow/internal/cli"
	"github.com/alexanderramin/caseflow/internal/db"
	"github.com/alexanderramin/caseflow/internal/engine"
	"github.com/alexanderramin/caseflow/internal/intelligence"
	"github.com/alexanderramin/caseflow/internal/llm"
	"github.com/alexanderramin/caseflow/internal/prompt"
	"github.com/alexanderramin/caseflow/internal/repository"
	"github.com/alexanderramin/caseflow/internal/rubric"
	"github.com/alexanderramin/caseflow/internal/service"
	"github.com/alexanderramin/caseflow/internal/signals"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.caseflow/caseflow.db
	dbPath := os.Getenv("CASEFLOW_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".caseflow", "caseflow.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logger := newLogger()

	// Reference data: built-in questions and rubrics, with optional
	// YAML overlays.
	questions, err := catalog.New()
	if err != nil {
		return err
	}
	if dir := os.Getenv("CASEFLOW_QUESTIONS"); dir != "" {
		if err := questions.LoadDir(dir); err != nil {
			return err
		}
	}
	rubrics, err := rubric.NewStore()
	if err != nil {
		return err
	}
	if dir := os.Getenv("CASEFLOW_RUBRICS"); dir != "" {
		if err := rubrics.LoadDir(dir); err != nil {
			return err
		}
	}
	composer, err := prompt.NewComposer(rubrics, logger)
	if err != nil {
		return err
	}

	// Text understanding: the lexical heuristic always works; a local
	// model refines it when enabled.
	heuristic := signals.NewHeuristic()
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	client := llm.NewOllamaClient(llmCfg, observer)
	analyzer := intelligence.NewLLMAnalyzer(client, llmCfg, heuristic, logger)
	assessor := intelligence.NewAssessor(client, llmCfg, logger)

	machine := engine.NewEngine(engine.LoadEngineConfig(), analyzer, nil, nil, logger)

	interviews := service.NewInterviewService(
		questions, rubrics, composer, machine, assessor, nil,
		db.NewSQLiteUnitOfWork(database),
		repository.NewSQLiteSessionRepo(database),
		repository.NewSQLiteTranscriptRepo(database),
		repository.NewSQLiteAssessmentRepo(database),
	)

	app := &cli.App{
		Interviews: interviews,
		Questions:  questions,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}

// newLogger writes structured logs to stderr, or discards them unless
// CASEFLOW_LOG is set. The TUI owns stdout.
func newLogger() *slog.Logger {
	var w io.Writer = io.Discard
	level := slog.LevelInfo
	switch os.Getenv("CASEFLOW_LOG") {
	case "":
	case "debug":
		w = os.Stderr
		level = slog.LevelDebug
	default:
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
