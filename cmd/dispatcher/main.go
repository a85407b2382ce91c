package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"courtside/config"
	"courtside/internal/analyzer"
	"courtside/internal/briefer"
	"courtside/internal/collector"
	"courtside/internal/llm"
	"courtside/internal/logging"
	"courtside/internal/notifier"
	"courtside/internal/orchestrator"
)

func main() {
	os.Exit(run())
}

// run exits non-zero only on configuration failure or delivery failure;
// everything upstream degrades and the briefing still ships.
func run() int {
	config.LoadEnv()
	logging.InitLogger(os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("[Dispatcher] configuration invalid", slog.String("error", err.Error()))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runID := uuid.NewString()
	slog.Info("[Dispatcher] starting run", slog.String("run_id", runID))

	session := llm.NewSession(llm.NewOpenAIClient(cfg.OpenAIKey), llm.DefaultCatalog())
	col := collector.New(nil, cfg.HeadlineLimit)

	orc := orchestrator.New(orchestrator.Deps{
		Headlines:  col,
		Scoreboard: col,
		Analyzer:   analyzer.New(session, cfg.LocalFallback),
		Briefer:    briefer.New(session),
		Deliverer: notifier.New(notifier.Config{
			Host:      cfg.SMTPHost,
			Port:      cfg.SMTPPort,
			User:      cfg.SMTPUser,
			Password:  cfg.SMTPPassword,
			From:      cfg.EmailFrom,
			Recipient: cfg.EmailRecipient,
		}),
		RunID: runID,
	})

	if _, err := orc.Run(ctx); err != nil {
		slog.Error("[Dispatcher] run failed", slog.String("error", err.Error()))
		return 1
	}

	slog.Info("[Dispatcher] run finished", slog.String("run_id", runID))
	return 0
}
