package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/stave/internal/app"
	"github.com/abhisek/stave/internal/diagnosis"
	"github.com/abhisek/stave/internal/llm"
	"github.com/abhisek/stave/internal/quiz"
	sessionscreen "github.com/abhisek/stave/internal/screens/session"
	"github.com/abhisek/stave/internal/store"
	"github.com/abhisek/stave/internal/tutor"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so the log goes next to the database.
	logPath := filepath.Join(filepath.Dir(settings.DB), "stave.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	logger := newLogger(logFile)

	st, err := store.Open(settings.DB)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	deps := sessionscreen.Deps{
		Registry:         quiz.NewRegistry(),
		Seed:             settings.Seed,
		QuestionsPerKind: settings.QuestionsPerKind,
		Duration:         settings.SessionDuration,
		Allowed:          settings.Allowed(),
		Done:             make(map[quiz.Kind]bool),
		Bank:             st.Questions(),
		Logger:           logger,
	}

	provider, err := llm.NewProvider(ctx, settings.LLM, st.LLMRequests(), logger)
	switch {
	case errors.Is(err, llm.ErrDisabled):
		logger.Info("tutor disabled: no LLM provider configured")
	case err != nil:
		fmt.Fprintln(os.Stderr, "LLM provider not available:", err)
		fmt.Fprintln(os.Stderr, "The tutor will be unavailable.")
	default:
		logger.Info("tutor enabled", "provider", provider.Name(), "model", provider.ModelID())
		deps.Lessons = tutor.NewService(provider, tutor.DefaultConfig())
		deps.Compressor = tutor.NewCompressor(provider, tutor.DefaultCompressorConfig())
	}

	// Rule-based diagnosis works without a provider.
	diagService := diagnosis.NewService(provider)
	defer diagService.Close()
	deps.Diagnosis = diagService

	return app.Run(app.Options{Session: deps})
}
