package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/stave/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
	dbPath     string
	seed       uint64
)

var rootCmd = &cobra.Command{
	Use:   "stave",
	Short: "Music theory practice in the terminal",
	Long: `stave - music theory questions with worked answers.

Questions cover rhythm and beaming, pitch and clefs, keys and scales,
intervals, chords and cadences, score analysis and musical terms. Every
question comes from a seed, so a seed replays the same questions.

Settings are read from $XDG_CONFIG_HOME/stave/config.yaml, a .env file
in the working directory and STAVE_* environment variables. Flags win.

Examples:
  # Practise in the terminal UI
  stave

  # Drill one kind on the command line
  stave preview --kind intervals.naming --count 5

  # Replay a session
  stave --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/stave/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the SQLite database (overrides STAVE_DB)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "seed for question generation (0 picks one)")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadSettings resolves the configuration and applies the global flags.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	s, err := config.Load(config.Options{Path: configPath})
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("db") {
		s.DB = dbPath
	}
	if cmd.Flags().Changed("seed") {
		s.Seed = seed
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// newLogger returns a text logger on w, at debug level with --verbose.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// stderrLogger is the logger of the non-interactive commands.
func stderrLogger() *slog.Logger {
	return newLogger(os.Stderr)
}
