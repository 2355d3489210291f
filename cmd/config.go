package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/stave/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create or inspect the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		path := configPath
		if path == "" {
			p, err := config.DefaultPath(os.Getenv)
			if err != nil {
				return err
			}
			path = p
		}
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := config.WriteFile(path, defaultFile()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		printSettings(cmd.OutOrStdout(), s)
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

// defaultFile is the starting config: the built-in defaults written out
// so they are easy to edit.
func defaultFile() *config.File {
	d := config.Defaults()
	return &config.File{
		QuestionsPerKind: d.QuestionsPerKind,
		SessionMinutes:   int(d.SessionDuration.Minutes()),
		LLM: config.LLMFile{
			Timeout: d.LLM.Timeout.String(),
		},
	}
}

func printSettings(out io.Writer, s *config.Settings) {
	source := s.Source
	if source == "" {
		source = "(none, defaults and environment)"
	}
	kinds := "all"
	if len(s.Kinds) > 0 {
		names := make([]string, len(s.Kinds))
		for i, k := range s.Kinds {
			names[i] = string(k)
		}
		kinds = strings.Join(names, ", ")
	}
	seedText := "random per run"
	if s.Seed != 0 {
		seedText = fmt.Sprint(s.Seed)
	}
	tutor := "off"
	if s.LLM.Provider != "" {
		tutor = s.LLM.Provider
		if b := s.LLM.Backend(s.LLM.Provider); b != nil && b.Model != "" {
			tutor += " (" + b.Model + ")"
		}
	}

	fmt.Fprintf(out, "Config:      %s\n", source)
	fmt.Fprintf(out, "Database:    %s\n", s.DB)
	fmt.Fprintf(out, "Seed:        %s\n", seedText)
	fmt.Fprintf(out, "Per kind:    %d questions\n", s.QuestionsPerKind)
	fmt.Fprintf(out, "Session:     %s\n", s.SessionDuration)
	fmt.Fprintf(out, "Kinds:       %s\n", kinds)
	fmt.Fprintf(out, "Tutor:       %s\n", tutor)
}
