package cmd

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/abhisek/stave/internal/config"
	"github.com/abhisek/stave/internal/dice"
	"github.com/abhisek/stave/internal/quiz"
	"github.com/abhisek/stave/internal/store"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Manage the question bank",
	Long: `The question bank keeps every question served in the terminal UI, and
any generated with 'stave bank generate'. A banked question can be replayed
from its seed while the engine's major.minor version is unchanged.`,
}

var bankGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate questions into the bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		kindVal, _ := cmd.Flags().GetString("kind")
		count, _ := cmd.Flags().GetInt("count")
		if count < 1 {
			return fmt.Errorf("invalid --count %d: must be at least 1", count)
		}

		settings, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		kinds := settings.Kinds
		if kindVal != "" {
			if kinds, err = resolveKindFlag(kindVal); err != nil {
				return err
			}
		}
		s := settings.Seed
		if s == 0 {
			s = rand.Uint64()
		}

		reg := quiz.NewRegistry()
		ids, err := generateInto(cmd.Context(), reg, st.Questions(), kinds, count, s)
		if err != nil {
			return err
		}
		stderrLogger().Debug("banked questions", "count", len(ids), "seed", s)
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List banked questions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		section, _ := cmd.Flags().GetString("section")
		limit, _ := cmd.Flags().GetInt("limit")

		_, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := st.Questions().List(cmd.Context(), store.QuestionFilter{
			Kind:    quiz.Kind(kind),
			Section: quiz.Section(section),
			Limit:   limit,
		})
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No banked questions.")
			return nil
		}
		return printRecords(cmd.OutOrStdout(), recs, time.Now())
	},
}

var bankShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a banked question with its answers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		replay, _ := cmd.Flags().GetBool("replay")

		_, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rec, err := st.Questions().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		q := rec.Question
		if replay {
			if !rec.Replayable() {
				return fmt.Errorf("question %s was banked by engine %s and cannot be replayed by %s",
					rec.ID, rec.EngineVersion, quiz.EngineVersion)
			}
			if q, err = quiz.NewRegistry().Generate(rec.Kind, rec.Seed); err != nil {
				return fmt.Errorf("replay: %w", err)
			}
		}
		if q == nil {
			return fmt.Errorf("question %s has no stored payload", rec.ID)
		}
		printQuestion(cmd.OutOrStdout(), rec, q)
		return nil
	},
}

var bankExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export banked questions as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		out, _ := cmd.Flags().GetString("out")

		_, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := st.Questions().List(cmd.Context(), store.QuestionFilter{Kind: quiz.Kind(kind)})
		if err != nil {
			return err
		}
		data, err := exportYAML(recs)
		if err != nil {
			return err
		}
		if out == "" || out == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d questions to %s\n", len(recs), out)
		return nil
	},
}

func init() {
	bankGenerateCmd.Flags().String("kind", "", "kind or section to generate (default: configured kinds)")
	bankGenerateCmd.Flags().IntP("count", "n", 10, "number of questions")

	bankListCmd.Flags().String("kind", "", "filter by kind")
	bankListCmd.Flags().String("section", "", "filter by section")
	bankListCmd.Flags().IntP("limit", "n", 20, "number of questions to show (0 for all)")

	bankShowCmd.Flags().Bool("replay", false, "regenerate the question from its seed")

	bankExportCmd.Flags().String("kind", "", "filter by kind")
	bankExportCmd.Flags().StringP("out", "o", "", "output file (default stdout)")

	bankCmd.AddCommand(bankGenerateCmd)
	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankShowCmd)
	bankCmd.AddCommand(bankExportCmd)
}

// openStore loads settings and opens the database they name.
func openStore(cmd *cobra.Command) (*config.Settings, *store.Store, error) {
	settings, err := loadSettings(cmd)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(settings.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return settings, st, nil
}

// generateInto banks count questions drawn from kinds (every kind when
// empty) and returns their IDs.
func generateInto(ctx context.Context, reg *quiz.Registry, bank store.QuestionRepo, kinds []quiz.Kind, count int, seed uint64) ([]string, error) {
	if len(kinds) == 0 {
		kinds = reg.Kinds()
	}
	rng := dice.New(seed)
	ids := make([]string, 0, count)
	for range count {
		q, err := reg.Generate(dice.Pick(rng, kinds), rng.Uint64())
		if err != nil {
			return ids, err
		}
		if err := bank.Save(ctx, q); err != nil {
			return ids, err
		}
		ids = append(ids, q.ID)
	}
	return ids, nil
}

func printRecords(out io.Writer, recs []store.QuestionRecord, now time.Time) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tSEED\tENGINE\tCREATED")
	for _, r := range recs {
		engine := r.EngineVersion
		if !r.Replayable() {
			engine += " (stale)"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			r.ID, r.Kind, r.Seed, engine, humanize.RelTime(r.CreatedAt, now, "ago", "from now"))
	}
	return w.Flush()
}

func printQuestion(out io.Writer, rec *store.QuestionRecord, q *quiz.Question) {
	sep := strings.Repeat("─", 60)
	fmt.Fprintf(out, "ID:       %s\n", rec.ID)
	fmt.Fprintf(out, "Kind:     %s (%s)\n", rec.Kind, rec.Section)
	fmt.Fprintf(out, "Seed:     %d\n", rec.Seed)
	fmt.Fprintf(out, "Engine:   %s\n", rec.EngineVersion)
	fmt.Fprintf(out, "Created:  %s\n", rec.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(out, sep)
	fmt.Fprintln(out, q.Prompt)
	for _, line := range q.Staff {
		fmt.Fprintf(out, "  │ %s\n", line)
	}
	for _, p := range q.Parts {
		fmt.Fprintf(out, "\n%s [%s]\n", p.Prompt, p.Format)
		for i, c := range p.Choices {
			mark := " "
			if c.Text == p.Answer {
				mark = "*"
			}
			fmt.Fprintf(out, " %s%d) %s\n", mark, i+1, c.Text)
		}
		fmt.Fprintf(out, "  answer: %s\n", p.Answer)
	}
	fmt.Fprintln(out, sep)
	fmt.Fprintln(out, q.Explanation)
}

type exportPart struct {
	Label   string   `yaml:"label"`
	Prompt  string   `yaml:"prompt"`
	Format  string   `yaml:"format"`
	Choices []string `yaml:"choices,omitempty"`
	Answer  string   `yaml:"answer"`
}

type exportQuestion struct {
	ID          string       `yaml:"id"`
	Kind        string       `yaml:"kind"`
	Seed        uint64       `yaml:"seed"`
	Engine      string       `yaml:"engine"`
	Prompt      string       `yaml:"prompt"`
	Staff       []string     `yaml:"staff,omitempty"`
	Parts       []exportPart `yaml:"parts"`
	Explanation string       `yaml:"explanation"`
}

// exportYAML renders records as a YAML list. Records without a payload
// are skipped.
func exportYAML(recs []store.QuestionRecord) ([]byte, error) {
	out := make([]exportQuestion, 0, len(recs))
	for _, r := range recs {
		q := r.Question
		if q == nil {
			continue
		}
		eq := exportQuestion{
			ID:          r.ID,
			Kind:        string(r.Kind),
			Seed:        r.Seed,
			Engine:      r.EngineVersion,
			Prompt:      q.Prompt,
			Staff:       q.Staff,
			Explanation: q.Explanation,
		}
		for _, p := range q.Parts {
			ep := exportPart{Label: p.Label, Prompt: p.Prompt, Format: string(p.Format), Answer: p.Answer}
			for _, c := range p.Choices {
				ep.Choices = append(ep.Choices, c.Text)
			}
			eq.Parts = append(eq.Parts, ep)
		}
		out = append(out, eq)
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return data, nil
}
