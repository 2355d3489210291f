package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/stave/internal/dice"
	"github.com/abhisek/stave/internal/quiz"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Answer generated questions on the command line (no database)",
	Long: `Generate questions and answer them on stdin.

Nothing is saved. Useful for checking a kind's questions and explanations.
Without --kind, kinds are drawn at random from the configured set.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("kind", "", "question kind or section (see 'stave kinds')")
	previewCmd.Flags().Int("count", 5, "number of questions")
}

func runPreview(cmd *cobra.Command, args []string) error {
	kindVal, _ := cmd.Flags().GetString("kind")
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("invalid --count %d: must be at least 1", count)
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

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
	fmt.Fprintf(cmd.OutOrStdout(), "Seed: %d\n\n", s)

	_, err = preview(quiz.NewRegistry(), kinds, count, s, os.Stdin, cmd.OutOrStdout())
	return err
}

// preview runs count questions against in and returns the number answered
// fully correctly. An empty kinds list draws from every kind.
func preview(reg *quiz.Registry, kinds []quiz.Kind, count int, seed uint64, in io.Reader, out io.Writer) (int, error) {
	if len(kinds) == 0 {
		kinds = reg.Kinds()
	}
	rng := dice.New(seed)
	scanner := bufio.NewScanner(in)

	correct := 0
	for i := 1; i <= count; i++ {
		k := dice.Pick(rng, kinds)
		q, err := reg.Generate(k, rng.Uint64())
		if err != nil {
			return correct, fmt.Errorf("generate %s: %w", k, err)
		}

		fmt.Fprintf(out, "── Question %d/%d · %s ──\n", i, count, q.Title)
		fmt.Fprintln(out, q.Prompt)
		for _, line := range q.Staff {
			fmt.Fprintf(out, "  │ %s\n", line)
		}

		answers := make(map[string]string, len(q.Parts))
		for _, p := range q.Parts {
			if len(q.Parts) > 1 || p.Prompt != "" {
				fmt.Fprintf(out, "\n%s\n", p.Prompt)
			}
			for j, c := range p.Choices {
				fmt.Fprintf(out, "  %d) %s\n", j+1, c.Text)
			}
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				fmt.Fprintln(out, "\n(input closed)")
				return correct, scanner.Err()
			}
			given := strings.TrimSpace(scanner.Text())
			if c, ok := quiz.MenuChoice(given, p); ok {
				given = c.Text
			}
			answers[p.Label] = given
		}

		res := quiz.Grade(q, answers)
		if res.Correct() {
			correct++
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(out, "\033[31m✗ %d/%d parts.\033[0m\n", res.Score(), len(res.Parts))
			for _, pr := range res.Parts {
				if pr.Correct {
					continue
				}
				p, _ := q.Part(pr.Label)
				fmt.Fprintf(out, "  %s: %s\n", p.Prompt, p.Answer)
			}
		}
		fmt.Fprintf(out, "Explanation: %s\n\n", q.Explanation)
	}

	fmt.Fprintf(out, "Score: %d/%d\n", correct, count)
	return correct, nil
}
