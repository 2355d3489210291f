package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/stave/internal/catalog"
	"github.com/abhisek/stave/internal/config"
	"github.com/abhisek/stave/internal/quiz"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List question kinds in learning order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printKinds(cmd.OutOrStdout())
	},
}

func printKinds(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tSECTION\tLEVEL\tNAME\tAFTER")
	for _, t := range catalog.LearningOrder() {
		pre := make([]string, len(t.Prerequisites))
		for i, k := range t.Prerequisites {
			pre[i] = string(k)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.Kind, t.Section, t.Level, t.Name, strings.Join(pre, ", "))
	}
	return w.Flush()
}

// resolveKindFlag accepts a kind, a section or a comma-separated list of
// either.
func resolveKindFlag(v string) ([]quiz.Kind, error) {
	return config.ResolveKinds(strings.Split(v, ","))
}
