package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/abhisek/stave/internal/quiz"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build and question engine versions",
	Long: `Print the stave build, the question engine version and the engine
series that banked questions must share to be replayed.`,
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout(), buildVersion())
	},
}

// buildVersion prefers the -ldflags value, then the module version stamped
// by go install.
func buildVersion() string {
	if version != "(devel)" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

func printVersion(out io.Writer, build string) {
	fmt.Fprintf(out, "stave    %s\n", build)
	fmt.Fprintf(out, "engine   %s (replays %s.x banks)\n", quiz.EngineVersion, semver.MajorMinor(quiz.EngineVersion))
	fmt.Fprintf(out, "kinds    %d\n", len(quiz.NewRegistry().Kinds()))
}
