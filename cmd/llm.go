package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/abhisek/stave/internal/llm"
	"github.com/abhisek/stave/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM request log",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		_, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		reqs, err := st.LLMRequests().List(cmd.Context(), store.LLMRequestFilter{Purpose: purpose, Limit: limit})
		if err != nil {
			return fmt.Errorf("query requests: %w", err)
		}
		if len(reqs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No LLM requests found.")
			return nil
		}
		return printRequests(cmd.OutOrStdout(), reqs, time.Now())
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View the full request and response of one LLM call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		_, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		r, err := st.LLMRequests().Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("request %d: %w", id, err)
		}
		printRequest(cmd.OutOrStdout(), r)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		usage, err := st.LLMRequests().Usage(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(usage) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No LLM usage recorded yet.")
			return nil
		}
		return printUsage(cmd.OutOrStdout(), usage)
	},
}

func printRequests(out io.Writer, reqs []store.LLMRequest, now time.Time) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tPURPOSE\tMODEL\tIN\tOUT\tMS\tOK")
	for _, r := range reqs {
		ok := "✓"
		if !r.Success {
			ok = "✗"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			r.ID,
			humanize.RelTime(r.CreatedAt, now, "ago", "from now"),
			r.Purpose,
			truncate(r.Model, 28),
			r.InputTokens,
			r.OutputTokens,
			r.LatencyMs,
			ok,
		)
	}
	return w.Flush()
}

func printRequest(out io.Writer, r *store.LLMRequest) {
	sep := strings.Repeat("─", 60)

	fmt.Fprintf(out, "ID:        %d\n", r.ID)
	fmt.Fprintf(out, "Time:      %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Provider:  %s\n", r.Provider)
	fmt.Fprintf(out, "Model:     %s\n", r.Model)
	fmt.Fprintf(out, "Purpose:   %s\n", r.Purpose)
	fmt.Fprintf(out, "Tokens:    %s in / %s out\n", humanize.Comma(int64(r.InputTokens)), humanize.Comma(int64(r.OutputTokens)))
	fmt.Fprintf(out, "Latency:   %dms\n", r.LatencyMs)
	fmt.Fprintf(out, "Success:   %v\n", r.Success)
	if r.ErrorMessage != "" {
		fmt.Fprintf(out, "Error:     %s\n", r.ErrorMessage)
	}

	for _, part := range []struct{ name, body string }{
		{"REQUEST", r.RequestBody},
		{"RESPONSE", r.ResponseBody},
	} {
		fmt.Fprintln(out)
		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, part.name)
		fmt.Fprintln(out, sep)
		if part.body == "" {
			fmt.Fprintln(out, "(not captured)")
			continue
		}
		fmt.Fprintln(out, part.body)
	}
}

func printUsage(out io.Writer, usage []store.ModelUsage) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "MODEL\tCALLS\tFAILED\tINPUT\tOUTPUT\tCOST\t")

	var total float64
	var calls int
	var unknown []string
	for _, u := range usage {
		calls += u.Requests
		cost := "?"
		if c := llm.LookupCost(u.Model); c != nil {
			usd := c.Cost(u.InputTokens, u.OutputTokens)
			total += usd
			cost = formatCost(usd)
		} else {
			unknown = append(unknown, u.Model)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%s\t\n",
			truncate(u.Model, 32), u.Requests, u.Failures,
			humanize.Comma(int64(u.InputTokens)), humanize.Comma(int64(u.OutputTokens)), cost)
	}

	label := "TOTAL"
	if len(unknown) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Fprintf(w, "%s\t%d\t\t\t\t%s\t\n", label, calls, formatCost(total))
	if err := w.Flush(); err != nil {
		return err
	}
	if len(unknown) > 0 {
		fmt.Fprintf(out, "\nPricing unavailable for: %s\n", strings.Join(unknown, ", "))
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (lesson, error-diagnosis, session-compress)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
