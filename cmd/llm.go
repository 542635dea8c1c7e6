package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saketh8887/medconnect/internal/llm"
	"github.com/saketh8887/medconnect/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect assistant request/response events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent assistant requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		events, err := rt.store.LLMEvents(cmd.Context(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if purpose != "" {
			events = slices.DeleteFunc(events, func(e store.LLMRequestEvent) bool { return e.Purpose != purpose })
		}
		if limit > 0 && len(events) > limit {
			events = events[len(events)-limit:]
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No assistant requests found.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-19s  %-10s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Fprintln(out, strings.Repeat("─", 96))
		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Fprintf(out, "%-5d  %-19s  %-10s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View the full request and response of one event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		e, err := rt.store.LLMEvent(cmd.Context(), id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		sep := strings.Repeat("─", 60)
		fmt.Fprintf(out, "ID:        %d\n", e.ID)
		fmt.Fprintf(out, "Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(out, "Provider:  %s\n", e.Provider)
		fmt.Fprintf(out, "Model:     %s\n", e.Model)
		fmt.Fprintf(out, "Purpose:   %s\n", e.Purpose)
		fmt.Fprintf(out, "Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Fprintf(out, "Latency:   %dms\n", e.LatencyMs)
		fmt.Fprintf(out, "Success:   %v\n", e.Success)
		if e.ErrorMessage != "" {
			fmt.Fprintf(out, "Error:     %s\n", e.ErrorMessage)
		}

		for _, part := range []struct{ title, body string }{
			{"REQUEST", e.RequestBody},
			{"RESPONSE", e.ResponseBody},
		} {
			fmt.Fprintln(out)
			fmt.Fprintln(out, sep)
			fmt.Fprintln(out, part.title)
			fmt.Fprintln(out, sep)
			if part.body == "" {
				fmt.Fprintln(out, "(not captured)")
			} else {
				fmt.Fprintln(out, part.body)
			}
		}
		return nil
	},
}

type modelUsage struct {
	model     string
	calls     int
	in, out   int
	latencyMs int64
	failed    int
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		events, err := rt.store.LLMEvents(cmd.Context(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No assistant usage recorded yet.")
			return nil
		}

		byModel := map[string]*modelUsage{}
		for _, e := range events {
			u := byModel[e.Model]
			if u == nil {
				u = &modelUsage{model: e.Model}
				byModel[e.Model] = u
			}
			u.calls++
			u.in += e.InputTokens
			u.out += e.OutputTokens
			u.latencyMs += e.LatencyMs
			if !e.Success {
				u.failed++
			}
		}
		models := make([]string, 0, len(byModel))
		for m := range byModel {
			models = append(models, m)
		}
		slices.Sort(models)

		fmt.Fprintf(out, "%-30s  %6s  %6s  %10s  %10s  %8s  %9s\n",
			"Model", "Calls", "Failed", "Input", "Output", "Avg Ms", "Cost")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		var total float64
		for _, m := range models {
			u := byModel[m]
			cost := "-"
			if c := llm.LookupCost(m); c != nil {
				v := c.Cost(u.in, u.out)
				total += v
				cost = fmt.Sprintf("$%.4f", v)
			}
			fmt.Fprintf(out, "%-30s  %6d  %6d  %10d  %10d  %8d  %9s\n",
				m, u.calls, u.failed, u.in, u.out, u.latencyMs/int64(u.calls), cost)
		}
		fmt.Fprintln(out, strings.Repeat("─", 90))
		fmt.Fprintf(out, "Estimated total: $%.4f\n", total)
		return nil
	},
}

func init() {
	llmListCmd.Flags().Int("limit", 20, "Maximum number of events to show")
	llmListCmd.Flags().String("purpose", "", "Filter by purpose (chat, feedback)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
