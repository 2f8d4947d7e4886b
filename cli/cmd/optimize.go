// ABOUTME: Optimize command for the fireplan CLI
// ABOUTME: Submits a JSON request file and renders the per-panel results

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/panel-tools/fireplan/cli/internal/client"
	"github.com/panel-tools/fireplan/models"
)

var optimizeTimeLimit float64

var optimizeCmd = &cobra.Command{
	Use:   "optimize <request.json>",
	Short: "Optimize panel configurations",
	Long: `Submit a batch optimization request and render the results.

The request file holds a JSON object with a "panels" map of panel id to
{"devices": {...}, "preferences": {...}} and an optional
"time_limit_seconds" that --time-limit overrides.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runOptimize(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	optimizeCmd.Flags().Float64Var(&optimizeTimeLimit, "time-limit", 0,
		"Per-panel solve budget in seconds (overrides the request file)")
	rootCmd.AddCommand(optimizeCmd)
}

// runOptimize submits the request file and returns exit code
func runOptimize(ctx context.Context, w io.Writer, path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	var req models.OptimizeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		fmt.Fprintf(w, "Error: invalid request file: %v\n", err)
		return 2
	}
	if optimizeTimeLimit > 0 {
		req.TimeLimitSeconds = optimizeTimeLimit
	}

	c := client.New(GetAPIURL())
	resp, err := c.Optimize(ctx, req)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		out, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Fprintln(w, string(out))
	} else {
		fmt.Fprintln(w, renderResults(resp))
	}

	// Non-zero exit when any panel failed to configure, for CI use.
	for _, cfg := range resp.Results {
		if cfg.SolverStatus == models.StatusInfeasible || cfg.SolverStatus == models.StatusTimeout {
			return 1
		}
	}
	return 0
}
