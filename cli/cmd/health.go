// ABOUTME: Health command for the fireplan CLI
// ABOUTME: Checks backend connectivity and catalog availability

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
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend connectivity",
	Long:  `Check connectivity to the panel optimizer backend and verify the catalog is loaded.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHealth(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// runHealth executes the health check and returns exit code
func runHealth(ctx context.Context, w io.Writer) int {
	url := GetAPIURL()
	c := client.New(url)

	resp, err := c.Health(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		out, _ := json.MarshalIndent(map[string]any{
			"backend":            url,
			"status":             resp.Status,
			"catalog_components": resp.CatalogComponents,
		}, "", "  ")
		fmt.Fprintln(w, string(out))
	} else {
		fmt.Fprintf(w, "Backend:            %s\nStatus:             %s\nCatalog components: %d\n",
			url, resp.Status, resp.CatalogComponents)
	}

	return 0
}
