// ABOUTME: Catalog command for the fireplan CLI
// ABOUTME: Lists the components the optimizer can select, with pricing

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

var catalogCategory string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the component catalog",
	Long:  `List every component the optimizer can select, with category and unit price.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCatalog(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogCategory, "category", "", "Only list components of this category")
	rootCmd.AddCommand(catalogCmd)
}

// runCatalog fetches and prints the catalog and returns exit code
func runCatalog(ctx context.Context, w io.Writer) int {
	c := client.New(GetAPIURL())

	resp, err := c.Catalog(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	components := resp.Components
	if catalogCategory != "" {
		filtered := components[:0]
		for _, comp := range components {
			if string(comp.Category) == catalogCategory {
				filtered = append(filtered, comp)
			}
		}
		components = filtered
	}

	if IsJSONOutput() {
		out, _ := json.MarshalIndent(components, "", "  ")
		fmt.Fprintln(w, string(out))
		return 0
	}

	for _, comp := range components {
		fmt.Fprintf(w, "%-10s  %-22s  $%9.2f  %s\n",
			comp.Model, comp.Category, comp.Cost, comp.Description)
	}
	fmt.Fprintf(w, "\n%d components\n", len(components))
	return 0
}
