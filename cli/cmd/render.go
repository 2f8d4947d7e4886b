// ABOUTME: Human-readable rendering of optimization results
// ABOUTME: Styled per-panel summaries with selections, placements, and violations

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/panel-tools/fireplan/models"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	okStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	warnStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	failStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	violationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func statusStyle(status models.SolveStatus) lipgloss.Style {
	switch status {
	case models.StatusOptimal:
		return okStyle
	case models.StatusFeasible:
		return warnStyle
	default:
		return failStyle
	}
}

// renderResults formats a batch response, panels in stable id order.
func renderResults(resp *models.OptimizeResponse) string {
	ids := make([]string, 0, len(resp.Results))
	for id := range resp.Results {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderPanel(id, resp.Results[id]))
	}
	return b.String()
}

func renderPanel(id string, cfg models.PanelConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s  %s\n",
		titleStyle.Render("Panel "+id),
		dimStyle.Render(string(cfg.PanelType)),
		statusStyle(cfg.SolverStatus).Render(strings.ToUpper(string(cfg.SolverStatus))))

	if len(cfg.Selections) > 0 {
		fmt.Fprintf(&b, "  Total cost: $%.2f   alarm draw: %.3fA / %.3fA (%.1f%%)   solved in %dms\n",
			cfg.TotalCost, cfg.AlarmCurrent, cfg.SupplyCapacity, cfg.UtilizationPercent, cfg.SolveTimeMS)
		for _, sel := range cfg.Selections {
			fmt.Fprintf(&b, "  %2d x %-10s $%9.2f  %s\n",
				sel.Quantity, sel.Model, sel.ExtendedCost, sel.Description)
		}
		for _, p := range cfg.Placements {
			loc := fmt.Sprintf("cabinet %d bay %d %s", p.Cabinet, p.Bay, p.Plane)
			if p.Block != "" {
				loc += " block " + p.Block
			}
			if p.Slot != 0 {
				loc += fmt.Sprintf(" slot %d", p.Slot)
			}
			b.WriteString(dimStyle.Render(fmt.Sprintf("       %s #%d -> %s", p.Model, p.Copy+1, loc)) + "\n")
		}
	}

	for _, v := range cfg.Violations {
		b.WriteString("  " + violationStyle.Render("! "+v) + "\n")
	}

	return b.String()
}
