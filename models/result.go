// ABOUTME: Optimization result types: selections, placements, totals
// ABOUTME: Also defines the solver terminal states and the JSON error envelope

package models

// SolveStatus is the terminal state of one panel optimization.
type SolveStatus string

const (
	// StatusOptimal: the incumbent was proven cost-minimal.
	StatusOptimal SolveStatus = "optimal"
	// StatusFeasible: a valid configuration was found but the time limit
	// expired before optimality was proven.
	StatusFeasible SolveStatus = "feasible"
	// StatusInfeasible: the constraints were proven unsatisfiable.
	StatusInfeasible SolveStatus = "infeasible"
	// StatusTimeout: the time limit expired before any configuration was
	// found; satisfiability is unknown.
	StatusTimeout SolveStatus = "timeout"
)

// Selection is one catalog component chosen for the panel, with quantity
// and extended pricing recomputed from the catalog.
type Selection struct {
	Model        string   `json:"model"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	Quantity     int      `json:"quantity"`
	UnitCost     float64  `json:"unit_cost"`
	ExtendedCost float64  `json:"extended_cost"`
}

// Placement locates one physical copy of a component. Block is set on
// block-addressed planes, Slot on the front door; merged footprints report
// their full block run (e.g. "AB").
type Placement struct {
	Model   string `json:"model"`
	Copy    int    `json:"copy"`
	Cabinet int    `json:"cabinet"`
	Bay     int    `json:"bay"`
	Plane   Plane  `json:"plane"`
	Block   string `json:"block,omitempty"`
	Slot    int    `json:"slot,omitempty"`
}

// PanelConfig is the complete optimization result for one panel.
// On infeasible or timeout outcomes the selection and placements are empty
// and Violations carries a single entry naming the terminal state.
type PanelConfig struct {
	PanelType   PanelType `json:"panel_type"`
	CabinetDoor DoorType  `json:"cabinet_door"`

	Selections []Selection `json:"selections"`
	Placements []Placement `json:"placements"`

	TotalCost          float64 `json:"total_cost"`
	StandbyCurrent     float64 `json:"standby_current"`
	AlarmCurrent       float64 `json:"alarm_current"`
	SupplyCapacity     float64 `json:"supply_capacity"`
	UtilizationPercent float64 `json:"utilization_percent"`

	Violations []string `json:"violations"`

	SolverStatus SolveStatus `json:"solver_status"`
	SolveTimeMS  int64       `json:"solve_time_ms"`
}

// Quantity returns the selected quantity for a model, zero if unselected.
func (c PanelConfig) Quantity(model string) int {
	for _, s := range c.Selections {
		if s.Model == model {
			return s.Quantity
		}
	}
	return 0
}

// CategoryQuantity sums selected quantities across a category.
func (c PanelConfig) CategoryQuantity(cat Category) int {
	total := 0
	for _, s := range c.Selections {
		if s.Category == cat {
			total += s.Quantity
		}
	}
	return total
}

// ErrorResponse is the JSON error envelope returned by the HTTP API.
type ErrorResponse struct {
	Error string `json:"error"`
}
