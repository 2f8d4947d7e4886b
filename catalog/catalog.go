// ABOUTME: Immutable component catalog with lookup by model number
// ABOUTME: Ships a built-in 4100ES catalog; Default() returns the shared instance

package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/panel-tools/fireplan/models"
)

// ErrNotFound is returned when a model number is not in the catalog.
var ErrNotFound = errors.New("component not found")

// Catalog is a read-only component inventory. Construct with New; the
// zero value is empty but usable.
type Catalog struct {
	byModel map[string]models.Component
	ordered []models.Component
}

// New builds a catalog from component entries. Entries are indexed by
// model number; a duplicate model is an error.
func New(components []models.Component) (*Catalog, error) {
	c := &Catalog{
		byModel: make(map[string]models.Component, len(components)),
		ordered: make([]models.Component, 0, len(components)),
	}
	for _, comp := range components {
		if comp.Model == "" {
			return nil, fmt.Errorf("catalog entry %q has no model number", comp.Description)
		}
		if _, dup := c.byModel[comp.Model]; dup {
			return nil, fmt.Errorf("duplicate catalog model %s", comp.Model)
		}
		if comp.MaxQuantity <= 0 {
			return nil, fmt.Errorf("catalog model %s has non-positive max quantity", comp.Model)
		}
		c.byModel[comp.Model] = comp
		c.ordered = append(c.ordered, comp)
	}
	sort.Slice(c.ordered, func(i, j int) bool {
		return c.ordered[i].Model < c.ordered[j].Model
	})
	return c, nil
}

// Lookup returns the component with the given model number.
func (c *Catalog) Lookup(model string) (models.Component, error) {
	comp, ok := c.byModel[model]
	if !ok {
		return models.Component{}, fmt.Errorf("model %s: %w", model, ErrNotFound)
	}
	return comp, nil
}

// All returns every component in stable model-number order.
// The returned slice is shared; callers must not modify it.
func (c *Catalog) All() []models.Component {
	return c.ordered
}

// ByCategory returns the components of one category in model-number order.
func (c *Catalog) ByCategory(cat models.Category) []models.Component {
	var out []models.Component
	for _, comp := range c.ordered {
		if comp.Category == cat {
			out = append(out, comp)
		}
	}
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.ordered)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the shared built-in 4100ES catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(builtin)
		if err != nil {
			// The built-in data is compiled in; a bad entry is a programming
			// error, not a runtime condition.
			panic(fmt.Sprintf("built-in catalog invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
