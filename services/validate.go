// ABOUTME: Independent validation pass over an extracted configuration
// ABOUTME: Re-derives mandatory, exclusion, and capacity rules from quantities alone

package services

import (
	"fmt"

	"github.com/panel-tools/fireplan/catalog"
	"github.com/panel-tools/fireplan/models"
)

// Validate re-checks a configuration against the selection rules using only
// the extracted quantities. An encoding gap in the constraint model must
// not pass through silently as a valid result; findings are advisory
// violation strings, not errors.
func Validate(cfg models.PanelConfig, cat *catalog.Catalog, demand models.Demand) []string {
	var violations []string
	flag := func(format string, args ...any) {
		violations = append(violations, fmt.Sprintf(format, args...))
	}

	cpus := cfg.CategoryQuantity(models.CategoryCPU)
	displays := cfg.CategoryQuantity(models.CategoryDisplay)
	networks := cfg.CategoryQuantity(models.CategoryNetwork)
	nacs := cfg.CategoryQuantity(models.CategoryNAC) + cfg.CategoryQuantity(models.CategoryIDNAC)

	primaries := 0
	supplyCapacity := 0.0
	alarmCurrent := 0.0
	addressed := demand.AddressedDevices
	for _, sel := range cfg.Selections {
		comp, err := cat.Lookup(sel.Model)
		if err != nil {
			flag("selection references unknown model %s", sel.Model)
			continue
		}
		alarmCurrent += comp.AlarmCurrent * float64(sel.Quantity)
		if comp.Primary {
			primaries += sel.Quantity
			supplyCapacity += comp.SupplyCapacity * float64(sel.Quantity)
		}
		if comp.ConsumesAddress {
			addressed += sel.Quantity
		}
	}

	switch cfg.PanelType {
	case models.PanelBasic:
		if cpus != 1 {
			flag("basic panel requires exactly 1 CPU, found %d", cpus)
		}
		if displays < 1 {
			flag("basic panel requires at least 1 display, found %d", displays)
		}
		if primaries < 1 {
			flag("basic panel requires a primary power supply")
		}
		if nacs < 1 {
			flag("basic panel requires at least 1 NAC or IDNAC module")
		}
	case models.PanelRedundant:
		if cpus != 2 {
			flag("redundant panel requires exactly 2 CPUs, found %d", cpus)
		}
		if primaries < 2 {
			flag("redundant panel requires at least 2 primary power supplies, found %d", primaries)
		}
	case models.PanelNDU:
		if cpus != 1 {
			flag("NDU panel requires exactly 1 CPU, found %d", cpus)
		}
		if networks < 1 {
			flag("NDU panel requires a network module")
		}
		if primaries < 1 {
			flag("NDU panel requires a primary power supply")
		}
	case models.PanelNDUVoice:
		if cpus != 2 {
			flag("NDU voice panel requires exactly 2 CPUs, found %d", cpus)
		}
		if networks != 2 {
			flag("NDU voice panel requires exactly 2 network modules, found %d", networks)
		}
		if primaries < 2 {
			flag("NDU voice panel requires at least 2 primary power supplies, found %d", primaries)
		}
		if nacs < 1 {
			flag("NDU voice panel requires at least 1 NAC or IDNAC module")
		}
	case models.PanelTransponder:
		if primaries < 1 {
			flag("transponder requires a primary power supply")
		}
		if nacs > 0 {
			flag("transponder must not carry NAC or IDNAC modules, found %d", nacs)
		}
	default:
		if cfg.PanelType.RemoteAnnunciator() && primaries < 1 {
			flag("remote annunciator requires a primary power supply")
		}
	}

	dactCount := cfg.Quantity(catalog.ModelSDACT) + cfg.Quantity(catalog.ModelNoDACT)
	if dactCount != 1 {
		flag("exactly one of SDACT or no-DACT marker must be selected, found %d", dactCount)
	}

	media := cfg.CategoryQuantity(models.CategoryNetworkMedia)
	if media < networks || media > 2*networks {
		flag("network media count %d must be between %d and %d", media, networks, 2*networks)
	}

	if addressed > models.MaxAddressablePoints {
		flag("addressed points %d exceed the %d point ceiling", addressed, models.MaxAddressablePoints)
	}
	if loops := cfg.CategoryQuantity(models.CategoryLoopCard); loops > models.MaxLoopCards {
		flag("loop card count %d exceeds the limit of %d", loops, models.MaxLoopCards)
	}
	internal := cfg.CategoryQuantity(models.CategoryLoopCard) + nacs + cfg.CategoryQuantity(models.CategoryZoneRelay)
	if internal > models.MaxInternalModules {
		flag("internal module count %d exceeds the limit of %d", internal, models.MaxInternalModules)
	}

	if alarmCurrent > supplyCapacity {
		flag("alarm current %.3fA exceeds supply capacity %.3fA", alarmCurrent, supplyCapacity)
	}

	if demand.LoopDevices > 0 {
		capacity := 0
		for _, sel := range cfg.Selections {
			if comp, err := cat.Lookup(sel.Model); err == nil && comp.Category == models.CategoryLoopCard {
				capacity += comp.LoopCapacity * sel.Quantity
			}
		}
		if capacity < demand.LoopDevices {
			flag("loop capacity %d is below the %d required points", capacity, demand.LoopDevices)
		}
	}
	if demand.NACCircuits > 0 {
		circuits := 0
		for _, sel := range cfg.Selections {
			if comp, err := cat.Lookup(sel.Model); err == nil &&
				(comp.Category == models.CategoryNAC || comp.Category == models.CategoryIDNAC) {
				circuits += comp.NACCircuits * sel.Quantity
			}
		}
		if circuits < demand.NACCircuits {
			flag("notification circuits %d are below the %d required", circuits, demand.NACCircuits)
		}
	}

	return violations
}
