// ABOUTME: Declarative rule table: mandatory inclusions, exclusions, placement,
// ABOUTME: capacity, power budgets, and demand satisfaction per panel type

package rules

import (
	"fmt"

	"github.com/panel-tools/fireplan/catalog"
	"github.com/panel-tools/fireplan/models"
	"github.com/panel-tools/fireplan/solver"
)

// Kind groups rules for reporting and test selection.
type Kind string

const (
	KindMandatory Kind = "mandatory"
	KindExclusion Kind = "exclusion"
	KindRatio     Kind = "ratio"
	KindPlacement Kind = "placement"
	KindCapacity  Kind = "capacity"
	KindPower     Kind = "power"
	KindDemand    Kind = "demand"
	KindPairing   Kind = "pairing"
)

// Rule is one declarative configuration rule. Applies gates the rule on
// the panel context; Encode asserts it over the encoder's variables.
type Rule struct {
	Name    string
	Kind    Kind
	Applies func(*Context) bool
	Encode  func(*Context, *Encoder) error
}

func always(*Context) bool { return true }

func panelIs(types ...models.PanelType) func(*Context) bool {
	return func(c *Context) bool {
		for _, t := range types {
			if c.Panel == t {
				return true
			}
		}
		return false
	}
}

// Table returns the full rule set in application order.
func Table() []Rule {
	return []Rule{
		// ---- mandatory inclusions per panel type ----
		{
			Name: "basic-mandatory", Kind: KindMandatory,
			Applies: panelIs(models.PanelBasic),
			Encode: func(c *Context, e *Encoder) error {
				m := e.Model()
				m.AddEQ("cpu-count", e.CategoryTerms(models.CategoryCPU, nil), 1)
				m.AddGE("primary-psu", primaryPSUTerms(e), 1)
				m.AddGE("display", e.CategoryTerms(models.CategoryDisplay, nil), 1)
				e.RequireRole(0, models.RoleMasterController)
				return nil
			},
		},
		{
			Name: "redundant-mandatory", Kind: KindMandatory,
			Applies: panelIs(models.PanelRedundant),
			Encode: func(c *Context, e *Encoder) error {
				m := e.Model()
				m.AddEQ("cpu-count", e.CategoryTerms(models.CategoryCPU, nil), 2)
				m.AddGE("primary-psu", primaryPSUTerms(e), 2)
				e.RequireRole(0, models.RoleMasterController)
				e.RequireRole(1, models.RoleMasterController)
				return nil
			},
		},
		{
			Name: "ndu-mandatory", Kind: KindMandatory,
			Applies: panelIs(models.PanelNDU),
			Encode: func(c *Context, e *Encoder) error {
				m := e.Model()
				m.AddEQ("cpu-count", e.CategoryTerms(models.CategoryCPU, nil), 1)
				m.AddGE("network", e.CategoryTerms(models.CategoryNetwork, nil), 1)
				m.AddGE("primary-psu", primaryPSUTerms(e), 1)
				e.RequireRole(0, models.RoleMasterController)
				return nil
			},
		},
		{
			Name: "ndu-voice-mandatory", Kind: KindMandatory,
			Applies: panelIs(models.PanelNDUVoice),
			Encode: func(c *Context, e *Encoder) error {
				m := e.Model()
				m.AddEQ("cpu-count", e.CategoryTerms(models.CategoryCPU, nil), 2)
				m.AddEQ("network", e.CategoryTerms(models.CategoryNetwork, nil), 2)
				m.AddGE("primary-psu", primaryPSUTerms(e), 2)
				e.RequireRole(0, models.RoleMasterController)
				return nil
			},
		},
		{
			Name: "transponder-mandatory", Kind: KindMandatory,
			Applies: panelIs(models.PanelTransponder),
			Encode: func(c *Context, e *Encoder) error {
				m := e.Model()
				m.AddGE("primary-psu", primaryPSUTerms(e), 1)
				// Annunciation circuits live on the host panel, not the transponder.
				terms := append(e.CategoryTerms(models.CategoryNAC, nil),
					e.CategoryTerms(models.CategoryIDNAC, nil)...)
				m.AddEQ("no-annunciation", terms, 0)
				e.RequireRole(0, models.RoleMasterController)
				return nil
			},
		},
		{
			Name: "remote-annunciator-mandatory", Kind: KindMandatory,
			Applies: func(c *Context) bool { return c.Panel.RemoteAnnunciator() },
			Encode: func(c *Context, e *Encoder) error {
				e.Model().AddGE("primary-psu", primaryPSUTerms(e), 1)
				e.RequireRole(0, models.RoleMasterController)
				return nil
			},
		},
		{
			Name: "incident-commander-reservation", Kind: KindPlacement,
			Applies: panelIs(models.PanelRemoteAnnunciatorWithIC),
			Encode: func(c *Context, e *Encoder) error {
				// The commander workstation owns the whole bay; nothing mounts there.
				e.RequireRole(1, models.RoleIncidentCommander)
				e.ForbidBay(1)
				return nil
			},
		},

		// ---- cross-cutting exclusions and ratios ----
		{
			Name: "notification-presence", Kind: KindMandatory,
			Applies: panelIs(models.PanelBasic, models.PanelNDUVoice),
			Encode: func(c *Context, e *Encoder) error {
				terms := append(e.CategoryTerms(models.CategoryNAC, nil),
					e.CategoryTerms(models.CategoryIDNAC, nil)...)
				e.Model().AddGE("nac-presence", terms, 1)
				return nil
			},
		},
		{
			Name: "dact-selection", Kind: KindExclusion,
			Applies: always,
			Encode: func(c *Context, e *Encoder) error {
				terms := []solver.Term{
					solver.T(1, e.Qty(catalog.ModelSDACT)),
					solver.T(1, e.Qty(catalog.ModelNoDACT)),
				}
				e.Model().AddEQ("dact-exactly-one", terms, 1)
				return nil
			},
		},
		{
			Name: "network-media-ratio", Kind: KindRatio,
			Applies: always,
			Encode: func(c *Context, e *Encoder) error {
				m := e.Model()
				media := e.CategoryTerms(models.CategoryNetworkMedia, nil)
				net := e.CategoryTerms(models.CategoryNetwork, nil)
				m.AddGE("media-at-least-net", append(append([]solver.Term{}, media...), scale(net, -1)...), 0)
				m.AddLE("media-at-most-2net", append(append([]solver.Term{}, media...), scale(net, -2)...), 0)
				return nil
			},
		},
		{
			Name: "microphone-support", Kind: KindPlacement,
			Applies: always,
			Encode: func(c *Context, e *Encoder) error {
				m := e.Model()
				mic := e.Sel(catalog.ModelMicrophone)
				m.AddImpliesGE("mic-needs-led-controller", mic,
					e.CategoryTerms(models.CategoryLEDSwitchController, nil), 1)
				m.AddImpliesGE("mic-needs-audio-controller", mic,
					e.CategoryTerms(models.CategoryAudioController, nil), 1)
				// The microphone mounts in the audio controller's bay.
				for _, bay := range e.Bays() {
					micIn := e.BayTerms(catalog.ModelMicrophone, bay.Index)
					audioIn := e.CategoryBayTerms(models.CategoryAudioController, bay.Index, nil)
					if len(micIn) == 0 {
						continue
					}
					m.AddLE("mic-with-audio", append(append([]solver.Term{}, micIn...), scale(audioIn, -1)...), 0)
				}
				return nil
			},
		},
		{
			Name: "phone-slot-sets", Kind: KindPlacement,
			Applies: always,
			Encode: func(c *Context, e *Encoder) error {
				m := e.Model()
				audio := e.Sel(catalog.ModelAudioController)
				mic := e.Sel(catalog.ModelMicrophone)
				for _, p := range e.ModelPlacements(catalog.ModelPhoneController) {
					switch {
					case p.Slot == 5 || p.Slot == 6:
						// Upper slot set is only legal alongside a microphone.
						m.AddLE("phone-upper-needs-mic",
							[]solver.Term{solver.T(1, p.Var), solver.T(-1, mic)}, 0)
						m.AddLE("phone-upper-needs-audio",
							[]solver.Term{solver.T(1, p.Var), solver.T(-1, audio)}, 0)
					case p.Slot == 1 || p.Slot == 2:
						// With an audio controller and a microphone the lower set is off-limits.
						m.AddLE("phone-lower-excludes-mic",
							[]solver.Term{solver.T(1, p.Var), solver.T(1, mic), solver.T(1, audio)}, 2)
					}
					if p.Bay != 1 {
						// Without an audio controller phones stay in bay 1.
						m.AddLE("phone-bay1-without-audio",
							[]solver.Term{solver.T(1, p.Var), solver.T(-1, audio)}, 0)
					}
				}
				return nil
			},
		},
		{
			Name: "zone-relay-regulation", Kind: KindRatio,
			Applies: always,
			Encode: func(c *Context, e *Encoder) error {
				m := e.Model()
				// One 25V regulator feeds up to five zone-relay modules.
				m.AddGE("regulators-cover-relays", []solver.Term{
					solver.T(models.ZoneRelaysPerRegulator, e.Qty(catalog.ModelRegulator25V)),
					solver.T(-1, e.Qty(catalog.ModelZoneRelay)),
				}, 0)
				for _, bay := range e.Bays() {
					regIn := e.BayTerms(catalog.ModelRegulator25V, bay.Index)
					psuIn := e.CategoryBayTerms(models.CategoryPowerSupply, bay.Index, nil)
					if len(regIn) == 0 {
						continue
					}
					limit := len(regIn)
					m.AddLE("regulator-with-psu",
						append(append([]solver.Term{}, regIn...), scale(psuIn, -limit)...), 0)
				}
				return nil
			},
		},
		{
			Name: "idnac-power-colocation", Kind: KindPlacement,
			Applies: always,
			Encode: func(c *Context, e *Encoder) error {
				// Authoritative reading: every bay holding an IDNAC module also
				// holds an active power supply. The looser "mounted on" reading
				// is pending product-owner confirmation.
				m := e.Model()
				for _, bay := range e.Bays() {
					idnacIn := e.CategoryBayTerms(models.CategoryIDNAC, bay.Index, nil)
					psuIn := e.CategoryBayTerms(models.CategoryPowerSupply, bay.Index, nil)
					if len(idnacIn) == 0 {
						continue
					}
					limit := len(idnacIn)
					m.AddLE("idnac-with-psu",
						append(append([]solver.Term{}, idnacIn...), scale(psuIn, -limit)...), 0)
				}
				return nil
			},
		},
		{
			Name: "led-expansion-pairing", Kind: KindPairing,
			Applies: always,
			Encode: func(c *Context, e *Encoder) error {
				m := e.Model()
				m.AddLE("expansion-at-most-primary", []solver.Term{
					solver.T(1, e.Qty(catalog.ModelLEDControllerExp)),
					solver.T(-1, e.Qty(catalog.ModelLEDController)),
				}, 0)
				// An expansion controller rides a primary in the same
				// switch-slot pair of its bay.
				for _, bay := range e.Bays() {
					for _, pair := range switchSlotPairs {
						exp := slotPairTerms(e, catalog.ModelLEDControllerExp, bay.Index, pair)
						pri := slotPairTerms(e, catalog.ModelLEDController, bay.Index, pair)
						if len(exp) == 0 {
							continue
						}
						m.AddLE("expansion-with-primary",
							append(append([]solver.Term{}, exp...), scale(pri, -1)...), 0)
					}
				}
				return nil
			},
		},
		{
			Name: "printer-interface", Kind: KindPairing,
			Applies: always,
			Encode: func(c *Context, e *Encoder) error {
				e.Model().AddImpliesGE("printer-needs-rs232", e.Sel(catalog.ModelPrinter),
					[]solver.Term{solver.T(1, e.Qty(catalog.ModelRS232))}, 1)
				return nil
			},
		},
		{
			Name: "power-supply-fans", Kind: KindPlacement,
			Applies: always,
			Encode:  encodePowerSupplyFans,
		},
		{
			Name: "loop-protocol", Kind: KindDemand,
			Applies: always,
			Encode:  encodeLoopProtocol,
		},
		{
			Name: "cpu-placement", Kind: KindPlacement,
			Applies: always,
			Encode: func(c *Context, e *Encoder) error {
				// Slot 3 only; slot 4 reservation is enforced when placement
				// variables are generated.
				e.Restrict(catalog.ModelCPU, func(bay int, plane models.Plane, block string, slot int) bool {
					return plane == models.PlaneFrontDoor && slot == 3
				})
				return nil
			},
		},
		{
			Name: "audio-controller-bay", Kind: KindPlacement,
			Applies: always,
			Encode: func(c *Context, e *Encoder) error {
				target := 1
				if c.Panel == models.PanelRedundant || c.Panel == models.PanelRemoteAnnunciatorWithIC {
					target = 2
				}
				e.Restrict(catalog.ModelAudioController, func(bay int, plane models.Plane, block string, slot int) bool {
					return bay == target && plane == models.PlaneBack && block == "AB"
				})
				if role, ok := e.Role(target, models.RoleAudioController); ok {
					e.Model().AddImpliesGE("audio-bay-role", e.Sel(catalog.ModelAudioController),
						[]solver.Term{solver.T(1, role)}, 1)
				}
				return nil
			},
		},
		{
			Name: "generation-slot-separation", Kind: KindPlacement,
			Applies: always,
			Encode: func(c *Context, e *Encoder) error {
				m := e.Model()
				for _, bay := range e.Bays() {
					for slot := 1; slot < 8; slot++ {
						legacy := e.SlotTerms(bay.Index, slot, models.GenerationLegacy)
						esNext := e.SlotTerms(bay.Index, slot+1, models.GenerationES)
						if len(legacy) > 0 && len(esNext) > 0 {
							m.AddLE("legacy-es-separation", append(append([]solver.Term{}, legacy...), esNext...), 1)
						}
						es := e.SlotTerms(bay.Index, slot, models.GenerationES)
						legacyNext := e.SlotTerms(bay.Index, slot+1, models.GenerationLegacy)
						if len(es) > 0 && len(legacyNext) > 0 {
							m.AddLE("es-legacy-separation", append(append([]solver.Term{}, es...), legacyNext...), 1)
						}
					}
				}
				return nil
			},
		},
		{
			Name: "plane-exclusivity", Kind: KindPlacement,
			Applies: always,
			Encode: func(c *Context, e *Encoder) error {
				m := e.Model()
				for _, bay := range e.Bays() {
					mezz := e.PlacementsIn(bay.Index, models.PlaneMezzanine)
					behind := e.PlacementsIn(bay.Index, models.PlaneBehindDoor)
					if len(mezz) == 0 || len(behind) == 0 {
						continue
					}
					mezzOn := m.NewBool(bayBool("mezzanine-active", bay.Index))
					behindOn := m.NewBool(bayBool("behind-door-active", bay.Index))
					for _, t := range mezz {
						m.AddLE("mezzanine-activation", []solver.Term{t, solver.T(-1, mezzOn)}, 0)
					}
					for _, t := range behind {
						m.AddLE("behind-door-activation", []solver.Term{t, solver.T(-1, behindOn)}, 0)
					}
					m.AddLE("plane-exclusive", []solver.Term{solver.T(1, mezzOn), solver.T(1, behindOn)}, 1)
				}
				return nil
			},
		},

		// ---- capacity ceilings ----
		{
			Name: "address-ceiling", Kind: KindCapacity,
			Applies: always,
			Encode: func(c *Context, e *Encoder) error {
				var terms []solver.Term
				for _, comp := range c.Catalog.All() {
					if comp.ConsumesAddress {
						terms = append(terms, solver.T(1, e.Qty(comp.Model)))
					}
				}
				e.Model().AddLE("addressed-points", terms,
					models.MaxAddressablePoints-c.Demand.AddressedDevices)
				return nil
			},
		},
		{
			Name: "loop-card-ceiling", Kind: KindCapacity,
			Applies: always,
			Encode: func(c *Context, e *Encoder) error {
				e.Model().AddLE("loop-cards",
					e.CategoryTerms(models.CategoryLoopCard, nil), models.MaxLoopCards)
				return nil
			},
		},
		{
			Name: "internal-module-ceiling", Kind: KindCapacity,
			Applies: always,
			Encode: func(c *Context, e *Encoder) error {
				terms := e.CategoryTerms(models.CategoryLoopCard, nil)
				terms = append(terms, e.CategoryTerms(models.CategoryNAC, nil)...)
				terms = append(terms, e.CategoryTerms(models.CategoryIDNAC, nil)...)
				terms = append(terms, e.CategoryTerms(models.CategoryZoneRelay, nil)...)
				e.Model().AddLE("internal-modules", terms, models.MaxInternalModules)
				return nil
			},
		},
		{
			Name: "psu-per-cabinet", Kind: KindCapacity,
			Applies: always,
			Encode: func(c *Context, e *Encoder) error {
				for _, cab := range e.Cabinets() {
					var terms []solver.Term
					for _, bay := range cab.Bays {
						terms = append(terms, e.CategoryBayTerms(models.CategoryPowerSupply, bay, nil)...)
					}
					e.Model().AddLE("psu-per-cabinet", terms, models.MaxPowerSuppliesPerCabinet)
				}
				return nil
			},
		},

		// ---- power budgets ----
		{
			Name: "alarm-current-budget", Kind: KindPower,
			Applies: always,
			Encode: func(c *Context, e *Encoder) error {
				var terms []solver.Term
				for _, comp := range c.Catalog.All() {
					w := MilliAmps(comp.AlarmCurrent)
					if comp.Primary {
						w -= MilliAmps(comp.SupplyCapacity)
					}
					if w != 0 {
						terms = append(terms, solver.T(w, e.Qty(comp.Model)))
					}
				}
				e.Model().AddLE("alarm-current", terms, 0)
				return nil
			},
		},
		{
			Name: "card-power-budget", Kind: KindPower,
			Applies: always,
			Encode: func(c *Context, e *Encoder) error {
				var terms []solver.Term
				for _, comp := range c.Catalog.All() {
					w := DeciWatts(comp.CardPowerConsumed) - DeciWatts(comp.CardPowerSupplied)
					if w != 0 {
						terms = append(terms, solver.T(w, e.Qty(comp.Model)))
					}
				}
				e.Model().AddLE("card-power", terms, 0)
				return nil
			},
		},

		// ---- demand satisfaction ----
		{
			Name: "loop-capacity-demand", Kind: KindDemand,
			Applies: func(c *Context) bool { return c.Demand.LoopDevices > 0 },
			Encode: func(c *Context, e *Encoder) error {
				terms := e.CategoryTerms(models.CategoryLoopCard, func(comp models.Component) int {
					return comp.LoopCapacity
				})
				e.Model().AddGE("loop-capacity", terms, c.Demand.LoopDevices)
				return nil
			},
		},
		{
			Name: "nac-circuit-demand", Kind: KindDemand,
			Applies: func(c *Context) bool { return c.Demand.NACCircuits > 0 },
			Encode: func(c *Context, e *Encoder) error {
				circuits := func(comp models.Component) int { return comp.NACCircuits }
				terms := append(e.CategoryTerms(models.CategoryNAC, circuits),
					e.CategoryTerms(models.CategoryIDNAC, circuits)...)
				e.Model().AddGE("nac-circuits", terms, c.Demand.NACCircuits)
				return nil
			},
		},
		{
			Name: "prefer-addressable-nac", Kind: KindDemand,
			Applies: func(c *Context) bool { return c.Prefs.PreferAddressableNAC },
			Encode: func(c *Context, e *Encoder) error {
				e.Model().AddEQ("no-conventional-nac",
					[]solver.Term{solver.T(1, e.Qty(catalog.ModelNACConventional))}, 0)
				return nil
			},
		},
		{
			Name: "voice-evacuation", Kind: KindDemand,
			Applies: func(c *Context) bool { return c.Prefs.VoiceEvacuation },
			Encode: func(c *Context, e *Encoder) error {
				m := e.Model()
				m.AddGE("audio-controller", e.CategoryTerms(models.CategoryAudioController, nil), 1)
				m.AddGE("audio-input", e.CategoryTerms(models.CategoryAudioInput, nil), 1)
				m.AddGE("audio-riser", e.CategoryTerms(models.CategoryAudioRiser, nil), 1)
				if c.Demand.SpeakerWatts > 0 {
					watts := e.CategoryTerms(models.CategoryAmplifier, func(comp models.Component) int {
						return comp.AmplifierWatts
					})
					m.AddGE("amplifier-wattage", watts, c.Demand.SpeakerWatts)
				}
				return nil
			},
		},
		{
			Name: "fire-phone-demand", Kind: KindDemand,
			Applies: func(c *Context) bool { return c.Demand.PhoneModules > 0 },
			Encode: func(c *Context, e *Encoder) error {
				m := e.Model()
				m.AddGE("phone-controllers",
					[]solver.Term{solver.T(1, e.Qty(catalog.ModelPhoneController))}, c.Demand.PhoneModules)
				m.AddGE("phone-adapter",
					[]solver.Term{solver.T(1, e.Qty(catalog.ModelPhoneAdapter))}, 1)
				return nil
			},
		},
		{
			Name: "display-preference", Kind: KindDemand,
			Applies: func(c *Context) bool { return c.Prefs.DisplayType != "" },
			Encode: func(c *Context, e *Encoder) error {
				m := e.Model()
				if c.Prefs.DisplayType == "touch_screen" {
					m.AddEQ("no-lcd", []solver.Term{solver.T(1, e.Qty(catalog.ModelLCDDisplay))}, 0)
				} else {
					m.AddEQ("no-touch", []solver.Term{solver.T(1, e.Qty(catalog.ModelTouchDisplay))}, 0)
				}
				return nil
			},
		},
		{
			Name: "network-preference", Kind: KindDemand,
			Applies: func(c *Context) bool { return c.Prefs.NetworkConnection },
			Encode: func(c *Context, e *Encoder) error {
				e.Model().AddGE("network-link", e.CategoryTerms(models.CategoryNetwork, nil), 1)
				return nil
			},
		},
		{
			Name: "audio-control-preference", Kind: KindDemand,
			Applies: func(c *Context) bool { return c.Prefs.HasAudioControl },
			Encode: func(c *Context, e *Encoder) error {
				e.Model().AddGE("audio-controls", e.CategoryTerms(models.CategoryAudioController, nil), 1)
				return nil
			},
		},
		{
			Name: "flex-amplifier-pairing", Kind: KindPairing,
			Applies: always,
			Encode: func(c *Context, e *Encoder) error {
				// TODO(hardware-eng): the one-amp vs two-amp supply pairing
				// patterns need the 4100ES amplifier placement diagram before
				// they can be asserted here.
				return nil
			},
		},
	}
}

// primaryPSUTerms counts primary power supplies.
func primaryPSUTerms(e *Encoder) []solver.Term {
	return e.CategoryTerms(models.CategoryPowerSupply, func(comp models.Component) int {
		if comp.Primary {
			return 1
		}
		return 0
	})
}

// encodePowerSupplyFans: a bay with two or more supplies fans every supply
// in it, and a backup supply always carries its own fan.
func encodePowerSupplyFans(c *Context, e *Encoder) error {
	m := e.Model()
	for _, bay := range e.Bays() {
		psuIn := e.CategoryBayTerms(models.CategoryPowerSupply, bay.Index, nil)
		if len(psuIn) == 0 {
			continue
		}
		fanIn := e.BayTerms(catalog.ModelFanKit, bay.Index)
		backupIn := e.CategoryBayTerms(models.CategoryPowerSupply, bay.Index, func(comp models.Component) bool {
			return comp.Backup
		})
		u := len(psuIn)

		multi := m.NewBool(bayBool("multi-psu", bay.Index))
		// multi = 1 iff the bay holds >= 2 supplies.
		m.AddGE("multi-psu-lower", append(append([]solver.Term{}, psuIn...), solver.T(-2, multi)), 0)
		m.AddLE("multi-psu-upper", append(append([]solver.Term{}, psuIn...), solver.T(-u, multi)), 1)
		// fans >= supplies when multi = 1: fans - supplies - u*multi >= -u.
		terms := append(append([]solver.Term{}, fanIn...), scale(psuIn, -1)...)
		terms = append(terms, solver.T(-u, multi))
		m.AddGE("fans-cover-supplies", terms, -u)

		if len(backupIn) > 0 {
			m.AddGE("fans-cover-backup",
				append(append([]solver.Term{}, fanIn...), scale(backupIn, -1)...), 0)
		}
	}
	return nil
}

// encodeLoopProtocol forbids off-protocol loop cards, pins the master loop
// controller, and requires it whenever loop devices exist.
func encodeLoopProtocol(c *Context, e *Encoder) error {
	m := e.Model()
	protocol := c.Prefs.Protocol
	if protocol == "" {
		protocol = "idnet2"
	}

	if protocol == "mx" {
		for _, model := range []string{catalog.ModelLoopIDNet2, catalog.ModelLoopIDNet2Dual, catalog.ModelMasterIDNet2} {
			m.AddEQ("off-protocol:"+model, []solver.Term{solver.T(1, e.Qty(model))}, 0)
		}
		e.Pin(catalog.ModelMasterMX, 0, models.PlaneBack, "AB", 0)
		if c.Demand.LoopDevices > 0 {
			m.AddEQ("mx-master", []solver.Term{solver.T(1, e.Qty(catalog.ModelMasterMX))}, 1)
		}
		return nil
	}

	for _, model := range []string{catalog.ModelMasterMX, catalog.ModelLoopMX} {
		m.AddEQ("off-protocol:"+model, []solver.Term{solver.T(1, e.Qty(model))}, 0)
	}
	e.Pin(catalog.ModelMasterIDNet2, 0, models.PlaneBack, "E", 0)
	if c.Demand.LoopDevices > 0 {
		m.AddEQ("idnet2-master", []solver.Term{solver.T(1, e.Qty(catalog.ModelMasterIDNet2))}, 1)
	}
	return nil
}

// switchSlotPairs are the front-door slot pairs LED/switch controllers
// mount across.
var switchSlotPairs = [][2]int{{5, 6}, {7, 8}}

// slotPairTerms sums the placement variables of one model within a bay's
// switch-slot pair.
func slotPairTerms(e *Encoder, model string, bay int, pair [2]int) []solver.Term {
	var terms []solver.Term
	for _, p := range e.ModelPlacements(model) {
		if p.Bay == bay && (p.Slot == pair[0] || p.Slot == pair[1]) {
			terms = append(terms, solver.T(1, p.Var))
		}
	}
	return terms
}

func scale(terms []solver.Term, by int) []solver.Term {
	out := make([]solver.Term, len(terms))
	for i, t := range terms {
		out[i] = solver.T(t.Coef*by, t.Var)
	}
	return out
}

func bayBool(name string, bay int) string {
	return fmt.Sprintf("%s:bay%d", name, bay)
}
