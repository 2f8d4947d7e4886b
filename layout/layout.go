// ABOUTME: Physical frame builder: cabinets, bays, planes, and mount points
// ABOUTME: Produces the arena-indexed placement space the encoder works over

package layout

import (
	"fmt"

	"github.com/panel-tools/fireplan/models"
)

// Physical dimensions of the 4100ES enclosure line.
const (
	BaysPerCabinet = 3
	MaxCabinets    = 8
	MaxBays        = 24
	BlocksPerPlane = 8 // blocks A-H on back, mezzanine, and behind-door planes
	SlotsPerDoor   = 8 // front-door slots 1-8
)

// blockNames are the block addresses on block-addressed planes.
var blockNames = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// blockPlanes are the planes addressed by blocks rather than slots.
var blockPlanes = []models.Plane{models.PlaneBack, models.PlaneMezzanine, models.PlaneBehindDoor}

// MountPoint is one occupiable position: a (cabinet, bay, plane, block-or-slot)
// cell. Index is the point's position in Frame.Points and is what constraint
// variables reference.
type MountPoint struct {
	Index   int
	Cabinet int
	Bay     int // global bay index across the frame
	Plane   models.Plane
	Block   string // set on block-addressed planes
	Slot    int    // set on the front door
}

// Bay is one equipment bay with its role eligibility.
type Bay struct {
	Index         int // global bay index
	Cabinet       int
	PositionInCab int
	EligibleRoles []models.BayRole
}

// Cabinet is one enclosure holding up to BaysPerCabinet bays.
type Cabinet struct {
	Index int
	Door  models.DoorType
	Bays  []int // global bay indices
}

// Frame is the full placement arena for one panel: every bay and every
// enumerable mount point, with bay role eligibility resolved for the panel
// type. Frames are immutable once built.
type Frame struct {
	PanelType models.PanelType
	Cabinets  []Cabinet
	Bays      []Bay
	Points    []MountPoint

	pointsByBay map[int][]int    // bay -> point indices
	pointIndex  map[pointKey]int // exact cell -> point index
}

type pointKey struct {
	bay   int
	plane models.Plane
	block string
	slot  int
}

// Build constructs the frame for a panel type. maxCabinets must be 1..8;
// each cabinet contributes three bays and carries the requested door style.
// Bay 0 is the master-controller bay; bay 1 is eligible for the
// audio-controller role, or is reserved for the incident commander on that
// annunciator variant.
func Build(panelType models.PanelType, maxCabinets int, door models.DoorType) (*Frame, error) {
	if maxCabinets < 1 || maxCabinets > MaxCabinets {
		return nil, fmt.Errorf("cabinet count must be between 1 and %d, got %d", MaxCabinets, maxCabinets)
	}
	if door == "" {
		door = models.DoorSolid
	}

	f := &Frame{
		PanelType:   panelType,
		pointsByBay: make(map[int][]int),
		pointIndex:  make(map[pointKey]int),
	}

	for cab := 0; cab < maxCabinets; cab++ {
		cabinet := Cabinet{Index: cab, Door: door}
		for pos := 0; pos < BaysPerCabinet; pos++ {
			bayIdx := len(f.Bays)
			bay := Bay{
				Index:         bayIdx,
				Cabinet:       cab,
				PositionInCab: pos,
				EligibleRoles: eligibleRoles(panelType, bayIdx),
			}
			f.Bays = append(f.Bays, bay)
			cabinet.Bays = append(cabinet.Bays, bayIdx)
			f.addBayPoints(cab, bayIdx)
		}
		f.Cabinets = append(f.Cabinets, cabinet)
	}

	return f, nil
}

func (f *Frame) addBayPoints(cab, bay int) {
	add := func(p MountPoint) {
		p.Index = len(f.Points)
		p.Cabinet = cab
		p.Bay = bay
		f.Points = append(f.Points, p)
		f.pointsByBay[bay] = append(f.pointsByBay[bay], p.Index)
		f.pointIndex[pointKey{bay: bay, plane: p.Plane, block: p.Block, slot: p.Slot}] = p.Index
	}

	for _, plane := range blockPlanes {
		for _, block := range blockNames {
			add(MountPoint{Plane: plane, Block: block})
		}
	}
	for slot := 1; slot <= SlotsPerDoor; slot++ {
		add(MountPoint{Plane: models.PlaneFrontDoor, Slot: slot})
	}
}

// eligibleRoles resolves which roles a bay may take for a panel type.
func eligibleRoles(panelType models.PanelType, bay int) []models.BayRole {
	switch bay {
	case 0:
		return []models.BayRole{models.RoleMasterController}
	case 1:
		roles := []models.BayRole{models.RoleExpansion}
		if panelType == models.PanelRedundant {
			roles = append(roles, models.RoleMasterController)
		}
		if panelType == models.PanelRemoteAnnunciatorWithIC {
			roles = append(roles, models.RoleIncidentCommander)
		} else {
			roles = append(roles, models.RoleAudioController)
		}
		return roles
	default:
		return []models.BayRole{models.RoleExpansion, models.RoleAudioController}
	}
}

// BayPoints returns the mount point indices within a bay.
func (f *Frame) BayPoints(bay int) []int {
	return f.pointsByBay[bay]
}

// PointAt finds the mount point index for an exact cell. The second return
// is false when the cell does not exist in this frame.
func (f *Frame) PointAt(bay int, plane models.Plane, block string, slot int) (int, bool) {
	idx, ok := f.pointIndex[pointKey{bay: bay, plane: plane, block: block, slot: slot}]
	return idx, ok
}

// BlockCells expands a block anchor to the individual block cells it covers:
// "AB" anchored in a bay covers blocks A and B. The second return is false
// when any covered cell does not exist.
func (f *Frame) BlockCells(bay int, plane models.Plane, anchor string) ([]int, bool) {
	cells := make([]int, 0, len(anchor))
	for _, letter := range anchor {
		idx, ok := f.PointAt(bay, plane, string(letter), 0)
		if !ok {
			return nil, false
		}
		cells = append(cells, idx)
	}
	return cells, true
}

// Eligible reports whether a bay may take a role.
func (f *Frame) Eligible(bay int, role models.BayRole) bool {
	if bay < 0 || bay >= len(f.Bays) {
		return false
	}
	for _, r := range f.Bays[bay].EligibleRoles {
		if r == role {
			return true
		}
	}
	return false
}
