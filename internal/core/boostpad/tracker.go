// Package boostpad keeps the live state of the arena's boost pads.
package boostpad

import (
	"math"

	"github.com/zeusync/ballchaser/internal/core/geometry"
	"github.com/zeusync/ballchaser/internal/core/world"
)

type Pad struct {
	Location    geometry.Vector3
	IsFullBoost bool
	IsActive    bool
	// Timer is the time in seconds since the pad was picked up.
	Timer float64
}

// Tracker is refreshed once per tick and never drives decisions on its own.
type Tracker interface {
	Initialize(info world.FieldInfo)
	Update(snap *world.Snapshot)
	Pads() []Pad
}

var _ Tracker = (*PadTracker)(nil)

// PadTracker is the in-memory Tracker. It is owned by a single agent and is
// not safe for concurrent use.
type PadTracker struct {
	pads        []Pad
	initialized bool
}

func NewPadTracker() *PadTracker {
	return &PadTracker{}
}

// Initialize records pad positions from the static field description.
// Pads start inactive until the first Update.
func (t *PadTracker) Initialize(info world.FieldInfo) {
	t.pads = make([]Pad, len(info.BoostPads))
	for i, p := range info.BoostPads {
		t.pads[i] = Pad{Location: p.Location, IsFullBoost: p.IsFullBoost}
	}
	t.initialized = true
}

// Update copies pad status from the snapshot. Entries beyond the known pads
// are ignored.
func (t *PadTracker) Update(snap *world.Snapshot) {
	if snap == nil {
		return
	}
	n := min(len(t.pads), len(snap.BoostPads))
	for i := 0; i < n; i++ {
		t.pads[i].IsActive = snap.BoostPads[i].IsActive
		t.pads[i].Timer = snap.BoostPads[i].Timer
	}
}

func (t *PadTracker) Initialized() bool { return t.initialized }

// Pads returns a copy of every tracked pad.
func (t *PadTracker) Pads() []Pad {
	return append([]Pad(nil), t.pads...)
}

// FullBoosts returns a copy of the large pads only.
func (t *PadTracker) FullBoosts() []Pad {
	out := make([]Pad, 0, 6)
	for _, p := range t.pads {
		if p.IsFullBoost {
			out = append(out, p)
		}
	}
	return out
}

// NearestActive finds the closest active pad to loc on the ground plane.
func (t *PadTracker) NearestActive(loc geometry.Vector3, fullOnly bool) (Pad, bool) {
	best, bestDist, found := Pad{}, math.Inf(1), false
	for _, p := range t.pads {
		if !p.IsActive || (fullOnly && !p.IsFullBoost) {
			continue
		}
		if d := p.Location.FlatDist(loc); d < bestDist {
			best, bestDist, found = p, d, true
		}
	}
	return best, found
}
