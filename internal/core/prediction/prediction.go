// Package prediction looks up the host's ball trajectory forecast.
package prediction

import (
	"sort"

	"github.com/zeusync/ballchaser/internal/core/world"
)

// Predictor returns where the ball is expected to be at an absolute game time.
type Predictor interface {
	FindSliceAtTime(gameSeconds float64) (world.PredictionSlice, bool)
}

// Table is a Predictor over slices sorted by game time.
type Table struct {
	slices []world.PredictionSlice
}

var _ Predictor = (*Table)(nil)

// NewTable copies slices and orders them by time.
func NewTable(slices []world.PredictionSlice) *Table {
	s := append([]world.PredictionSlice(nil), slices...)
	sort.SliceStable(s, func(i, j int) bool { return s[i].GameSeconds < s[j].GameSeconds })
	return &Table{slices: s}
}

func (t *Table) Len() int { return len(t.slices) }

// FindSliceAtTime returns the first slice at or after gameSeconds. Times
// outside the forecast window, like during replays when no forecast exists,
// report false.
func (t *Table) FindSliceAtTime(gameSeconds float64) (world.PredictionSlice, bool) {
	if len(t.slices) == 0 {
		return world.PredictionSlice{}, false
	}
	if gameSeconds < t.slices[0].GameSeconds || gameSeconds > t.slices[len(t.slices)-1].GameSeconds {
		return world.PredictionSlice{}, false
	}
	i := sort.Search(len(t.slices), func(i int) bool { return t.slices[i].GameSeconds >= gameSeconds })
	return t.slices[i], true
}
