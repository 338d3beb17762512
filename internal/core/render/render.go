// Package render is the debug overlay boundary. Nothing drawn here may feed
// back into decisions.
package render

import "github.com/zeusync/ballchaser/internal/core/geometry"

type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

var (
	White  = Color{255, 255, 255, 255}
	Cyan   = Color{0, 255, 255, 255}
	Green  = Color{0, 255, 0, 255}
	Yellow = Color{255, 255, 0, 255}
	Red    = Color{255, 0, 0, 255}
)

// Renderer draws world-space primitives. Calls are fire-and-forget.
type Renderer interface {
	DrawLine3D(from, to geometry.Vector3, c Color)
	DrawRect3D(at geometry.Vector3, width, height int, filled bool, c Color, centered bool)
	DrawString3D(at geometry.Vector3, scaleX, scaleY int, text string, c Color)
}

// Nop discards everything.
type Nop struct{}

var _ Renderer = Nop{}

func (Nop) DrawLine3D(geometry.Vector3, geometry.Vector3, Color) {}
func (Nop) DrawRect3D(geometry.Vector3, int, int, bool, Color, bool) {}
func (Nop) DrawString3D(geometry.Vector3, int, int, string, Color) {}
