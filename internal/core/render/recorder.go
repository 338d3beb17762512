package render

import "github.com/zeusync/ballchaser/internal/core/geometry"

type Kind string

const (
	KindLine Kind = "line"
	KindRect Kind = "rect"
	KindText Kind = "text"
)

// Primitive is one recorded draw call in a host-friendly shape.
type Primitive struct {
	Kind     Kind              `json:"kind"`
	At       geometry.Vector3  `json:"at"`
	To       *geometry.Vector3 `json:"to,omitempty"`
	Width    int               `json:"width,omitempty"`
	Height   int               `json:"height,omitempty"`
	Filled   bool              `json:"filled,omitempty"`
	Centered bool              `json:"centered,omitempty"`
	Text     string            `json:"text,omitempty"`
	Color    Color             `json:"color"`
}

// Recorder buffers draw calls for the host to replay. It is owned by one
// agent session.
type Recorder struct {
	prims []Primitive
}

var _ Renderer = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) DrawLine3D(from, to geometry.Vector3, c Color) {
	r.prims = append(r.prims, Primitive{Kind: KindLine, At: from, To: &to, Color: c})
}

func (r *Recorder) DrawRect3D(at geometry.Vector3, width, height int, filled bool, c Color, centered bool) {
	r.prims = append(r.prims, Primitive{
		Kind: KindRect, At: at, Width: width, Height: height,
		Filled: filled, Centered: centered, Color: c,
	})
}

func (r *Recorder) DrawString3D(at geometry.Vector3, scaleX, scaleY int, text string, c Color) {
	r.prims = append(r.prims, Primitive{
		Kind: KindText, At: at, Width: scaleX, Height: scaleY, Text: text, Color: c,
	})
}

func (r *Recorder) Len() int { return len(r.prims) }

// Flush returns everything recorded since the last flush and clears the buffer.
func (r *Recorder) Flush() []Primitive {
	out := r.prims
	r.prims = nil
	return out
}
