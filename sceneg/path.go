package sceneg

import (
	"github.com/gogpu/tilebuild/effects"
	"github.com/gogpu/tilebuild/gpudata"
)

// PaintHandle is an opaque reference into the paint subsystem, resolved
// by the downstream renderer. This package never inspects what it
// points to.
type PaintHandle uint32

// ClipHandle references a path in a Scene's clip-path list by index.
// NoClip means the path carrying it is unclipped.
type ClipHandle int32

// NoClip is the sentinel ClipHandle meaning "no clip path".
const NoClip ClipHandle = -1

// Valid reports whether h references a real clip path.
func (h ClipHandle) Valid() bool { return h != NoClip }

// PathMeta is the compositing metadata every path in a Scene carries
// alongside its outline.
type PathMeta struct {
	FillRule  gpudata.FillRule
	BlendMode effects.BlendMode
	// Opacity is 0..255, matching the packed opacity byte the alpha
	// tile vertex format carries downstream.
	Opacity uint8
	Paint   PaintHandle
	Clip    ClipHandle
}

// Path is one entry in a Scene's clip-path or draw-path list: a
// flattened outline plus its compositing metadata.
type Path struct {
	Outline Outline
	Meta    PathMeta
}
