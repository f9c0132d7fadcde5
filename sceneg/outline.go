// Package sceneg holds the immutable input model the builder consumes:
// a Scene is a flat display list of draw paths, clip paths, and
// render-target scoping markers, each path an already-flattened outline
// with its paint and compositing metadata. Nothing in this package
// mutates once a Scene is handed to a builder — paths are addressed by
// integer handle, never by back-reference, so the model has no cycles.
package sceneg

import "github.com/gogpu/tilebuild/gpudata"

// LineSegment is one already-flattened edge of an outline. Curves are
// flattened upstream of this package; an Outline only ever sees
// straight segments.
type LineSegment struct {
	From, To gpudata.Vec2F
}

// Outline is an ordered sequence of line segments describing a single
// path's geometry, plus its precomputed bounding box.
type Outline struct {
	Segments []LineSegment
	Bounds   gpudata.RectF
}

// NewOutline returns an outline over segs, computing its bounding box.
func NewOutline(segs []LineSegment) Outline {
	o := Outline{Segments: segs}
	o.Bounds = computeBounds(segs)
	return o
}

func computeBounds(segs []LineSegment) gpudata.RectF {
	if len(segs) == 0 {
		return gpudata.RectF{}
	}
	b := gpudata.RectF{
		MinX: segs[0].From.X, MaxX: segs[0].From.X,
		MinY: segs[0].From.Y, MaxY: segs[0].From.Y,
	}
	grow := func(p gpudata.Vec2F) {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	for _, s := range segs {
		grow(s.From)
		grow(s.To)
	}
	return b
}

// IsEmpty reports whether the outline has no segments.
func (o Outline) IsEmpty() bool { return len(o.Segments) == 0 }
