package sceneg

import (
	"github.com/gogpu/tilebuild/effects"
	"github.com/gogpu/tilebuild/gpudata"
)

// Scene is an immutable display list: clip paths, draw paths, and the
// ordered sequence of display items (draw ranges and render-target
// scoping markers) that reference them. A Scene is built incrementally
// with the methods below, then handed to a builder read-only — nothing
// in this package mutates a Scene after construction finishes.
type Scene struct {
	ViewBox gpudata.RectF

	ClipPaths []Path
	DrawPaths []Path

	DisplayList []DisplayItem

	renderTargetDepth int
	nextRenderTarget  RenderTargetID
}

// NewScene returns an empty scene over the given view box.
func NewScene(viewBox gpudata.RectF) *Scene {
	return &Scene{ViewBox: viewBox}
}

// AddClipPath appends a clip path and returns a handle to it for use as
// another path's PathMeta.Clip.
func (s *Scene) AddClipPath(outline Outline, meta PathMeta) ClipHandle {
	s.ClipPaths = append(s.ClipPaths, Path{Outline: outline, Meta: meta})
	return ClipHandle(len(s.ClipPaths) - 1)
}

// DrawPath appends one draw path to the scene. Consecutive DrawPath
// calls with no intervening render-target event are coalesced into a
// single DisplayItemDrawPaths range, matching the way the occlusion
// pass wants to consume them.
func (s *Scene) DrawPath(outline Outline, meta PathMeta) {
	s.DrawPaths = append(s.DrawPaths, Path{Outline: outline, Meta: meta})
	end := len(s.DrawPaths)

	if n := len(s.DisplayList); n > 0 {
		last := &s.DisplayList[n-1]
		if last.Kind == DisplayItemDrawPaths && last.DrawPathsEnd == end-1 {
			last.DrawPathsEnd = end
			return
		}
	}

	s.DisplayList = append(s.DisplayList, DisplayItem{
		Kind:           DisplayItemDrawPaths,
		DrawPathsStart: end - 1,
		DrawPathsEnd:   end,
	})
}

// PushRenderTarget opens a new offscreen layer of the given pixel size
// and returns its id, to be passed to a later DrawRenderTarget call.
// Every PushRenderTarget must be matched by exactly one PopRenderTarget
// before the scene is considered well-formed.
func (s *Scene) PushRenderTarget(size gpudata.Vec2I) RenderTargetID {
	id := s.nextRenderTarget
	s.nextRenderTarget++
	s.renderTargetDepth++
	s.DisplayList = append(s.DisplayList, DisplayItem{
		Kind:         DisplayItemPushRenderTarget,
		RenderTarget: id,
		Size:         size,
	})
	return id
}

// PopRenderTarget closes the innermost open render target.
func (s *Scene) PopRenderTarget() {
	s.renderTargetDepth--
	s.DisplayList = append(s.DisplayList, DisplayItem{Kind: DisplayItemPopRenderTarget})
}

// DrawRenderTarget composites a previously pushed-and-popped render
// target back into its parent layer with the given filter.
func (s *Scene) DrawRenderTarget(id RenderTargetID, filter effects.Filter) {
	s.DisplayList = append(s.DisplayList, DisplayItem{
		Kind:         DisplayItemDrawRenderTarget,
		RenderTarget: id,
		Effects:      filter,
	})
}

// IsBalanced reports whether every PushRenderTarget in the display list
// is matched by a PopRenderTarget, i.e. the render-target stack would
// end empty. A builder must refuse to process an unbalanced scene.
func (s *Scene) IsBalanced() bool {
	depth := 0
	for _, item := range s.DisplayList {
		switch item.Kind {
		case DisplayItemPushRenderTarget:
			depth++
		case DisplayItemPopRenderTarget:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// PathCount returns the total number of paths (clip + draw) in the
// scene, the value reported in the Start command.
func (s *Scene) PathCount() int {
	return len(s.ClipPaths) + len(s.DrawPaths)
}
