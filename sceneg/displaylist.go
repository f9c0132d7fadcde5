package sceneg

import (
	"github.com/gogpu/tilebuild/effects"
	"github.com/gogpu/tilebuild/gpudata"
)

// RenderTargetID identifies a render target allocated by an earlier
// PushRenderTarget item and later composited back by a DrawRenderTarget
// item. Allocation itself is opaque to this package.
type RenderTargetID uint32

// DisplayItemKind discriminates the concrete DisplayItem variant.
type DisplayItemKind uint8

const (
	DisplayItemDrawPaths DisplayItemKind = iota
	DisplayItemPushRenderTarget
	DisplayItemPopRenderTarget
	DisplayItemDrawRenderTarget
)

// DisplayItem is one entry in a Scene's display list. Only the fields
// relevant to Kind are meaningful; see the DisplayItemKind constants.
type DisplayItem struct {
	Kind DisplayItemKind

	// DrawPathsStart/DrawPathsEnd bound a half-open range into
	// Scene.DrawPaths, valid when Kind == DisplayItemDrawPaths.
	DrawPathsStart, DrawPathsEnd int

	// RenderTarget is valid when Kind is PushRenderTarget or
	// DrawRenderTarget.
	RenderTarget RenderTargetID

	// Size is the render target's pixel size, valid when Kind ==
	// DisplayItemPushRenderTarget.
	Size gpudata.Vec2I

	// Effects is the filter applied while compositing the render
	// target back into its parent, valid when Kind ==
	// DisplayItemDrawRenderTarget.
	Effects effects.Filter
}
