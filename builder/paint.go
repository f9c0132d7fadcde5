package builder

import (
	"github.com/gogpu/tilebuild/gpudata"
	"github.com/gogpu/tilebuild/sceneg"
)

// PaintInfo is what the paint subsystem reports for a paint handle: the
// texture page and sampler state an emitted batch must key on, and the
// paint atlas coordinate a tile's vertices sample from.
type PaintInfo struct {
	Page     gpudata.TexturePageID
	Sampling gpudata.SamplingFlags
	AtlasUV  gpudata.Vec2F
}

// PaintResolver resolves a scene's paint handles into PaintInfo. This
// is the paint subsystem's contract with the builder: paint atlas
// layout itself is entirely outside this package, resolved by whatever
// allocated the handle in the first place.
type PaintResolver interface {
	ResolvePaint(handle sceneg.PaintHandle) PaintInfo
}

// StaticPaintResolver resolves every handle to the same fixed PaintInfo.
// Useful for tests and for scenes with a single flat-color paint atlas
// page.
type StaticPaintResolver struct {
	Info PaintInfo
}

// ResolvePaint implements PaintResolver.
func (r StaticPaintResolver) ResolvePaint(sceneg.PaintHandle) PaintInfo {
	return r.Info
}
