package builder

import (
	"time"

	"github.com/gogpu/tilebuild/executor"
	"github.com/gogpu/tilebuild/gpudata"
)

// BuildOptions configures one SceneBuilder.Build call. There is no
// config-file loading here by design: a BuildOptions is a plain struct
// the caller constructs, the same way the teacher's narrow per-call
// option structs are built by their callers rather than loaded from
// disk.
type BuildOptions struct {
	// FramebufferSize is the pixel size of the final destination
	// framebuffer. Build does not read it: the Start command's bounding
	// quad comes from the scene's view box.
	FramebufferSize gpudata.Vec2I

	// Executor drives the parallel per-path tiling phase. A nil
	// Executor defaults to executor.Sequential{}.
	Executor executor.Executor

	// PaintResolver resolves paint handles for batch keys and atlas
	// UVs. A nil PaintResolver defaults to an all-zero StaticPaintResolver.
	PaintResolver PaintResolver
}

// BuildStats summarizes a finished build, returned alongside a nil
// error. build_time is informational only, per the design notes: no
// part of the protocol depends on it.
type BuildStats struct {
	BuildTime            time.Duration
	PathCount            int
	NeedsReadableFramebuffer bool
	SolidTileCount        int
	AlphaTileCount        int
	FillCount             int
}
