// Package tilebuild turns an immutable vector scene into a linear stream of
// GPU render commands for a tile-based 2D rasterizer.
//
// A [sceneg.Scene] is a display list of draw paths, clip paths, and
// render-target push/pop markers. [builder.SceneBuilder] tiles every path in
// parallel (via an [executor.Executor]), runs a two-pass occlusion culling
// step over the display list, and emits a strictly ordered command stream to
// a [gpudata.Listener]: mask fills, mask-tile and alpha-tile batches,
// solid-tile batches, and render-target scoping events.
//
// The package is organized the way the system decomposes:
//
//	gpudata   - wire formats: fill primitives, tile vertices, batches, commands
//	tilemap   - DenseTileMap, the per-path tile grid
//	sceneg    - Scene, Outline, DisplayItem: the immutable input model
//	effects   - Filter, BlendMode, and the readable-framebuffer classifier
//	tiling    - FillPacker, Tiler, ObjectBuilder: outline -> BuiltPath
//	zbuffer   - per-layer depth grid and solid-tile batch construction
//	executor  - the work-partitioning interface used for parallel tiling
//	builder   - SceneBuilder: orchestrates everything above into the command stream
//
// Rasterizing the emitted tiles, shader execution, window-system
// integration, and persisting the command stream are all out of scope: this
// package only builds the command stream, it does not execute it.
package tilebuild

import (
	"log/slog"

	"github.com/gogpu/tilebuild/internal/buildlog"
)

// SetLogger configures the logger used by the builder and its sub-packages.
// By default no log output is produced.
//
// Log levels:
//   - [slog.LevelDebug]: build start (path counts, readable-framebuffer
//     flag) and build finish (solid tile, alpha tile and fill counts)
//
// Nothing is logged at Info or Warn level; a tile index overflow is
// returned as an error from Build, not logged.
func SetLogger(l *slog.Logger) {
	buildlog.SetLogger(l)
}
