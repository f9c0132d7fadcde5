package tiling

import (
	"github.com/gogpu/tilebuild/gpudata"
	"github.com/gogpu/tilebuild/tilemap"
)

// MaskTileRecord names one tile an ObjectBuilder allocated a mask slot
// for: its tile-grid coordinate, the global slot index fills targeting
// it were packed against, and the winding backdrop carried into the
// tile from edges fully to its left.
type MaskTileRecord struct {
	TileCoord      gpudata.Vec2I
	AlphaTileIndex uint16
	Backdrop       int8
}

// BuiltPath is the output of tiling a single path: every tile its
// outline touched, classified into solid tiles (fully covered, no mask
// needed), alpha tiles (partially covered, rendered through a mask
// slot), and the fill primitives that paint those mask slots.
//
// A BuiltPath is produced once by a Tiler, consumed once by the
// occlusion pass, and then discarded — nothing holds a BuiltPath for
// the lifetime of the build.
type BuiltPath struct {
	TileMap    *tilemap.DenseTileMap[gpudata.TileObjectPrimitive]
	FillRule   gpudata.FillRule
	SolidTiles []gpudata.Vec2I
	AlphaTiles []MaskTileRecord
	Fills      []gpudata.FillBatchPrimitive
}
