// Package zbuffer implements the per-layer occlusion grid the
// SceneBuilder's culling pass uses: one ZBuffer per render-target
// layer, recording the highest display-list depth that wrote a solid
// tile at each tile coordinate, plus the paint metadata needed to batch
// the surviving solid tiles.
package zbuffer

import (
	"github.com/gogpu/tilebuild/gpudata"
	"github.com/gogpu/tilebuild/tilemap"
)

// DepthMetadata is the paint-batching information recorded alongside a
// solid tile's depth: the key build_solid_tiles groups by.
type DepthMetadata struct {
	Page     gpudata.TexturePageID
	Sampling gpudata.SamplingFlags
}

type depthEntry struct {
	depth    uint32
	metadata DepthMetadata
	written  bool
}

// ZBuffer is a DenseTileMap-shaped grid of (depth, DepthMetadata). A
// fresh ZBuffer has every cell unwritten; update raises a cell's depth
// only when the incoming depth is higher than what is already stored,
// so later (higher-depth) writes always win per the display-list order
// invariant.
type ZBuffer struct {
	grid *tilemap.DenseTileMap[depthEntry]
}

// New allocates a ZBuffer covering the given tile-space rectangle.
func New(rect gpudata.RectI) *ZBuffer {
	return &ZBuffer{grid: tilemap.New[depthEntry](rect)}
}

// Update raises the stored depth at every coordinate in solidTiles to
// depth, recording metadata alongside it. Coordinates outside the
// buffer's rect are silently ignored, matching the tiling contract's
// silent-cull policy for out-of-bounds tiles.
func (z *ZBuffer) Update(solidTiles []gpudata.Vec2I, depth uint32, metadata DepthMetadata) {
	for _, coord := range solidTiles {
		if _, ok := z.grid.CoordsToIndex(coord); !ok {
			continue
		}
		entry := z.grid.At(coord)
		if !entry.written || depth > entry.depth {
			entry.depth = depth
			entry.metadata = metadata
			entry.written = true
		}
	}
}

// Test reports whether a tile at coord written at the given depth is
// visible, i.e. not occluded by a solid tile written at a strictly
// higher depth. A coordinate outside the buffer's rect, or one never
// written, is always visible (nothing has claimed it yet).
func (z *ZBuffer) Test(coord gpudata.Vec2I, depth uint32) bool {
	entry, ok := z.grid.Get(coord)
	if !ok || !entry.written {
		return true
	}
	return depth >= entry.depth
}

// Rect returns the tile-space rectangle this ZBuffer covers.
func (z *ZBuffer) Rect() gpudata.RectI { return z.grid.Rect }

// BuildSolidTiles groups every written cell into SolidTileBatches keyed
// by (texture page, sampling flags), the way build_solid_tiles collapses
// the final Z-buffer state into batches ready to send to the listener.
// Batches are returned in the order their key is first met in a
// row-major walk of the grid.
func (z *ZBuffer) BuildSolidTiles() []gpudata.SolidTileBatch {
	byKey := map[solidKey]*gpudata.SolidTileBatch{}
	var order []solidKey

	z.grid.ForEach(func(coord gpudata.Vec2I, entry depthEntry) {
		if !entry.written {
			return
		}
		key := solidKey{page: entry.metadata.Page, sampling: entry.metadata.Sampling}
		batch, ok := byKey[key]
		if !ok {
			batch = &gpudata.SolidTileBatch{Key: gpudata.SolidTileBatchKey{
				Page:     entry.metadata.Page,
				Sampling: entry.metadata.Sampling,
			}}
			byKey[key] = batch
			order = append(order, key)
		}
		batch.Tiles = append(batch.Tiles, gpudata.SolidTile{
			TileCoord: coord,
			Page:      entry.metadata.Page,
			Sampling:  entry.metadata.Sampling,
		})
	})

	out := make([]gpudata.SolidTileBatch, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	return out
}

type solidKey struct {
	page     gpudata.TexturePageID
	sampling gpudata.SamplingFlags
}
