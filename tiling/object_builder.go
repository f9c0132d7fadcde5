package tiling

import (
	"github.com/gogpu/tilebuild/gpudata"
	"github.com/gogpu/tilebuild/tilemap"
)

// ObjectBuilder is the per-path accumulator a Tiler drives: it owns the
// in-progress tile map and fill vector, and exposes the operations that
// translate outline geometry into packed fills against lazily allocated
// mask slots.
type ObjectBuilder struct {
	tileMap  *tilemap.DenseTileMap[gpudata.TileObjectPrimitive]
	alloc    *TileIndexAllocator
	fillRule gpudata.FillRule
	fills    []gpudata.FillBatchPrimitive
}

// NewObjectBuilder allocates an ObjectBuilder over the given tile-space
// rectangle, with every cell initialized to the unallocated sentinel.
func NewObjectBuilder(tileRect gpudata.RectI, fillRule gpudata.FillRule, alloc *TileIndexAllocator) *ObjectBuilder {
	return &ObjectBuilder{
		tileMap:  tilemap.NewFilled(tileRect, gpudata.NewTileObjectPrimitive),
		alloc:    alloc,
		fillRule: fillRule,
	}
}

// getOrAllocateAlphaTileIndex returns tileCoord's mask-slot index,
// allocating one on first touch. The caller must have already verified
// tileCoord lies within the path's tile map.
func (ob *ObjectBuilder) getOrAllocateAlphaTileIndex(tileCoord gpudata.Vec2I) (uint16, error) {
	cell := ob.tileMap.At(tileCoord)
	return getOrAllocate(cell, ob.alloc)
}

// AddFill packs a tile-local segment and appends it to the fill vector,
// allocating tileCoord's mask slot if this is the first fill to touch
// it. A fill outside the tile map is silently dropped. A fill that
// quantizes to zero area is culled before the mask slot is allocated,
// so a degenerate fill never by itself forces a tile to be classified
// alpha.
func (ob *ObjectBuilder) AddFill(tileCoord gpudata.Vec2I, from, to gpudata.Vec2F) error {
	if !ob.tileMap.Rect.Contains(tileCoord) {
		return nil
	}
	fromX, fromY, toX, toY, ok := quantizeFill(from, to)
	if !ok {
		return nil
	}
	alphaIdx, err := ob.getOrAllocateAlphaTileIndex(tileCoord)
	if err != nil {
		return err
	}
	ob.fills = append(ob.fills, gpudata.PackFillBatchPrimitive(fromX, fromY, toX, toY, alphaIdx))
	return nil
}

// AddActiveFill emits one synthetic horizontal fill per unit of winding
// depth, spanning [leftX, rightX) at the tile row's top edge, for
// tileCoord. Endpoint order mirrors sign, the same convention used for
// ordinary edge fills: a positive unit winds right-to-left, a negative
// one left-to-right.
func (ob *ObjectBuilder) AddActiveFill(tileCoord gpudata.Vec2I, leftX, rightX float32, windingDepth int) error {
	if windingDepth == 0 {
		return nil
	}
	units := windingDepth
	sign := 1
	if units < 0 {
		sign = -1
		units = -units
	}
	for i := 0; i < units; i++ {
		from := gpudata.Vec2F{X: leftX, Y: 0}
		to := gpudata.Vec2F{X: rightX, Y: 0}
		if sign > 0 {
			// Positive winding: right-to-left.
			from, to = to, from
		}
		if err := ob.AddFill(tileCoord, from, to); err != nil {
			return err
		}
	}
	return nil
}

// SetBackdrop records the winding accumulated from edges fully to the
// left of tileCoord on its scanline. A later call for the same tile
// overwrites the earlier value.
func (ob *ObjectBuilder) SetBackdrop(tileCoord gpudata.Vec2I, backdrop int32) {
	if !ob.tileMap.Rect.Contains(tileCoord) {
		return
	}
	ob.tileMap.At(tileCoord).Backdrop = int8(clampBackdrop(backdrop))
}

func clampBackdrop(v int32) int32 {
	if v > 127 {
		return 127
	}
	if v < -128 {
		return -128
	}
	return v
}

// Finish classifies every tile in the map and returns the completed
// BuiltPath. A tile with no allocated mask slot is solid if its
// backdrop satisfies the fill rule (nonzero for winding, odd for
// even-odd), and omitted entirely otherwise; a tile with an allocated
// mask slot is always an alpha tile, regardless of its backdrop.
func (ob *ObjectBuilder) Finish() *BuiltPath {
	built := &BuiltPath{
		TileMap:  ob.tileMap,
		FillRule: ob.fillRule,
		Fills:    ob.fills,
	}

	ob.tileMap.ForEach(func(coord gpudata.Vec2I, cell gpudata.TileObjectPrimitive) {
		if cell.AlphaTileIndex != gpudata.InvalidAlphaTileIndex {
			built.AlphaTiles = append(built.AlphaTiles, MaskTileRecord{
				TileCoord:      coord,
				AlphaTileIndex: cell.AlphaTileIndex,
				Backdrop:       cell.Backdrop,
			})
			return
		}
		if isSolidBackdrop(cell.Backdrop, ob.fillRule) {
			built.SolidTiles = append(built.SolidTiles, coord)
		}
	})

	return built
}

func isSolidBackdrop(backdrop int8, rule gpudata.FillRule) bool {
	if rule == gpudata.FillRuleEvenOdd {
		return backdrop%2 != 0
	}
	return backdrop != 0
}
