// Package gpudata defines the wire types emitted by the scene builder: the
// packed fill primitive, the mask/alpha tile vertex quads, the solid and
// alpha tile batches, their keys, and the RenderCommand stream itself.
//
// Layout follows §6 of the scene-to-GPU-commands contract: the packed
// binary formats here must reproduce the documented byte layout exactly,
// since a downstream vertex shader decodes them.
package gpudata

import "github.com/gogpu/gputypes"

// TileWidth and TileHeight are the tile side length in pixels (T in the
// design). Both must stay equal; callers that need a single tile size
// constant should use TileSize.
const (
	TileWidth  = 16
	TileHeight = 16
	TileSize   = TileWidth
)

// MaskTilesAcross is the number of mask-atlas slots per row (M in the
// design): slot index i maps to atlas coordinate (i mod M, i div M).
const MaskTilesAcross = 256

// InvalidAlphaTileIndex is the sentinel "not allocated" value for a
// TileObjectPrimitive's AlphaTileIndex.
const InvalidAlphaTileIndex uint16 = 0xFFFF

// TexturePageID is an opaque handle to a paint-atlas texture page, owned by
// the (out-of-scope) paint subsystem. The builder only ever compares these
// for batch-key equality; it never resolves them to a physical texture.
type TexturePageID uint32

// TexturePage describes the pixel format of a texture page addressed by a
// TexturePageID. Format is supplied by the paint subsystem; the builder
// never allocates pages itself, but threads the format through so a
// downstream consumer can validate sampler compatibility without a second
// round trip to the paint subsystem.
type TexturePage struct {
	ID     TexturePageID
	Format gputypes.TextureFormat
}

// SamplingFlags mirrors the GPU sampler state a batch was built against.
// Two tiles can only share a batch if their sampling flags are identical.
type SamplingFlags uint8

const (
	SamplingRepeatU    SamplingFlags = 1 << 0
	SamplingRepeatV    SamplingFlags = 1 << 1
	SamplingNearestMin SamplingFlags = 1 << 2
	SamplingNearestMag SamplingFlags = 1 << 3
)

// FillRule selects the rule used to resolve overlapping winding into
// coverage.
type FillRule uint8

const (
	FillRuleWinding FillRule = iota
	FillRuleEvenOdd
)

// String returns a human-readable fill rule name.
func (r FillRule) String() string {
	if r == FillRuleEvenOdd {
		return "EvenOdd"
	}
	return "Winding"
}

// Vec2I is an integer 2D point, used for tile coordinates.
type Vec2I struct {
	X, Y int32
}

// Vec2F is a float 2D point, used for sub-pixel geometry.
type Vec2F struct {
	X, Y float32
}

// RectF is an axis-aligned float rectangle in scene space.
type RectF struct {
	MinX, MinY, MaxX, MaxY float32
}

// RectI is an axis-aligned integer rectangle in tile space.
type RectI struct {
	MinX, MinY, MaxX, MaxY int32
}

// Width returns the tile-rect width.
func (r RectI) Width() int32 { return r.MaxX - r.MinX }

// Height returns the tile-rect height.
func (r RectI) Height() int32 { return r.MaxY - r.MinY }

// Contains reports whether coord lies within the rect.
func (r RectI) Contains(coord Vec2I) bool {
	return coord.X >= r.MinX && coord.X < r.MaxX && coord.Y >= r.MinY && coord.Y < r.MaxY
}

// TileObjectPrimitive is the per-tile record an ObjectBuilder accumulates
// for one path (§3).
type TileObjectPrimitive struct {
	// Backdrop is the signed winding accumulated from edges fully to the
	// left of this tile on its scanline.
	Backdrop int8

	// AlphaTileIndex is the global mask-slot index, or
	// InvalidAlphaTileIndex if none has been allocated yet.
	AlphaTileIndex uint16
}

// NewTileObjectPrimitive returns a tile record with no alpha tile
// allocated.
func NewTileObjectPrimitive() TileObjectPrimitive {
	return TileObjectPrimitive{AlphaTileIndex: InvalidAlphaTileIndex}
}
