package gpudata

// MaskTileVertex is one corner of a mask-tile quad, in the exact 12-byte
// wire layout the downstream vertex shader expects:
//
//	mask_u, mask_v       u16  mask-atlas UV (0..65535)
//	fill_u, fill_v       u16  fill-atlas UV (0..65535)
//	backdrop             i16  signed winding carried into this tile
//	object_index         u16  index of the owning path, for per-object uniforms
type MaskTileVertex struct {
	MaskU, MaskV uint16
	FillU, FillV uint16
	Backdrop     int16
	ObjectIndex  uint16
}

// AlphaTileVertex is one corner of an alpha-tile quad, in the exact
// 16-byte wire layout the downstream vertex shader expects:
//
//	tile_x, tile_y       i16  tile position in tile-grid coordinates
//	color_u, color_v     u16  paint-atlas UV (0..65535)
//	mask_u, mask_v       u16  mask-atlas UV (0..65535)
//	object_index         u16  index of the owning path
//	opacity              u8   path opacity, 0..255
//	pad                  u8   alignment padding
type AlphaTileVertex struct {
	TileX, TileY   int16
	ColorU, ColorV uint16
	MaskU, MaskV   uint16
	ObjectIndex    uint16
	Opacity        uint8
	Pad            uint8
}

// MaskTile is one tile's worth of mask geometry: four corner vertices
// and the fill rule it must be rendered with (winding and even-odd
// tiles are drawn in separate passes since they resolve coverage
// differently).
type MaskTile struct {
	Vertices [4]MaskTileVertex
	FillRule FillRule
}

// AlphaTile is one tile's worth of paint-sampled geometry: four corner
// vertices plus the tile-grid coordinate, texture page, and sampling
// flags it was batched under.
type AlphaTile struct {
	Vertices  [4]AlphaTileVertex
	TileCoord Vec2I
	Page      TexturePageID
	Sampling  SamplingFlags
}

// SolidTile is a tile fully covered by a path: no mask sampling needed,
// only a paint lookup.
type SolidTile struct {
	TileCoord Vec2I
	Page      TexturePageID
	Sampling  SamplingFlags
}

// CalculateMaskUV returns the mask-atlas UV, scaled to the 0-65535
// range the packed vertex format uses, for a global mask-slot index and
// a tile-local fractional offset in [0,1]x[0,1].
func CalculateMaskUV(tileIndex uint16, fracX, fracY float32) (u, v uint16) {
	const scale = 65535.0 / MaskTilesAcross
	slotU := float32(int(tileIndex) % MaskTilesAcross)
	slotV := float32(int(tileIndex) / MaskTilesAcross)
	return uint16((slotU + fracX) * scale), uint16((slotV + fracY) * scale)
}
