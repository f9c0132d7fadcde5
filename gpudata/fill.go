package gpudata

import "encoding/binary"

// FillBatchPrimitive is the packed 8-byte fill primitive consumed by the
// mask-fill compute/fragment stage. Two pixel-grid bytes carry the whole
// pixel parts of the segment's endpoints (4 bits each, nibble-packed);
// four subpixel bytes carry the 4.8 fixed-point fractional parts; the
// final two bytes are the little-endian mask-tile index the fill belongs
// to.
//
// Layout (byte offsets):
//
//	0: (from_x_pixel & 0xF) | (from_y_pixel & 0xF) << 4
//	1: (to_x_pixel   & 0xF) | (to_y_pixel   & 0xF) << 4
//	2: from_x subpixel (0-255, 4.8 fixed point numerator over 256)
//	3: from_y subpixel
//	4: to_x subpixel
//	5: to_y subpixel
//	6-7: alpha tile index, little-endian u16
type FillBatchPrimitive [8]byte

// PackFillBatchPrimitive builds the packed primitive from tile-local 4.8
// fixed-point coordinates already clamped to [0, TileWidth*256-1] and
// [0, TileHeight*256-1] by the caller.
func PackFillBatchPrimitive(fromX, fromY, toX, toY uint32, alphaTileIndex uint16) FillBatchPrimitive {
	var p FillBatchPrimitive

	fromXPixel := byte((fromX >> 8) & 0xF)
	fromYPixel := byte((fromY >> 8) & 0xF)
	toXPixel := byte((toX >> 8) & 0xF)
	toYPixel := byte((toY >> 8) & 0xF)

	p[0] = fromXPixel | fromYPixel<<4
	p[1] = toXPixel | toYPixel<<4
	p[2] = byte(fromX & 0xFF)
	p[3] = byte(fromY & 0xFF)
	p[4] = byte(toX & 0xFF)
	p[5] = byte(toY & 0xFF)
	binary.LittleEndian.PutUint16(p[6:8], alphaTileIndex)

	return p
}

// AlphaTileIndex returns the mask-tile index this fill targets.
func (p FillBatchPrimitive) AlphaTileIndex() uint16 {
	return binary.LittleEndian.Uint16(p[6:8])
}

// FromPixel returns the whole-pixel (x, y) of the fill's start point,
// tile-local.
func (p FillBatchPrimitive) FromPixel() (x, y byte) {
	return p[0] & 0xF, (p[0] >> 4) & 0xF
}

// ToPixel returns the whole-pixel (x, y) of the fill's end point,
// tile-local.
func (p FillBatchPrimitive) ToPixel() (x, y byte) {
	return p[1] & 0xF, (p[1] >> 4) & 0xF
}
