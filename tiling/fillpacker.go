// Package tiling converts a path's flattened outline into per-tile fill
// primitives and a classification of every touched tile as solid,
// alpha, or absent, via FillPacker (segment to primitive), Tiler
// (outline to fills + classification), and ObjectBuilder (the
// accumulator the two interact through).
package tiling

import "github.com/gogpu/tilebuild/gpudata"

// subpixelScale is the fixed-point scale factor: 8 fractional bits, so
// one pixel equals 256 fixed-point units.
const subpixelScale = 256

// maxFixed is the largest representable fixed-point coordinate within a
// single tile: TileWidth/Height * 256 - 1.
const maxFixed = gpudata.TileWidth*subpixelScale - 1

// PackFill converts a line segment already clipped to a single tile,
// given in tile-local pixel coordinates (0 <= coordinate < TileWidth or
// TileHeight), into a FillBatchPrimitive addressed to alphaTileIndex.
// It reports false if the segment is degenerate after fixed-point
// quantization (equal integer x endpoints contribute zero area and are
// silently culled, per the tiling contract).
func PackFill(from, to gpudata.Vec2F, alphaTileIndex uint16) (gpudata.FillBatchPrimitive, bool) {
	fromX, fromY, toX, toY, ok := quantizeFill(from, to)
	if !ok {
		return gpudata.FillBatchPrimitive{}, false
	}
	return gpudata.PackFillBatchPrimitive(fromX, fromY, toX, toY, alphaTileIndex), true
}

// quantizeFill scales a tile-local segment to 4.8 fixed point, clamped
// to the tile's extent. It reports false if the segment is degenerate
// (equal integer x endpoints contribute zero area); callers must check
// this before allocating a mask slot for the tile, since a degenerate
// fill must not by itself force a tile to be classified alpha.
func quantizeFill(from, to gpudata.Vec2F) (fromX, fromY, toX, toY uint32, ok bool) {
	fromX = quantize(from.X, gpudata.TileWidth)
	fromY = quantize(from.Y, gpudata.TileHeight)
	toX = quantize(to.X, gpudata.TileWidth)
	toY = quantize(to.Y, gpudata.TileHeight)

	if fromX == toX {
		return 0, 0, 0, 0, false
	}
	return fromX, fromY, toX, toY, true
}

// quantize scales a tile-local coordinate by 256 and clamps it to
// [0, bound*256-1].
func quantize(v float32, bound int) uint32 {
	scaled := v * subpixelScale
	if scaled < 0 {
		return 0
	}
	upperBound := float32(bound*subpixelScale - 1)
	if scaled > upperBound {
		return uint32(upperBound)
	}
	return uint32(scaled)
}
