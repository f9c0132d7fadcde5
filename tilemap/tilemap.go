// Package tilemap implements DenseTileMap, the rectangular per-tile
// state grid a path's tiling pass accumulates into: a flat row-major
// slice over a tile-space rectangle, addressed by bounds-checked or
// unchecked coordinate-to-index conversion.
//
// The shape is the same one a canvas-partitioning tile grid uses —
// tiles stored flat, row-major, indexed by ty*width+tx — generalized
// here from fixed-size pixel tiles covering a whole canvas to a
// variable-size tile-space rectangle covering one path's bounds.
package tilemap

import "github.com/gogpu/tilebuild/gpudata"

// DenseTileMap is a rectangular array of T, indexed by tile coordinates
// over a tile-rect. The tile-rect need not start at (0, 0): it is the
// path's bounding box rounded outward to tile boundaries, so coordinates
// are translated relative to Rect.MinX/Rect.MinY internally.
type DenseTileMap[T any] struct {
	Rect  gpudata.RectI
	cells []T
	cols  int32
	rows  int32
}

// New allocates a DenseTileMap covering rect, with every cell set to
// the zero value of T.
func New[T any](rect gpudata.RectI) *DenseTileMap[T] {
	cols := rect.Width()
	rows := rect.Height()
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &DenseTileMap[T]{
		Rect:  rect,
		cells: make([]T, cols*rows),
		cols:  cols,
		rows:  rows,
	}
}

// NewFilled allocates a DenseTileMap covering rect, with every cell
// initialized by calling fill.
func NewFilled[T any](rect gpudata.RectI, fill func() T) *DenseTileMap[T] {
	m := New[T](rect)
	for i := range m.cells {
		m.cells[i] = fill()
	}
	return m
}

// Cols returns the tile-rect width in tiles.
func (m *DenseTileMap[T]) Cols() int32 { return m.cols }

// Rows returns the tile-rect height in tiles.
func (m *DenseTileMap[T]) Rows() int32 { return m.rows }

// Len returns the total number of cells.
func (m *DenseTileMap[T]) Len() int { return len(m.cells) }

// CoordsToIndex converts a tile coordinate to a flat slice index,
// reporting false if coord falls outside the tile-rect.
func (m *DenseTileMap[T]) CoordsToIndex(coord gpudata.Vec2I) (int, bool) {
	if !m.Rect.Contains(coord) {
		return 0, false
	}
	return m.CoordsToIndexUnchecked(coord), true
}

// CoordsToIndexUnchecked converts a tile coordinate to a flat slice
// index without bounds checking. The caller must ensure coord lies
// within Rect; an out-of-range coord yields an index that either
// panics on slice access or silently addresses a different cell (an x
// past the end of a row wraps into the next row).
func (m *DenseTileMap[T]) CoordsToIndexUnchecked(coord gpudata.Vec2I) int {
	localX := coord.X - m.Rect.MinX
	localY := coord.Y - m.Rect.MinY
	return int(localY*m.cols + localX)
}

// IndexToCoords converts a flat slice index back to a tile coordinate.
func (m *DenseTileMap[T]) IndexToCoords(index int) gpudata.Vec2I {
	if m.cols == 0 {
		return gpudata.Vec2I{X: m.Rect.MinX, Y: m.Rect.MinY}
	}
	localX := int32(index) % m.cols
	localY := int32(index) / m.cols
	return gpudata.Vec2I{X: m.Rect.MinX + localX, Y: m.Rect.MinY + localY}
}

// Get returns the cell at coord and whether coord was in bounds.
func (m *DenseTileMap[T]) Get(coord gpudata.Vec2I) (T, bool) {
	idx, ok := m.CoordsToIndex(coord)
	if !ok {
		var zero T
		return zero, false
	}
	return m.cells[idx], true
}

// Set writes the cell at coord, reporting whether coord was in bounds.
func (m *DenseTileMap[T]) Set(coord gpudata.Vec2I, value T) bool {
	idx, ok := m.CoordsToIndex(coord)
	if !ok {
		return false
	}
	m.cells[idx] = value
	return true
}

// At returns a pointer to the cell at the unchecked index, for callers
// that already validated coord is in Rect and want to mutate in place.
func (m *DenseTileMap[T]) At(coord gpudata.Vec2I) *T {
	return &m.cells[m.CoordsToIndexUnchecked(coord)]
}

// ForEach calls f for every cell in row-major order with its tile
// coordinate.
func (m *DenseTileMap[T]) ForEach(f func(coord gpudata.Vec2I, value T)) {
	for i, v := range m.cells {
		f(m.IndexToCoords(i), v)
	}
}
