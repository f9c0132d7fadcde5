package tiling

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/gogpu/tilebuild/gpudata"
)

// ErrTileIndexOverflow is returned when a tile-index allocator's
// monotonic counter would exceed the 16-bit range a tile index is
// packed into. The build that triggered it fails: SceneBuilder.Build
// returns it without sending Finish, and commands already sent before
// the overflow are not withdrawn.
var ErrTileIndexOverflow = fmt.Errorf("tilebuild/tiling: tile index overflow (exceeds %d slots)", math.MaxUint16)

// TileIndexAllocator hands out globally unique tile-slot indices. One
// instance backs all draw-path tiling for a single build (mask-atlas
// slots for alpha tiles); a second, independent instance backs clip-path
// tiling, keeping the two numbering spaces apart even though both are
// ultimately addresses into the same physical mask atlas.
//
// Relaxed ordering is sufficient: uniqueness is the only requirement,
// since consumers only read an allocated index after the parallel
// tiling phase has finished.
type TileIndexAllocator struct {
	next atomic.Uint32
}

// Next atomically claims the next index, or ErrTileIndexOverflow once
// the 16-bit range is exhausted. Index 0xFFFF is never handed out: it
// is gpudata.InvalidAlphaTileIndex, the "unallocated" sentinel.
func (a *TileIndexAllocator) Next() (uint16, error) {
	v := a.next.Add(1) - 1
	if v >= math.MaxUint16 {
		return 0, ErrTileIndexOverflow
	}
	return uint16(v), nil
}

// Count returns the number of indices handed out so far. Safe to call
// only after all allocation has finished.
func (a *TileIndexAllocator) Count() uint32 {
	return a.next.Load()
}

// getOrAllocate consults cell's AlphaTileIndex; if it is the
// "unallocated" sentinel, it claims the next index from alloc and
// writes it back. Per the tiling contract, a tile's index is assigned
// exactly once, on the first fill that touches it.
func getOrAllocate(cell *gpudata.TileObjectPrimitive, alloc *TileIndexAllocator) (uint16, error) {
	if cell.AlphaTileIndex != gpudata.InvalidAlphaTileIndex {
		return cell.AlphaTileIndex, nil
	}
	idx, err := alloc.Next()
	if err != nil {
		return 0, err
	}
	cell.AlphaTileIndex = idx
	return idx, nil
}
