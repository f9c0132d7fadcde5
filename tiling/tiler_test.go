package tiling

import (
	"testing"

	"github.com/gogpu/tilebuild/gpudata"
	"github.com/gogpu/tilebuild/sceneg"
)

func seg(x0, y0, x1, y1 float32) sceneg.LineSegment {
	return sceneg.LineSegment{From: gpudata.Vec2F{X: x0, Y: y0}, To: gpudata.Vec2F{X: x1, Y: y1}}
}

func squareOutline(x0, y0, x1, y1 float32) sceneg.Outline {
	return sceneg.NewOutline([]sceneg.LineSegment{
		seg(x0, y0, x1, y0),
		seg(x1, y0, x1, y1),
		seg(x1, y1, x0, y1),
		seg(x0, y1, x0, y0),
	})
}

func fullViewBox() gpudata.RectI {
	return gpudata.RectI{MinX: -1000, MinY: -1000, MaxX: 1000, MaxY: 1000}
}

// TestOpaqueSquareIsAllSolid exercises the S1 scenario: a 32x32 square
// at tile size 16 should produce exactly 4 solid tiles, no alpha
// tiles, no fills.
func TestOpaqueSquareIsAllSolid(t *testing.T) {
	outline := squareOutline(0, 0, 32, 32)
	alloc := &TileIndexAllocator{}
	tiler := NewTiler(outline, gpudata.FillRuleWinding, fullViewBox(), alloc)

	built, err := tiler.GenerateTiles()
	if err != nil {
		t.Fatalf("GenerateTiles: %v", err)
	}

	if len(built.AlphaTiles) != 0 {
		t.Errorf("expected zero alpha tiles for an axis-aligned opaque square, got %d", len(built.AlphaTiles))
	}
	if len(built.Fills) != 0 {
		t.Errorf("expected zero fills for an axis-aligned opaque square, got %d", len(built.Fills))
	}
	if len(built.SolidTiles) != 4 {
		t.Fatalf("expected 4 solid tiles, got %d: %+v", len(built.SolidTiles), built.SolidTiles)
	}

	want := map[gpudata.Vec2I]bool{
		{X: 0, Y: 0}: true, {X: 1, Y: 0}: true,
		{X: 0, Y: 1}: true, {X: 1, Y: 1}: true,
	}
	for _, c := range built.SolidTiles {
		if !want[c] {
			t.Errorf("unexpected solid tile at %v", c)
		}
		delete(want, c)
	}
	if len(want) != 0 {
		t.Errorf("missing solid tiles: %v", want)
	}
}

// TestTriangleStraddlingTilesProducesAlphaAndFills exercises the S2
// scenario at a lighter-weight assertion: the diagonal tiles must carry
// fills and be alpha tiles, and nothing is emitted fully outside the
// path's bounds.
func TestTriangleStraddlingTilesProducesAlphaAndFills(t *testing.T) {
	outline := sceneg.NewOutline([]sceneg.LineSegment{
		seg(0, 0, 31, 0),
		seg(31, 0, 0, 31),
		seg(0, 31, 0, 0),
	})
	alloc := &TileIndexAllocator{}
	tiler := NewTiler(outline, gpudata.FillRuleWinding, fullViewBox(), alloc)

	built, err := tiler.GenerateTiles()
	if err != nil {
		t.Fatalf("GenerateTiles: %v", err)
	}

	if len(built.Fills) == 0 {
		t.Fatal("expected fills along the triangle's diagonal edge")
	}

	alphaCoords := map[gpudata.Vec2I]bool{}
	for _, at := range built.AlphaTiles {
		alphaCoords[at.TileCoord] = true
	}
	if !alphaCoords[gpudata.Vec2I{X: 0, Y: 0}] && !alphaCoords[gpudata.Vec2I{X: 1, Y: 1}] {
		t.Errorf("expected at least one of the diagonal tiles to be an alpha tile, got %v", alphaCoords)
	}
	if alphaCoords[gpudata.Vec2I{X: 1, Y: 1}] {
		t.Error("tile (1,1) lies fully outside the triangle and must not appear")
	}
}

// TestAllocationUniqueness checks property 2: every alpha-tile index a
// single path allocates is unique (each tile's slot is claimed exactly
// once).
func TestAllocationUniqueness(t *testing.T) {
	outline := sceneg.NewOutline([]sceneg.LineSegment{
		seg(0, 0, 47, 0),
		seg(47, 0, 0, 47),
		seg(0, 47, 0, 0),
	})
	alloc := &TileIndexAllocator{}
	tiler := NewTiler(outline, gpudata.FillRuleWinding, fullViewBox(), alloc)

	built, err := tiler.GenerateTiles()
	if err != nil {
		t.Fatalf("GenerateTiles: %v", err)
	}

	seen := map[uint16]gpudata.Vec2I{}
	for _, at := range built.AlphaTiles {
		if prev, ok := seen[at.AlphaTileIndex]; ok {
			t.Fatalf("alpha tile index %d reused by both %v and %v", at.AlphaTileIndex, prev, at.TileCoord)
		}
		seen[at.AlphaTileIndex] = at.TileCoord
	}
}

func TestEvenOddBackdropParity(t *testing.T) {
	if isSolidBackdrop(0, gpudata.FillRuleEvenOdd) {
		t.Error("even-odd: backdrop 0 must not be solid")
	}
	if !isSolidBackdrop(1, gpudata.FillRuleEvenOdd) {
		t.Error("even-odd: backdrop 1 must be solid")
	}
	if isSolidBackdrop(2, gpudata.FillRuleEvenOdd) {
		t.Error("even-odd: backdrop 2 must not be solid")
	}
	if isSolidBackdrop(0, gpudata.FillRuleWinding) {
		t.Error("winding: backdrop 0 must not be solid")
	}
	if !isSolidBackdrop(-1, gpudata.FillRuleWinding) {
		t.Error("winding: nonzero backdrop must be solid")
	}
}
