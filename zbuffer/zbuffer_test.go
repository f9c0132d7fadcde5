package zbuffer

import (
	"testing"

	"github.com/gogpu/tilebuild/gpudata"
)

func TestUpdateRaisesDepthMonotonically(t *testing.T) {
	z := New(gpudata.RectI{MaxX: 4, MaxY: 4})
	coord := gpudata.Vec2I{X: 1, Y: 1}

	z.Update([]gpudata.Vec2I{coord}, 1, DepthMetadata{Page: 1})
	if !z.Test(coord, 1) {
		t.Fatal("tile written at depth 1 must be visible to a test at the same depth")
	}
	if !z.Test(coord, 2) {
		t.Fatal("tile written at depth 1 must be visible to a higher-depth test")
	}

	z.Update([]gpudata.Vec2I{coord}, 5, DepthMetadata{Page: 2})
	if z.Test(coord, 2) {
		t.Fatal("depth must have been raised to 5 by the second update")
	}

	// A lower depth write must not un-occlude an already-higher entry.
	z.Update([]gpudata.Vec2I{coord}, 3, DepthMetadata{Page: 3})
	if z.Test(coord, 4) {
		t.Fatal("a lower-depth update must not lower the stored occlusion depth")
	}
}

func TestUnwrittenTileAlwaysVisible(t *testing.T) {
	z := New(gpudata.RectI{MaxX: 4, MaxY: 4})
	if !z.Test(gpudata.Vec2I{X: 0, Y: 0}, 0) {
		t.Fatal("an untouched tile must be visible")
	}
}

func TestBuildSolidTilesGroupsByKey(t *testing.T) {
	z := New(gpudata.RectI{MaxX: 4, MaxY: 4})
	z.Update([]gpudata.Vec2I{{X: 0, Y: 0}, {X: 1, Y: 0}}, 1, DepthMetadata{Page: 1, Sampling: 0})
	z.Update([]gpudata.Vec2I{{X: 0, Y: 1}}, 1, DepthMetadata{Page: 2, Sampling: 0})

	batches := z.BuildSolidTiles()
	if len(batches) != 2 {
		t.Fatalf("expected 2 batches (one per page), got %d", len(batches))
	}
	total := 0
	for _, b := range batches {
		total += len(b.Tiles)
		for _, tile := range b.Tiles {
			if tile.Page != b.Key.Page {
				t.Errorf("tile page %v does not match batch key page %v", tile.Page, b.Key.Page)
			}
		}
	}
	if total != 3 {
		t.Fatalf("expected 3 total solid tiles across batches, got %d", total)
	}
}
