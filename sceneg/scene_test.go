package sceneg

import (
	"testing"

	"github.com/gogpu/tilebuild/effects"
	"github.com/gogpu/tilebuild/gpudata"
)

func square(x0, y0, x1, y1 float32) Outline {
	return NewOutline([]LineSegment{
		{From: gpudata.Vec2F{X: x0, Y: y0}, To: gpudata.Vec2F{X: x1, Y: y0}},
		{From: gpudata.Vec2F{X: x1, Y: y0}, To: gpudata.Vec2F{X: x1, Y: y1}},
		{From: gpudata.Vec2F{X: x1, Y: y1}, To: gpudata.Vec2F{X: x0, Y: y1}},
		{From: gpudata.Vec2F{X: x0, Y: y1}, To: gpudata.Vec2F{X: x0, Y: y0}},
	})
}

func TestDrawPathCoalescesAdjacentRange(t *testing.T) {
	s := NewScene(gpudata.RectF{MaxX: 64, MaxY: 64})
	meta := PathMeta{BlendMode: effects.BlendSourceOver, Opacity: 255, Clip: NoClip}

	s.DrawPath(square(0, 0, 16, 16), meta)
	s.DrawPath(square(16, 0, 32, 16), meta)
	s.DrawPath(square(0, 16, 16, 32), meta)

	if len(s.DisplayList) != 1 {
		t.Fatalf("expected 3 consecutive draws to coalesce into 1 display item, got %d", len(s.DisplayList))
	}
	item := s.DisplayList[0]
	if item.Kind != DisplayItemDrawPaths || item.DrawPathsStart != 0 || item.DrawPathsEnd != 3 {
		t.Fatalf("unexpected coalesced range: %+v", item)
	}
}

func TestRenderTargetSplitsDrawRanges(t *testing.T) {
	s := NewScene(gpudata.RectF{MaxX: 64, MaxY: 64})
	meta := PathMeta{BlendMode: effects.BlendSourceOver, Opacity: 255, Clip: NoClip}

	s.DrawPath(square(0, 0, 16, 16), meta)
	id := s.PushRenderTarget(gpudata.Vec2I{X: 64, Y: 64})
	s.DrawPath(square(0, 0, 16, 16), meta)
	s.PopRenderTarget()
	s.DrawRenderTarget(id, effects.NewBlurFilter(effects.BlurDirectionX, 4, 2))

	wantKinds := []DisplayItemKind{
		DisplayItemDrawPaths,
		DisplayItemPushRenderTarget,
		DisplayItemDrawPaths,
		DisplayItemPopRenderTarget,
		DisplayItemDrawRenderTarget,
	}
	if len(s.DisplayList) != len(wantKinds) {
		t.Fatalf("want %d display items, got %d", len(wantKinds), len(s.DisplayList))
	}
	for i, want := range wantKinds {
		if s.DisplayList[i].Kind != want {
			t.Errorf("item %d: want kind %d, got %d", i, want, s.DisplayList[i].Kind)
		}
	}
	if !s.IsBalanced() {
		t.Fatal("expected balanced render target stack")
	}
}

func TestIsBalancedDetectsImbalance(t *testing.T) {
	s := NewScene(gpudata.RectF{})
	s.PushRenderTarget(gpudata.Vec2I{X: 1, Y: 1})
	if s.IsBalanced() {
		t.Fatal("expected unbalanced scene with unmatched push")
	}

	s2 := NewScene(gpudata.RectF{})
	s2.PopRenderTarget()
	if s2.IsBalanced() {
		t.Fatal("expected unbalanced scene with unmatched pop")
	}
}

func TestClipHandleSentinel(t *testing.T) {
	if NoClip.Valid() {
		t.Fatal("NoClip must not be valid")
	}
	s := NewScene(gpudata.RectF{})
	h := s.AddClipPath(square(0, 0, 8, 8), PathMeta{Clip: NoClip})
	if !h.Valid() {
		t.Fatal("handle to a real clip path must be valid")
	}
}
