package builder

import (
	"testing"

	"github.com/gogpu/tilebuild/effects"
	"github.com/gogpu/tilebuild/gpudata"
	"github.com/gogpu/tilebuild/sceneg"
)

func square(minX, minY, maxX, maxY float32) sceneg.Outline {
	return sceneg.NewOutline([]sceneg.LineSegment{
		{From: gpudata.Vec2F{X: minX, Y: minY}, To: gpudata.Vec2F{X: minX, Y: maxY}},
		{From: gpudata.Vec2F{X: minX, Y: maxY}, To: gpudata.Vec2F{X: maxX, Y: maxY}},
		{From: gpudata.Vec2F{X: maxX, Y: maxY}, To: gpudata.Vec2F{X: maxX, Y: minY}},
		{From: gpudata.Vec2F{X: maxX, Y: minY}, To: gpudata.Vec2F{X: minX, Y: minY}},
	})
}

func opaqueMeta() sceneg.PathMeta {
	return sceneg.PathMeta{
		FillRule:  gpudata.FillRuleWinding,
		BlendMode: effects.BlendSourceOver,
		Opacity:   255,
		Clip:      sceneg.NoClip,
	}
}

// collectingListener records every command it is sent, in order.
type collectingListener struct {
	commands []gpudata.RenderCommand
}

func (l *collectingListener) Send(cmd gpudata.RenderCommand) {
	l.commands = append(l.commands, cmd)
}

func (l *collectingListener) kinds() []gpudata.CommandKind {
	out := make([]gpudata.CommandKind, len(l.commands))
	for i, c := range l.commands {
		out[i] = c.Kind()
	}
	return out
}

// S1: a single opaque square aligned to tile boundaries produces only
// solid tiles, no fills, no mask tiles.
func TestBuildOpaqueSquareProducesOnlySolidTiles(t *testing.T) {
	scene := sceneg.NewScene(gpudata.RectF{MinX: 0, MinY: 0, MaxX: 32, MaxY: 32})
	scene.DrawPath(square(0, 0, 32, 32), opaqueMeta())

	listener := &collectingListener{}
	stats, err := builderWith(scene, listener).Build(BuildOptions{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if stats.FillCount != 0 {
		t.Errorf("FillCount = %d, want 0", stats.FillCount)
	}
	if stats.SolidTileCount != 4 {
		t.Errorf("SolidTileCount = %d, want 4", stats.SolidTileCount)
	}

	for _, cmd := range listener.commands {
		if cmd.Kind() == gpudata.KindRenderMaskTiles {
			t.Errorf("unexpected RenderMaskTiles command for a fully opaque path")
		}
	}
}

// S2: a triangle straddling a tile boundary produces both fills and
// alpha tiles.
func TestBuildStraddlingTriangleProducesFillsAndAlphaTiles(t *testing.T) {
	scene := sceneg.NewScene(gpudata.RectF{MinX: 0, MinY: 0, MaxX: 32, MaxY: 32})
	tri := sceneg.NewOutline([]sceneg.LineSegment{
		{From: gpudata.Vec2F{X: 4, Y: 4}, To: gpudata.Vec2F{X: 28, Y: 12}},
		{From: gpudata.Vec2F{X: 28, Y: 12}, To: gpudata.Vec2F{X: 4, Y: 20}},
		{From: gpudata.Vec2F{X: 4, Y: 20}, To: gpudata.Vec2F{X: 4, Y: 4}},
	})
	scene.DrawPath(tri, opaqueMeta())

	listener := &collectingListener{}
	stats, err := builderWith(scene, listener).Build(BuildOptions{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if stats.FillCount == 0 {
		t.Errorf("FillCount = 0, want > 0 for a straddling triangle")
	}
	if stats.AlphaTileCount == 0 {
		t.Errorf("AlphaTileCount = 0, want > 0 for a straddling triangle")
	}
}

// An unbalanced render-target stack must be rejected before any
// command is sent.
func TestBuildRejectsUnbalancedRenderTargets(t *testing.T) {
	scene := sceneg.NewScene(gpudata.RectF{MinX: 0, MinY: 0, MaxX: 32, MaxY: 32})
	scene.PushRenderTarget(gpudata.Vec2I{X: 32, Y: 32})
	scene.DrawPath(square(0, 0, 32, 32), opaqueMeta())
	// no matching PopRenderTarget

	listener := &collectingListener{}
	_, err := builderWith(scene, listener).Build(BuildOptions{})
	if err != ErrUnbalancedRenderTarget {
		t.Fatalf("err = %v, want ErrUnbalancedRenderTarget", err)
	}
	if len(listener.commands) != 0 {
		t.Errorf("expected no commands sent on a rejected build, got %d", len(listener.commands))
	}
}

// A render target pushed, drawn into, and popped produces Push/Pop
// commands bracketing its own solid-tile batches, nested inside the
// root command stream.
func TestBuildPushPopRenderTargetNesting(t *testing.T) {
	scene := sceneg.NewScene(gpudata.RectF{MinX: 0, MinY: 0, MaxX: 32, MaxY: 32})
	rt := scene.PushRenderTarget(gpudata.Vec2I{X: 32, Y: 32})
	scene.DrawPath(square(0, 0, 32, 32), opaqueMeta())
	scene.PopRenderTarget()
	scene.DrawRenderTarget(rt, effects.NewCompositeFilter(effects.CompositeSrcOver))

	listener := &collectingListener{}
	_, err := builderWith(scene, listener).Build(BuildOptions{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var sawPush, sawPop bool
	for _, cmd := range listener.commands {
		switch cmd.Kind() {
		case gpudata.KindPushRenderTarget:
			sawPush = true
		case gpudata.KindPopRenderTarget:
			if !sawPush {
				t.Fatalf("PopRenderTarget before PushRenderTarget")
			}
			sawPop = true
		}
	}
	if !sawPush || !sawPop {
		t.Fatalf("expected a matching Push/Pop pair, sawPush=%v sawPop=%v", sawPush, sawPop)
	}
}

// A blend mode that needs a readable framebuffer must be reported on
// the Start command.
func TestBuildReportsNeedsReadableFramebuffer(t *testing.T) {
	scene := sceneg.NewScene(gpudata.RectF{MinX: 0, MinY: 0, MaxX: 32, MaxY: 32})
	meta := opaqueMeta()
	meta.BlendMode = effects.BlendMultiply
	scene.DrawPath(square(0, 0, 32, 32), meta)

	listener := &collectingListener{}
	stats, err := builderWith(scene, listener).Build(BuildOptions{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !stats.NeedsReadableFramebuffer {
		t.Errorf("NeedsReadableFramebuffer = false, want true for Multiply blend mode")
	}
	start, ok := listener.commands[0].(gpudata.StartCommand)
	if !ok {
		t.Fatalf("first command is %T, want StartCommand", listener.commands[0])
	}
	if !start.NeedsReadableFramebuffer {
		t.Errorf("StartCommand.NeedsReadableFramebuffer = false, want true")
	}
}

// The command stream always opens with Start and closes with Finish.
func TestBuildCommandStreamBrackets(t *testing.T) {
	scene := sceneg.NewScene(gpudata.RectF{MinX: 0, MinY: 0, MaxX: 32, MaxY: 32})
	scene.DrawPath(square(0, 0, 32, 32), opaqueMeta())

	listener := &collectingListener{}
	if _, err := builderWith(scene, listener).Build(BuildOptions{}); err != nil {
		t.Fatalf("Build: %v", err)
	}
	kinds := listener.kinds()
	if len(kinds) == 0 || kinds[0] != gpudata.KindStart {
		t.Fatalf("first command kind = %v, want Start", kinds)
	}
	if kinds[len(kinds)-1] != gpudata.KindFinish {
		t.Fatalf("last command kind = %v, want Finish", kinds[len(kinds)-1])
	}
}

func builderWith(scene *sceneg.Scene, listener gpudata.Listener) *SceneBuilder {
	return New(scene, listener)
}
