// Command tilebuilddemo builds a small demo scene and prints the
// resulting command stream's shape: how many of each command kind the
// builder emitted, and the final tile/fill counts.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gogpu/tilebuild/builder"
	"github.com/gogpu/tilebuild/effects"
	"github.com/gogpu/tilebuild/gpudata"
	"github.com/gogpu/tilebuild/sceneg"
)

func main() {
	var (
		width  = flag.Int("width", 800, "view box width in pixels")
		height = flag.Int("height", 600, "view box height in pixels")
	)
	flag.Parse()

	scene := buildDemoScene(float32(*width), float32(*height))

	counts := map[gpudata.CommandKind]int{}
	listener := gpudata.ListenerFunc(func(cmd gpudata.RenderCommand) {
		counts[cmd.Kind()]++
	})

	stats, err := builder.New(scene, listener).Build(builder.BuildOptions{
		FramebufferSize: gpudata.Vec2I{X: int32(*width), Y: int32(*height)},
	})
	if err != nil {
		log.Fatalf("build failed: %v", err)
	}

	fmt.Printf("build time: %s\n", stats.BuildTime)
	fmt.Printf("paths: %d  fills: %d  solid tiles: %d  alpha tiles: %d\n",
		stats.PathCount, stats.FillCount, stats.SolidTileCount, stats.AlphaTileCount)
	fmt.Printf("needs readable framebuffer: %v\n", stats.NeedsReadableFramebuffer)

	for kind := gpudata.KindStart; kind <= gpudata.KindFinish; kind++ {
		if n := counts[kind]; n > 0 {
			fmt.Printf("  %-16s x%d\n", kind, n)
		}
	}
}

// buildDemoScene assembles a small scene: an opaque background square,
// a triangle straddling tile boundaries, and a render target composited
// back over both with a plain source-over composite filter.
func buildDemoScene(width, height float32) *sceneg.Scene {
	scene := sceneg.NewScene(gpudata.RectF{MinX: 0, MinY: 0, MaxX: width, MaxY: height})

	scene.DrawPath(rectangle(0, 0, width, height), sceneg.PathMeta{
		FillRule:  gpudata.FillRuleWinding,
		BlendMode: effects.BlendSourceOver,
		Opacity:   255,
		Clip:      sceneg.NoClip,
	})

	scene.DrawPath(triangle(40, 40, width-40, 120), sceneg.PathMeta{
		FillRule:  gpudata.FillRuleWinding,
		BlendMode: effects.BlendSourceOver,
		Opacity:   200,
		Clip:      sceneg.NoClip,
	})

	rt := scene.PushRenderTarget(gpudata.Vec2I{X: int32(width), Y: int32(height)})
	scene.DrawPath(rectangle(width/4, height/4, 3*width/4, 3*height/4), sceneg.PathMeta{
		FillRule:  gpudata.FillRuleWinding,
		BlendMode: effects.BlendSourceOver,
		Opacity:   255,
		Clip:      sceneg.NoClip,
	})
	scene.PopRenderTarget()
	scene.DrawRenderTarget(rt, effects.NewCompositeFilter(effects.CompositeSrcOver))

	return scene
}

func rectangle(minX, minY, maxX, maxY float32) sceneg.Outline {
	return sceneg.NewOutline([]sceneg.LineSegment{
		{From: gpudata.Vec2F{X: minX, Y: minY}, To: gpudata.Vec2F{X: minX, Y: maxY}},
		{From: gpudata.Vec2F{X: minX, Y: maxY}, To: gpudata.Vec2F{X: maxX, Y: maxY}},
		{From: gpudata.Vec2F{X: maxX, Y: maxY}, To: gpudata.Vec2F{X: maxX, Y: minY}},
		{From: gpudata.Vec2F{X: maxX, Y: minY}, To: gpudata.Vec2F{X: minX, Y: minY}},
	})
}

func triangle(minX, minY, maxX, peakY float32) sceneg.Outline {
	midX := (minX + maxX) / 2
	return sceneg.NewOutline([]sceneg.LineSegment{
		{From: gpudata.Vec2F{X: midX, Y: minY}, To: gpudata.Vec2F{X: maxX, Y: peakY}},
		{From: gpudata.Vec2F{X: maxX, Y: peakY}, To: gpudata.Vec2F{X: minX, Y: peakY}},
		{From: gpudata.Vec2F{X: minX, Y: peakY}, To: gpudata.Vec2F{X: midX, Y: minY}},
	})
}
