// Package builder implements SceneBuilder, the orchestration core that
// ties path tiling, occlusion culling, and batch assembly together into
// the command stream a Listener consumes.
package builder

import (
	"time"

	"github.com/gogpu/tilebuild/executor"
	"github.com/gogpu/tilebuild/gpudata"
	"github.com/gogpu/tilebuild/internal/buildlog"
	"github.com/gogpu/tilebuild/sceneg"
	"github.com/gogpu/tilebuild/tiling"
)

// SceneBuilder orchestrates one build of a Scene: parallel per-path
// tiling, then a strictly single-threaded occlusion pass and emission
// of the resulting command stream to a Listener.
type SceneBuilder struct {
	scene    *sceneg.Scene
	listener gpudata.Listener

	alphaTileAlloc tiling.TileIndexAllocator
	maskTileAlloc  tiling.TileIndexAllocator
}

// New returns a SceneBuilder for scene, sending commands to listener.
func New(scene *sceneg.Scene, listener gpudata.Listener) *SceneBuilder {
	return &SceneBuilder{scene: scene, listener: listener}
}

// Build runs the full scene-to-commands pipeline and returns summary
// statistics. A non-nil error means no command stream was emitted, or
// an incomplete one was (callers must discard the frame); Build never
// sends Finish on an error path.
func (b *SceneBuilder) Build(opts BuildOptions) (BuildStats, error) {
	start := time.Now()

	if !b.scene.IsBalanced() {
		return BuildStats{}, ErrUnbalancedRenderTarget
	}

	ex := opts.Executor
	if ex == nil {
		ex = executor.Sequential{}
	}
	resolver := opts.PaintResolver
	if resolver == nil {
		resolver = StaticPaintResolver{}
	}

	needsReadback := needsReadableFramebuffer(b.scene)
	viewBox := viewBoxTileRect(b.scene.ViewBox)

	buildlog.Logger().Debug("tilebuild: starting build",
		"clip_paths", len(b.scene.ClipPaths),
		"draw_paths", len(b.scene.DrawPaths),
		"needs_readable_framebuffer", needsReadback,
	)

	b.listener.Send(gpudata.StartCommand{
		BoundingQuad:             boundingQuad(b.scene.ViewBox),
		PathCount:                uint32(b.scene.PathCount()),
		NeedsReadableFramebuffer: needsReadback,
	})

	clipBuilt, clipErrs := b.tilePaths(ex, b.scene.ClipPaths, viewBox, nil, &b.maskTileAlloc)
	if err := firstErr(clipErrs); err != nil {
		return BuildStats{}, err
	}

	drawBuilt, drawErrs := b.tilePaths(ex, b.scene.DrawPaths, viewBox, clipBuilt, &b.alphaTileAlloc)
	if err := firstErr(drawErrs); err != nil {
		return BuildStats{}, err
	}

	b.listener.Send(gpudata.FlushFillsCommand{})

	culled, err := runOcclusionPass(b.scene, drawBuilt, viewBox, resolver)
	if err != nil {
		return BuildStats{}, err
	}

	if len(culled.maskWindingTiles) > 0 {
		b.listener.Send(gpudata.RenderMaskTilesCommand{
			Tiles:    culled.maskWindingTiles,
			FillRule: gpudata.FillRuleWinding,
		})
	}
	if len(culled.maskEvenOddTiles) > 0 {
		b.listener.Send(gpudata.RenderMaskTilesCommand{
			Tiles:    culled.maskEvenOddTiles,
			FillRule: gpudata.FillRuleEvenOdd,
		})
	}

	stats := BuildStats{
		PathCount:                b.scene.PathCount(),
		NeedsReadableFramebuffer: needsReadback,
	}

	for _, batch := range culled.rootSolidBatches {
		stats.SolidTileCount += len(batch.Tiles)
		b.listener.Send(gpudata.DrawSolidTilesCommand{Batch: batch})
	}
	for _, item := range culled.items {
		switch item.kind {
		case culledItemPush:
			b.listener.Send(gpudata.PushRenderTargetCommand{Page: item.page, Size: item.size})
		case culledItemPop:
			b.listener.Send(gpudata.PopRenderTargetCommand{})
		case culledItemSolidBatches:
			for _, batch := range item.solidBatches {
				stats.SolidTileCount += len(batch.Tiles)
				b.listener.Send(gpudata.DrawSolidTilesCommand{Batch: batch})
			}
		case culledItemAlphaBatch:
			stats.AlphaTileCount += len(item.alphaBatch.Tiles)
			b.listener.Send(gpudata.DrawAlphaTilesCommand{Batch: item.alphaBatch})
		}
	}

	for _, bp := range drawBuilt {
		if bp != nil {
			stats.FillCount += len(bp.Fills)
		}
	}

	buildTime := time.Since(start)
	stats.BuildTime = buildTime
	b.listener.Send(gpudata.FinishCommand{BuildTime: buildTime})

	buildlog.Logger().Debug("tilebuild: finished build",
		"solid_tiles", stats.SolidTileCount,
		"alpha_tiles", stats.AlphaTileCount,
		"fills", stats.FillCount,
	)

	return stats, nil
}

// tilePaths builds tiles for every path in paths, in parallel via ex,
// sending AddFills for each as it finishes. clipBuilt, when non-nil, is
// the already-built clip-path set a draw path's Clip handle resolves
// against.
func (b *SceneBuilder) tilePaths(ex executor.Executor, paths []sceneg.Path, viewBox gpudata.RectI, clipBuilt []*tiling.BuiltPath, alloc *tiling.TileIndexAllocator) ([]*tiling.BuiltPath, []error) {
	errs := make([]error, len(paths))
	built := executor.BuildVector(ex, len(paths), func(i int) *tiling.BuiltPath {
		path := paths[i]
		pathViewBox := viewBox
		if clipBuilt != nil && path.Meta.Clip.Valid() && int(path.Meta.Clip) < len(clipBuilt) {
			if cb := clipBuilt[path.Meta.Clip]; cb != nil {
				pathViewBox = intersectRect(viewBox, cb.TileMap.Rect)
			}
		}

		tiler := tiling.NewTiler(path.Outline, path.Meta.FillRule, pathViewBox, alloc)
		bp, err := tiler.GenerateTiles()
		if err != nil {
			errs[i] = err
			return nil
		}
		if len(bp.Fills) > 0 {
			b.listener.Send(gpudata.AddFillsCommand{Fills: bp.Fills})
		}
		return bp
	})
	return built, errs
}

func firstErr(errs []error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

func intersectRect(a, b gpudata.RectI) gpudata.RectI {
	r := gpudata.RectI{
		MinX: maxI32(a.MinX, b.MinX),
		MinY: maxI32(a.MinY, b.MinY),
		MaxX: minI32(a.MaxX, b.MaxX),
		MaxY: minI32(a.MaxY, b.MaxY),
	}
	if r.MaxX < r.MinX {
		r.MaxX = r.MinX
	}
	if r.MaxY < r.MinY {
		r.MaxY = r.MinY
	}
	return r
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func viewBoxTileRect(box gpudata.RectF) gpudata.RectI {
	const t = gpudata.TileWidth
	return gpudata.RectI{
		MinX: int32(box.MinX) / t,
		MinY: int32(box.MinY) / t,
		MaxX: int32(box.MaxX)/t + 1,
		MaxY: int32(box.MaxY)/t + 1,
	}
}

func boundingQuad(box gpudata.RectF) [4]gpudata.Vec2F {
	return [4]gpudata.Vec2F{
		{X: box.MinX, Y: box.MinY},
		{X: box.MaxX, Y: box.MinY},
		{X: box.MaxX, Y: box.MaxY},
		{X: box.MinX, Y: box.MaxY},
	}
}
