package builder

import (
	"github.com/gogpu/tilebuild/effects"
	"github.com/gogpu/tilebuild/gpudata"
	"github.com/gogpu/tilebuild/sceneg"
	"github.com/gogpu/tilebuild/tiling"
	"github.com/gogpu/tilebuild/zbuffer"
)

// culledItemKind discriminates a culledResult item the way
// gpudata.CommandKind discriminates a RenderCommand, but at the
// occlusion pass's intermediate granularity rather than the final wire
// one.
type culledItemKind uint8

const (
	culledItemPush culledItemKind = iota
	culledItemPop
	culledItemSolidBatches
	culledItemAlphaBatch
)

// culledItem is one entry the occlusion pass's replay produces, in
// display-list order, ready to translate 1:1 into RenderCommands.
type culledItem struct {
	kind culledItemKind

	// page and size are valid when kind == culledItemPush.
	page gpudata.TexturePageID
	size gpudata.Vec2I

	// solidBatches is valid when kind == culledItemSolidBatches.
	solidBatches []gpudata.SolidTileBatch

	// alphaBatch is valid when kind == culledItemAlphaBatch.
	alphaBatch gpudata.AlphaTileBatch
}

// culledResult is everything the occlusion pass produces from one
// scene's built paths: the root layer's surviving solid tiles (emitted
// first, ahead of the rest of the display list), the mask geometry
// every surviving alpha tile needs rendered into the mask atlas, and
// the replayed display list itself.
type culledResult struct {
	rootSolidBatches []gpudata.SolidTileBatch
	maskWindingTiles []gpudata.MaskTile
	maskEvenOddTiles []gpudata.MaskTile

	items []culledItem
}

// runOcclusionPass runs the two-pass Z-buffer algorithm over a built
// scene: Pass A walks the display list populating one ZBuffer per
// render-target layer with the depth each solid tile was written at;
// Pass B walks it again, testing every candidate tile against its
// layer's finished ZBuffer and keeping only what survived, assembling
// the batches the command stream will carry.
//
// drawBuilt must be parallel to scene.DrawPaths: drawBuilt[i] is path
// i's tiling result, or nil if that path's tiling failed (already
// reported as an error by the caller, so its depth slot is skipped
// here without contributing tiles).
func runOcclusionPass(scene *sceneg.Scene, drawBuilt []*tiling.BuiltPath, viewBox gpudata.RectI, resolver PaintResolver) (*culledResult, error) {
	root := zbuffer.New(viewBox)

	layers := []*zbuffer.ZBuffer{root}
	pushedLayers := []*zbuffer.ZBuffer{}
	depth := uint32(1)

	for _, item := range scene.DisplayList {
		switch item.Kind {
		case sceneg.DisplayItemDrawPaths:
			top := layers[len(layers)-1]
			for i := item.DrawPathsStart; i < item.DrawPathsEnd; i++ {
				depth++
				bp := drawBuilt[i]
				if bp == nil {
					continue
				}
				info := resolver.ResolvePaint(scene.DrawPaths[i].Meta.Paint)
				top.Update(bp.SolidTiles, depth, zbuffer.DepthMetadata{
					Page:     info.Page,
					Sampling: info.Sampling,
				})
			}
		case sceneg.DisplayItemPushRenderTarget:
			layer := zbuffer.New(viewBox)
			layers = append(layers, layer)
			pushedLayers = append(pushedLayers, layer)
		case sceneg.DisplayItemPopRenderTarget:
			if len(layers) <= 1 {
				return nil, ErrUnbalancedRenderTarget
			}
			layers = layers[:len(layers)-1]
		case sceneg.DisplayItemDrawRenderTarget:
			// Compositing a render target back into its parent
			// advances depth like any other draw, but writes no
			// solid tiles of its own: the child layer already
			// resolved its own occlusion independently, and this
			// layer's Z-buffer has no notion of the composited
			// texture's coverage shape.
			depth++
		}
	}
	if len(layers) != 1 {
		return nil, ErrUnbalancedRenderTarget
	}

	result := &culledResult{rootSolidBatches: root.BuildSolidTiles()}

	depth = 1
	layers = []*zbuffer.ZBuffer{root}
	pushCursor := 0
	hasOpenAlphaBatch := false
	var openAlphaBatchKey gpudata.AlphaTileBatchKey
	openAlphaBatchIdx := -1

	appendMaskTile := func(rule gpudata.FillRule, mt gpudata.MaskTile) {
		if rule == gpudata.FillRuleEvenOdd {
			result.maskEvenOddTiles = append(result.maskEvenOddTiles, mt)
		} else {
			result.maskWindingTiles = append(result.maskWindingTiles, mt)
		}
	}

	for _, item := range scene.DisplayList {
		switch item.Kind {
		case sceneg.DisplayItemDrawPaths:
			top := layers[len(layers)-1]
			for i := item.DrawPathsStart; i < item.DrawPathsEnd; i++ {
				depth++
				bp := drawBuilt[i]
				if bp == nil {
					continue
				}
				path := scene.DrawPaths[i]
				info := resolver.ResolvePaint(path.Meta.Paint)
				objectIndex := uint16(i)

				for _, mt := range bp.AlphaTiles {
					appendMaskTile(path.Meta.FillRule, buildMaskTile(mt, path.Meta.FillRule, objectIndex))

					if !top.Test(mt.TileCoord, depth) {
						continue
					}

					key := gpudata.AlphaTileBatchKey{
						Page:      info.Page,
						BlendMode: path.Meta.BlendMode,
						Sampling:  info.Sampling,
					}
					if !hasOpenAlphaBatch || openAlphaBatchKey != key || effects.NeedsReadableFramebuffer(key.BlendMode) {
						result.items = append(result.items, culledItem{
							kind:       culledItemAlphaBatch,
							alphaBatch: gpudata.AlphaTileBatch{Key: key},
						})
						openAlphaBatchIdx = len(result.items) - 1
						openAlphaBatchKey = key
						hasOpenAlphaBatch = true
					}

					tile := gpudata.AlphaTile{
						Vertices:  buildAlphaTileVertices(mt, path.Meta, info, objectIndex),
						TileCoord: mt.TileCoord,
						Page:      info.Page,
						Sampling:  info.Sampling,
					}
					batch := &result.items[openAlphaBatchIdx].alphaBatch
					batch.Tiles = append(batch.Tiles, tile)
				}
			}

		case sceneg.DisplayItemPushRenderTarget:
			result.items = append(result.items, culledItem{
				kind: culledItemPush,
				page: gpudata.TexturePageID(item.RenderTarget),
				size: item.Size,
			})
			layer := pushedLayers[pushCursor]
			pushCursor++
			result.items = append(result.items, culledItem{
				kind:         culledItemSolidBatches,
				solidBatches: layer.BuildSolidTiles(),
			})
			layers = append(layers, layer)
			hasOpenAlphaBatch = false

		case sceneg.DisplayItemPopRenderTarget:
			layers = layers[:len(layers)-1]
			result.items = append(result.items, culledItem{kind: culledItemPop})
			hasOpenAlphaBatch = false

		case sceneg.DisplayItemDrawRenderTarget:
			depth++
			top := layers[len(layers)-1]
			rect := top.Rect()
			var tiles []gpudata.SolidTile
			for y := rect.MinY; y < rect.MaxY; y++ {
				for x := rect.MinX; x < rect.MaxX; x++ {
					coord := gpudata.Vec2I{X: x, Y: y}
					if top.Test(coord, depth) {
						tiles = append(tiles, gpudata.SolidTile{
							TileCoord: coord,
							Page:      gpudata.TexturePageID(item.RenderTarget),
						})
					}
				}
			}
			result.items = append(result.items, culledItem{
				kind: culledItemSolidBatches,
				solidBatches: []gpudata.SolidTileBatch{{
					Key: gpudata.SolidTileBatchKey{
						Page:   gpudata.TexturePageID(item.RenderTarget),
						Filter: item.Effects,
					},
					Tiles: tiles,
				}},
			})
			hasOpenAlphaBatch = false
		}
	}

	return result, nil
}

// quadCornerOffsets is the (x, y) offset of each of a tile quad's four
// corners, in upper-left, upper-right, lower-left, lower-right order:
// fed into the mask-atlas UV calculation so each corner samples its own
// corner of the tile's slot instead of every corner sampling the same
// point.
var quadCornerOffsets = [4][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

// buildMaskTile produces a mask tile's four corner vertices, one per
// quadCornerOffsets entry, so the quad spans the tile's full
// mask-atlas footprint rather than collapsing to a point sample.
func buildMaskTile(mt tiling.MaskTileRecord, rule gpudata.FillRule, objectIndex uint16) gpudata.MaskTile {
	var vertices [4]gpudata.MaskTileVertex
	for i, off := range quadCornerOffsets {
		u, v := gpudata.CalculateMaskUV(mt.AlphaTileIndex, off[0], off[1])
		vertices[i] = gpudata.MaskTileVertex{
			MaskU:       u,
			MaskV:       v,
			FillU:       u,
			FillV:       v,
			Backdrop:    int16(mt.Backdrop),
			ObjectIndex: objectIndex,
		}
	}
	return gpudata.MaskTile{Vertices: vertices, FillRule: rule}
}

// buildAlphaTileVertices produces an alpha tile's four corner
// vertices. Each corner's tile position and mask UV are offset by its
// quadCornerOffsets entry, the same way buildMaskTile's are.
func buildAlphaTileVertices(mt tiling.MaskTileRecord, meta sceneg.PathMeta, info PaintInfo, objectIndex uint16) [4]gpudata.AlphaTileVertex {
	var vertices [4]gpudata.AlphaTileVertex
	for i, off := range quadCornerOffsets {
		maskU, maskV := gpudata.CalculateMaskUV(mt.AlphaTileIndex, off[0], off[1])
		vertices[i] = gpudata.AlphaTileVertex{
			TileX:       int16(float32(mt.TileCoord.X) + off[0]),
			TileY:       int16(float32(mt.TileCoord.Y) + off[1]),
			ColorU:      uint16(info.AtlasUV.X * 65535),
			ColorV:      uint16(info.AtlasUV.Y * 65535),
			MaskU:       maskU,
			MaskV:       maskV,
			ObjectIndex: objectIndex,
			Opacity:     meta.Opacity,
		}
	}
	return vertices
}
