package tiling

import (
	"sort"

	"github.com/gogpu/tilebuild/gpudata"
	"github.com/gogpu/tilebuild/sceneg"
)

// Tiler drives one path's ObjectBuilder across the outline's tile rows,
// the per-path transformation from outline geometry to packed fills and
// tile classification described by the component design.
type Tiler struct {
	outline  sceneg.Outline
	viewBox  gpudata.RectI
	builder  *ObjectBuilder
	tileRect gpudata.RectI
}

// NewTiler prepares a Tiler for outline, clipped to viewBox (already in
// tile-grid integer coordinates), using alloc to hand out mask slots.
func NewTiler(outline sceneg.Outline, fillRule gpudata.FillRule, viewBox gpudata.RectI, alloc *TileIndexAllocator) *Tiler {
	tileRect := boundsToTileRect(outline.Bounds)
	tileRect = intersectRectI(tileRect, viewBox)
	return &Tiler{
		outline:  outline,
		viewBox:  viewBox,
		tileRect: tileRect,
		builder:  NewObjectBuilder(tileRect, fillRule, alloc),
	}
}

func boundsToTileRect(b gpudata.RectF) gpudata.RectI {
	const t = gpudata.TileWidth
	return gpudata.RectI{
		MinX: floorDiv(int32(floorF(b.MinX)), t),
		MinY: floorDiv(int32(floorF(b.MinY)), t),
		MaxX: ceilDiv(int32(ceilF(b.MaxX)), t),
		MaxY: ceilDiv(int32(ceilF(b.MaxY)), t),
	}
}

func floorF(v float32) float32 {
	i := int32(v)
	if float32(i) > v {
		i--
	}
	return float32(i)
}

func ceilF(v float32) float32 {
	i := int32(v)
	if float32(i) < v {
		i++
	}
	return float32(i)
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ceilDiv returns the smallest integer >= a/b, the exclusive tile
// bound a coordinate of a rounds out to.
func ceilDiv(a, b int32) int32 {
	return -floorDiv(-a, b)
}

func intersectRectI(a, b gpudata.RectI) gpudata.RectI {
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

// crossing is one edge's intersection with a tile row's top scanline.
type crossing struct {
	x      float32
	sign   int32
	seg    sceneg.LineSegment
}

// GenerateTiles runs the tiling algorithm over the whole outline and
// returns the finished BuiltPath.
func (t *Tiler) GenerateTiles() (*BuiltPath, error) {
	if t.tileRect.Width() <= 0 || t.tileRect.Height() <= 0 {
		return t.builder.Finish(), nil
	}

	for ty := t.tileRect.MinY; ty < t.tileRect.MaxY; ty++ {
		if err := t.generateRow(ty); err != nil {
			return nil, err
		}
	}

	return t.builder.Finish(), nil
}

func (t *Tiler) generateRow(ty int32) error {
	const th = gpudata.TileWidth
	rowTop := float32(ty * th)
	rowBottom := float32((ty + 1) * th)

	// Step 2: split every segment intersecting this row at tile-column
	// boundaries, emitting one fill per sub-segment.
	for _, seg := range t.outline.Segments {
		minY, maxY := seg.From.Y, seg.To.Y
		if minY > maxY {
			minY, maxY = maxY, minY
		}
		if maxY <= rowTop || minY >= rowBottom {
			continue
		}
		if err := t.emitSegmentFillsInRow(seg, rowTop, rowBottom); err != nil {
			return err
		}
	}

	// Step 3/4: crossings at the row's top scanline drive active fills
	// and backdrop propagation.
	crossings := t.collectCrossings(rowTop)
	sort.Slice(crossings, func(i, j int) bool { return crossings[i].x < crossings[j].x })

	running := int32(0)
	prevX := float32(t.tileRect.MinX * th)
	for _, c := range crossings {
		if err := t.applyIntervalAt(ty, prevX, c.x, running); err != nil {
			return err
		}
		running += c.sign
		prevX = c.x
	}
	maxX := float32(t.tileRect.MaxX * th)
	if err := t.applyIntervalAt(ty, prevX, maxX, running); err != nil {
		return err
	}

	return nil
}

// emitSegmentFillsInRow clips seg to [rowTop, rowBottom) and splits the
// resulting sub-segment at every tile-column boundary it crosses.
func (t *Tiler) emitSegmentFillsInRow(seg sceneg.LineSegment, rowTop, rowBottom float32) error {
	from, to := seg.From, seg.To
	descending := from.Y <= to.Y
	top, bot := from, to
	if !descending {
		top, bot = to, from
	}

	clippedTop := clampY(top, bot, top.Y, rowTop, rowBottom)
	clippedBot := clampY(top, bot, bot.Y, rowTop, rowBottom)

	segFrom, segTo := clippedTop, clippedBot
	if !descending {
		segFrom, segTo = clippedBot, clippedTop
	}

	const tw = gpudata.TileWidth
	startCol := floorDiv(int32(floorF(segFrom.X)), tw)
	endCol := floorDiv(int32(floorF(segTo.X)), tw)

	if startCol == endCol {
		return t.emitOneFill(startCol, rowToTileY(rowTop), segFrom, segTo)
	}

	dx := segTo.X - segFrom.X
	dy := segTo.Y - segFrom.Y
	cur := segFrom
	step := 1
	if endCol < startCol {
		step = -1
	}
	for col := startCol; ; col += int32(step) {
		var boundary float32
		if step > 0 {
			boundary = float32((col + 1) * tw)
		} else {
			boundary = float32(col * tw)
		}
		atEnd := col == endCol
		var next gpudata.Vec2F
		if atEnd {
			next = segTo
		} else if dx != 0 {
			frac := (boundary - segFrom.X) / dx
			next = gpudata.Vec2F{X: boundary, Y: segFrom.Y + frac*dy}
		} else {
			next = segTo
		}
		if err := t.emitOneFill(col, rowToTileY(rowTop), cur, next); err != nil {
			return err
		}
		cur = next
		if atEnd {
			break
		}
	}
	return nil
}

func rowToTileY(rowTop float32) int32 {
	return int32(rowTop) / gpudata.TileHeight
}

func clampY(a, b gpudata.Vec2F, y, lo, hi float32) gpudata.Vec2F {
	if y < lo {
		y = lo
	}
	if y > hi {
		y = hi
	}
	if b.Y == a.Y {
		return gpudata.Vec2F{X: a.X, Y: y}
	}
	frac := (y - a.Y) / (b.Y - a.Y)
	return gpudata.Vec2F{X: a.X + frac*(b.X-a.X), Y: y}
}

func (t *Tiler) emitOneFill(col, row int32, from, to gpudata.Vec2F) error {
	tileCoord := gpudata.Vec2I{X: col, Y: row}
	localFrom := gpudata.Vec2F{X: from.X - float32(col*gpudata.TileWidth), Y: from.Y - float32(row*gpudata.TileHeight)}
	localTo := gpudata.Vec2F{X: to.X - float32(col*gpudata.TileWidth), Y: to.Y - float32(row*gpudata.TileHeight)}
	return t.builder.AddFill(tileCoord, localFrom, localTo)
}

// collectCrossings finds every segment's x intersection with the
// horizontal line y = rowTop, signed by direction (descending = +1,
// ascending = -1), matching the winding convention used for ordinary
// edge fills.
func (t *Tiler) collectCrossings(rowTop float32) []crossing {
	var out []crossing
	for _, seg := range t.outline.Segments {
		minY, maxY := seg.From.Y, seg.To.Y
		descending := seg.From.Y <= seg.To.Y
		if minY > maxY {
			minY, maxY = maxY, minY
		}
		if rowTop < minY || rowTop >= maxY {
			continue
		}
		var x float32
		if seg.To.Y == seg.From.Y {
			continue
		}
		frac := (rowTop - seg.From.Y) / (seg.To.Y - seg.From.Y)
		x = seg.From.X + frac*(seg.To.X-seg.From.X)
		sign := int32(1)
		if !descending {
			sign = -1
		}
		out = append(out, crossing{x: x, sign: sign, seg: seg})
	}
	return out
}

// applyIntervalAt handles one interval [fromX, toX) on row ty: it
// writes the backdrop for every whole tile the interval fully spans and
// emits the active fills for the tile(s) straddling the interval's
// edges when windingBefore is nonzero.
func (t *Tiler) applyIntervalAt(ty int32, fromX, toX float32, windingBefore int32) error {
	if toX <= fromX {
		return nil
	}
	const tw = gpudata.TileWidth
	startCol := floorDiv(int32(floorF(fromX)), tw)
	endCol := ceilDiv(int32(ceilF(toX)), tw)

	for col := startCol; col < endCol && col < t.tileRect.MaxX; col++ {
		if col < t.tileRect.MinX {
			continue
		}
		coord := gpudata.Vec2I{X: col, Y: ty}
		t.builder.SetBackdrop(coord, windingBefore)
		if windingBefore == 0 {
			continue
		}
		left := float32(col * tw)
		right := float32((col + 1) * tw)
		if left >= fromX && right <= toX {
			// The interval covers this tile fully: the backdrop alone
			// accounts for it, so no active fill is emitted.
			continue
		}
		if left < fromX {
			left = fromX
		}
		if right > toX {
			right = toX
		}
		localLeft := left - float32(col*tw)
		localRight := right - float32(col*tw)
		if err := t.builder.AddActiveFill(coord, localLeft, localRight, int(windingBefore)); err != nil {
			return err
		}
	}
	return nil
}
