package gpudata

import "time"

// CommandKind discriminates the concrete type of a RenderCommand so a
// Listener can type-switch or dispatch on it without reflection.
type CommandKind uint8

const (
	KindStart CommandKind = iota
	KindAddFills
	KindFlushFills
	KindRenderMaskTiles
	KindDrawSolidTiles
	KindDrawAlphaTiles
	KindPushRenderTarget
	KindPopRenderTarget
	KindFinish
)

var commandKindNames = [...]string{
	KindStart:            "Start",
	KindAddFills:         "AddFills",
	KindFlushFills:       "FlushFills",
	KindRenderMaskTiles:  "RenderMaskTiles",
	KindDrawSolidTiles:   "DrawSolidTiles",
	KindDrawAlphaTiles:   "DrawAlphaTiles",
	KindPushRenderTarget: "PushRenderTarget",
	KindPopRenderTarget:  "PopRenderTarget",
	KindFinish:           "Finish",
}

// String returns the command kind's name, for logging.
func (k CommandKind) String() string {
	if int(k) < len(commandKindNames) {
		return commandKindNames[k]
	}
	return "Unknown"
}

// RenderCommand is one entry in the command stream a SceneBuilder emits
// to a Listener. The stream's ordering contract (§6) is: Start, then
// per-path AddFills, then a single FlushFills, then RenderMaskTiles,
// then the root layer's solid tiles followed by
// Draw*/Push/PopRenderTarget in display-list order, then Finish.
type RenderCommand interface {
	Kind() CommandKind
}

// StartCommand opens the command stream: the scene's bounding quad (in
// framebuffer pixel coordinates, four corners), how many paths the
// scene contains, and whether any draw path requires the destination
// framebuffer to be readable.
type StartCommand struct {
	BoundingQuad              [4]Vec2F
	PathCount                 uint32
	NeedsReadableFramebuffer  bool
}

func (StartCommand) Kind() CommandKind { return KindStart }

// AddFillsCommand appends fill primitives to the pending fill batch.
// Fills accumulate across multiple AddFills commands until a
// FlushFillsCommand is sent.
type AddFillsCommand struct {
	Fills []FillBatchPrimitive
}

func (AddFillsCommand) Kind() CommandKind { return KindAddFills }

// FlushFillsCommand instructs the listener to execute the fill
// compute/fragment pass over every fill accumulated since the last
// flush (or the start of the stream), resolving them into mask-tile
// coverage.
type FlushFillsCommand struct{}

func (FlushFillsCommand) Kind() CommandKind { return KindFlushFills }

// RenderMaskTilesCommand draws mask geometry into the mask atlas for the
// given tiles, split by fill rule since winding and even-odd resolve
// coverage differently.
type RenderMaskTilesCommand struct {
	Tiles    []MaskTile
	FillRule FillRule
}

func (RenderMaskTilesCommand) Kind() CommandKind { return KindRenderMaskTiles }

// DrawSolidTilesCommand draws one batch of fully covered tiles.
type DrawSolidTilesCommand struct {
	Batch SolidTileBatch
}

func (DrawSolidTilesCommand) Kind() CommandKind { return KindDrawSolidTiles }

// DrawAlphaTilesCommand draws one batch of partially covered tiles.
type DrawAlphaTilesCommand struct {
	Batch AlphaTileBatch
}

func (DrawAlphaTilesCommand) Kind() CommandKind { return KindDrawAlphaTiles }

// PushRenderTargetCommand begins rendering into an offscreen render
// target, to be composited back by a later DrawAlphaTilesCommand or
// DrawSolidTilesCommand referencing its texture page.
type PushRenderTargetCommand struct {
	Page TexturePageID
	Size Vec2I
}

func (PushRenderTargetCommand) Kind() CommandKind { return KindPushRenderTarget }

// PopRenderTargetCommand ends the innermost pushed render target. Every
// PushRenderTargetCommand in a well-formed stream has exactly one
// matching PopRenderTargetCommand.
type PopRenderTargetCommand struct{}

func (PopRenderTargetCommand) Kind() CommandKind { return KindPopRenderTarget }

// FinishCommand closes the command stream. No further commands may
// follow it. BuildTime is informational only: no part of the protocol
// depends on its value.
type FinishCommand struct {
	BuildTime time.Duration
}

func (FinishCommand) Kind() CommandKind { return KindFinish }
