package builder

import (
	"errors"

	"github.com/gogpu/tilebuild/tiling"
)

// ErrTileIndexOverflow is returned when either tile-index allocator
// would exceed the 16-bit slot range during a build. Build returns it
// without sending Finish; the Start and AddFills commands already sent
// by then are not withdrawn, so the listener has seen an incomplete
// stream.
var ErrTileIndexOverflow = tiling.ErrTileIndexOverflow

// ErrUnbalancedRenderTarget indicates a malformed scene: a
// PushRenderTarget with no matching PopRenderTarget, or vice versa.
// Detected up front from the scene, and again defensively at the end
// of the occlusion pass's first sub-pass.
var ErrUnbalancedRenderTarget = errors.New("tilebuild/builder: render target push/pop stack is unbalanced")

// ErrMissingLayerZBuffer indicates an internal invariant violation: the
// culling pass's second sub-pass tried to consume a layer Z-buffer that
// the first sub-pass never produced.
var ErrMissingLayerZBuffer = errors.New("tilebuild/builder: no Z-buffer was recorded for this render target layer")
