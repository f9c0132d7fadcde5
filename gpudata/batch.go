package gpudata

import "github.com/gogpu/tilebuild/effects"

// SolidTileBatchKey groups solid tiles that can be drawn with a single
// draw call: same texture page, same sampler state, same paint effects.
// Solid tiles never need a blend mode in the key because they only ever
// occlude with SrcOver/Clear semantics (effects.OccludesBackdrop) — any
// tile drawn with a different blend mode is never recorded as solid in
// the first place.
type SolidTileBatchKey struct {
	Page     TexturePageID
	Sampling SamplingFlags
	Filter   effects.Filter
}

// SolidTileBatch is one contiguous run of solid tiles sharing a
// SolidTileBatchKey.
type SolidTileBatch struct {
	Key   SolidTileBatchKey
	Tiles []SolidTile
}

// AlphaTileBatchKey groups alpha tiles that can be drawn with a single
// draw call: same texture page, same blend mode, same sampler state.
// Unlike solid tiles, alpha tiles carry the blend mode explicitly because
// any blend mode is legal on a partially covered tile.
type AlphaTileBatchKey struct {
	Page      TexturePageID
	BlendMode effects.BlendMode
	Sampling  SamplingFlags
}

// AlphaTileBatch is one contiguous run of alpha tiles sharing an
// AlphaTileBatchKey. Batches of this kind must never be merged across a
// framebuffer-reading blend mode boundary: see
// effects.NeedsReadableFramebuffer.
type AlphaTileBatch struct {
	Key   AlphaTileBatchKey
	Tiles []AlphaTile
}

// CanMergeWith reports whether a new batch of tiles with the given key
// can be appended to b instead of starting a fresh batch. Per the
// batching rule, two alpha batches merge only when their keys match
// exactly and the blend mode does not require reading back the
// destination framebuffer (a framebuffer read establishes an ordering
// dependency that a merged batch would violate).
func (b AlphaTileBatch) CanMergeWith(key AlphaTileBatchKey) bool {
	if b.Key != key {
		return false
	}
	return !effects.NeedsReadableFramebuffer(key.BlendMode)
}
