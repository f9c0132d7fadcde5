package gpudata

import (
	"testing"

	"github.com/gogpu/tilebuild/effects"
)

func TestAlphaTileBatchCanMergeWithMatchingKey(t *testing.T) {
	key := AlphaTileBatchKey{Page: 1, BlendMode: effects.BlendSourceOver, Sampling: 0}
	b := AlphaTileBatch{Key: key}
	if !b.CanMergeWith(key) {
		t.Errorf("CanMergeWith(same key, non-readback blend) = false, want true")
	}
}

func TestAlphaTileBatchCannotMergeAcrossKeys(t *testing.T) {
	b := AlphaTileBatch{Key: AlphaTileBatchKey{Page: 1, BlendMode: effects.BlendSourceOver}}
	other := AlphaTileBatchKey{Page: 2, BlendMode: effects.BlendSourceOver}
	if b.CanMergeWith(other) {
		t.Errorf("CanMergeWith(different page) = true, want false")
	}
}

func TestAlphaTileBatchCannotMergeAcrossReadableBlendMode(t *testing.T) {
	key := AlphaTileBatchKey{Page: 1, BlendMode: effects.BlendMultiply}
	b := AlphaTileBatch{Key: key}
	if b.CanMergeWith(key) {
		t.Errorf("CanMergeWith(Multiply, same key) = true, want false: Multiply needs a readable framebuffer")
	}
}
