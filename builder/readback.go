package builder

import "github.com/gogpu/tilebuild/sceneg"

// needsReadableFramebuffer walks the display list once and reports
// whether any draw path outside a nested render target uses a blend
// mode that requires reading back the destination framebuffer. It
// short-circuits at the first such path rather than scanning the rest
// of the list once the answer is already known.
func needsReadableFramebuffer(scene *sceneg.Scene) bool {
	nesting := 0
	for _, item := range scene.DisplayList {
		switch item.Kind {
		case sceneg.DisplayItemPushRenderTarget:
			nesting++
		case sceneg.DisplayItemPopRenderTarget:
			nesting--
		case sceneg.DisplayItemDrawPaths:
			if nesting != 0 {
				continue
			}
			for i := item.DrawPathsStart; i < item.DrawPathsEnd; i++ {
				if scene.DrawPaths[i].Meta.BlendMode.NeedsReadableFramebuffer() {
					return true
				}
			}
		}
	}
	return false
}
