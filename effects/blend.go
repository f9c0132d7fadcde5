// Package effects defines the paint-level compositing vocabulary a scene
// path carries: composite operators, blend modes, and filters, plus the
// two classifiers the occlusion pass needs to reason about them safely —
// whether a blend mode requires reading back the destination
// framebuffer, and whether it can occlude an opaque backdrop.
package effects

// BlendMode selects how a path's color composites with whatever is
// already in the destination. The constants below cover the Porter-Duff
// operators, the CSS/SVG separable blend modes, and the non-separable
// HSL blend modes.
type BlendMode uint8

const (
	BlendClear BlendMode = iota
	BlendCopy
	BlendDestination
	BlendSourceOver
	BlendDestinationOver
	BlendSourceIn
	BlendDestinationIn
	BlendSourceOut
	BlendDestinationOut
	BlendSourceAtop
	BlendDestinationAtop
	BlendXor
	BlendPlus
	BlendLighter

	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion

	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity

	// BlendNormal is an alias for BlendSourceOver, matching the CSS
	// `normal` blend mode name.
	BlendNormal = BlendSourceOver
)

var blendModeNames = [...]string{
	BlendClear:            "Clear",
	BlendCopy:              "Copy",
	BlendDestination:       "Destination",
	BlendSourceOver:        "SourceOver",
	BlendDestinationOver:   "DestinationOver",
	BlendSourceIn:          "SourceIn",
	BlendDestinationIn:     "DestinationIn",
	BlendSourceOut:         "SourceOut",
	BlendDestinationOut:    "DestinationOut",
	BlendSourceAtop:        "SourceAtop",
	BlendDestinationAtop:   "DestinationAtop",
	BlendXor:               "Xor",
	BlendPlus:              "Plus",
	BlendLighter:           "Lighter",
	BlendMultiply:          "Multiply",
	BlendScreen:            "Screen",
	BlendOverlay:           "Overlay",
	BlendDarken:            "Darken",
	BlendLighten:           "Lighten",
	BlendColorDodge:        "ColorDodge",
	BlendColorBurn:         "ColorBurn",
	BlendHardLight:         "HardLight",
	BlendSoftLight:         "SoftLight",
	BlendDifference:        "Difference",
	BlendExclusion:         "Exclusion",
	BlendHue:               "Hue",
	BlendSaturation:        "Saturation",
	BlendColor:             "Color",
	BlendLuminosity:        "Luminosity",
}

// String returns the blend mode's CSS-style name.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) && blendModeNames[m] != "" {
		return blendModeNames[m]
	}
	return "Unknown"
}

// NeedsReadableFramebuffer reports whether compositing with this blend
// mode requires a shader-side read of the destination contents. The
// Porter-Duff operators (Clear through Plus), along with Lighter,
// Lighten, and Darken, all map onto GPU fixed-function blend factors
// and need no shader read; the separable and HSL blend modes below
// them do not have a fixed-function equivalent and must sample the
// destination directly. Two batches drawn with a readback-requiring
// mode can never be merged across an intervening draw to the same
// pixels, since each draw must observe the previous one's result.
func (m BlendMode) NeedsReadableFramebuffer() bool {
	switch m {
	case BlendClear, BlendCopy, BlendDestination, BlendSourceOver, BlendDestinationOver,
		BlendSourceIn, BlendDestinationIn, BlendSourceOut, BlendDestinationOut,
		BlendSourceAtop, BlendDestinationAtop, BlendXor, BlendPlus,
		BlendLighter, BlendLighten, BlendDarken:
		return false
	default:
		return true
	}
}

// NeedsReadableFramebuffer is the function form of
// BlendMode.NeedsReadableFramebuffer, for call sites that hold a bare
// mode value.
func NeedsReadableFramebuffer(m BlendMode) bool { return m.NeedsReadableFramebuffer() }

// OccludesBackdrop reports whether a fully solid tile painted with this
// blend mode can safely occlude (replace, for Z-buffer purposes) an
// opaque tile drawn earlier in the same layer. Only Clear and SourceOver
// have this property: every other blend mode's result depends on the
// destination value in a way that makes "draw over and forget the
// backdrop" incorrect, even when the source tile is fully covered.
func (m BlendMode) OccludesBackdrop() bool {
	return m == BlendClear || m == BlendSourceOver
}

// OccludesBackdrop is the function form of BlendMode.OccludesBackdrop.
func OccludesBackdrop(m BlendMode) bool { return m.OccludesBackdrop() }
