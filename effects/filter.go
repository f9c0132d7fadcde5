package effects

// CompositeOp narrows a BlendMode down to the operators a paint's alpha
// mask can legally composite with; it is a subset used when a path's
// effect is plain compositing rather than a text or blur filter.
type CompositeOp uint8

const (
	CompositeSrcOver CompositeOp = iota
	CompositeClear
	CompositeCopy
	CompositeSrcIn
	CompositeDestIn
	CompositeSrcOut
	CompositeDestAtop
)

// AsBlendMode widens a CompositeOp back out to the full BlendMode space,
// for call sites that only deal in blend modes.
func (op CompositeOp) AsBlendMode() BlendMode {
	switch op {
	case CompositeClear:
		return BlendClear
	case CompositeCopy:
		return BlendCopy
	case CompositeSrcIn:
		return BlendSourceIn
	case CompositeDestIn:
		return BlendDestinationIn
	case CompositeSrcOut:
		return BlendSourceOut
	case CompositeDestAtop:
		return BlendDestinationAtop
	default:
		return BlendSourceOver
	}
}

// Color is a floating-point RGBA color with components in [0, 1], the
// precision a text filter's foreground/background colors need for
// gamma-correct blending.
type Color struct {
	R, G, B, A float32
}

// DefringingKernel is a small fixed-size convolution kernel used to
// remove color fringing from subpixel-antialiased text masks before
// they are composited. It is only meaningful on a FilterText.
type DefringingKernel [4]float32

// BlurDirection selects the axis a FilterBlur is applied along; two
// passes (horizontal then vertical) implement a full 2D Gaussian blur.
type BlurDirection uint8

const (
	BlurDirectionX BlurDirection = iota
	BlurDirectionY
)

// FilterKind discriminates the concrete Filter variant.
type FilterKind uint8

const (
	FilterKindComposite FilterKind = iota
	FilterKindText
	FilterKindBlur
)

// Filter is the effect a path's paint passes through on its way to the
// framebuffer. Exactly one of the embedded fields is meaningful,
// selected by Kind.
type Filter struct {
	Kind FilterKind

	// Composite is valid when Kind == FilterKindComposite.
	Composite CompositeOp

	// Text fields are valid when Kind == FilterKindText.
	TextForegroundColor Color
	TextBackgroundColor Color
	TextDefringingKernel *DefringingKernel
	TextGammaCorrection  bool

	// Blur fields are valid when Kind == FilterKindBlur.
	BlurDirection BlurDirection
	BlurRadius    float32
	BlurSigma     float32
}

// NewCompositeFilter returns a plain compositing filter.
func NewCompositeFilter(op CompositeOp) Filter {
	return Filter{Kind: FilterKindComposite, Composite: op}
}

// NewTextFilter returns a text-mask filter with optional LCD
// defringing. fgColor and bgColor are the text's foreground and
// destination background colors, needed to correctly blend
// subpixel-antialiased coverage against a known backdrop.
func NewTextFilter(fgColor, bgColor Color, kernel *DefringingKernel, gammaCorrection bool) Filter {
	return Filter{
		Kind:                 FilterKindText,
		TextForegroundColor:  fgColor,
		TextBackgroundColor:  bgColor,
		TextDefringingKernel: kernel,
		TextGammaCorrection:  gammaCorrection,
	}
}

// NewBlurFilter returns a single-axis Gaussian blur filter.
func NewBlurFilter(direction BlurDirection, radius, sigma float32) Filter {
	return Filter{Kind: FilterKindBlur, BlurDirection: direction, BlurRadius: radius, BlurSigma: sigma}
}

// RequiresPatternAtlas reports whether this filter needs its input
// sampled from an intermediate pattern atlas rather than the main paint
// atlas, the way a multi-pass blur does.
func (f Filter) RequiresPatternAtlas() bool {
	return f.Kind == FilterKindBlur
}
