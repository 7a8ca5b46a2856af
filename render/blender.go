package render

// BlendMode defines compositing operations using a bitmask (Flags | Op)
type BlendMode uint8

// Blend Operations (0-15)
const (
	opReplace uint8 = 0x00
	opAlpha   uint8 = 0x01
	opMax     uint8 = 0x02
)

// Blend Flags
const (
	flagBg uint8 = 0x10 // Apply operation to Background
	flagFg uint8 = 0x20 // Apply operation to Foreground
)

// Pre-defined Blend Modes
const (
	// Standard Modes (affect both Fg and Bg)
	BlendReplace = BlendMode(opReplace | flagBg | flagFg)
	BlendAlpha   = BlendMode(opAlpha | flagBg | flagFg)
	BlendMax     = BlendMode(opMax | flagBg | flagFg)

	// Targeted Modes
	BlendAlphaFg = BlendMode(opAlpha | flagFg) // Blend Fg, Keep Bg
)

// apply runs op on a single channel pair
func (m BlendMode) apply(dst, src RGB, alpha float64) RGB {
	switch uint8(m) & 0x0F {
	case opAlpha:
		return Blend(dst, src, alpha)
	case opMax:
		return Max(dst, src)
	default:
		return src
	}
}
