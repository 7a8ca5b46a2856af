package render

// Attr is a bitmask of text attributes
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << 0
)

// Cell is a single terminal cell in the render buffer
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// emptyCell is the cleared state; Bg is replaced by RgbBackground when untouched at flush
var emptyCell = Cell{
	Rune:  0,
	Fg:    RgbForeground,
	Bg:    RGBBlack,
	Attrs: AttrNone,
}
