package arrow

import (
	"github.com/lixenwraith/vi-arrow/geom"
)

// Target is the draw surface an Arrow renders onto
// Implemented by render.Canvas (terminal cells) and raster.Target (image)
type Target interface {
	StrokeLine(l geom.Line)
	FillTriangle(t geom.Triangle)
	FillPoint(p geom.Point, radius float64)
}
