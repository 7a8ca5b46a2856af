package render

// Tokyo Night palette
var (
	RgbBackground = RGB{26, 27, 38}
	RgbForeground = RGB{192, 202, 245}

	RgbShaft   = RGB{122, 162, 247} // Blue
	RgbHead    = RGB{255, 158, 100} // Orange
	RgbMarker  = RGB{247, 118, 142} // Red/pink
	RgbVector  = RGB{158, 206, 106} // Green, velocity vectors
	RgbSubdued = RGB{86, 95, 137}   // Comment gray

	// Indicator gradient endpoints for distant and imminent obstacles
	RgbFar  = RGB{42, 195, 222}
	RgbNear = RGB{255, 80, 60}
)

// ClosenessColor maps a normalized obstacle closeness to an indicator color
// closeness is clamped to [0, 1]; 0 = far (cool), 1 = touching (hot)
func ClosenessColor(closeness float64) RGB {
	if closeness < 0 {
		closeness = 0
	}
	if closeness > 1 {
		closeness = 1
	}
	return Gradient(RgbFar, RgbNear, closeness)
}
