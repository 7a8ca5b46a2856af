package arrow

const (
	// DefaultMarkerRadius is the radius of the point drawn for a degenerate arrow
	DefaultMarkerRadius = 5.0
	// DefaultMinVisibleLength is the length below which only the marker is drawn
	DefaultMinVisibleLength = 1.0
	// DefaultHeadRatio sizes the head side relative to the construction length
	DefaultHeadRatio = 1.0 / 3.0
)

// Options tunes head sizing and degenerate rendering
type Options struct {
	// ResizeHeadOnLengthChange rebuilds the head at HeadRatio of the new length in SetLength
	// Off by default: the head keeps its construction size
	ResizeHeadOnLengthChange bool
	MarkerRadius             float64
	MinVisibleLength         float64
	HeadRatio                float64
}

// DefaultOptions returns the stock configuration
func DefaultOptions() Options {
	return Options{
		ResizeHeadOnLengthChange: false,
		MarkerRadius:             DefaultMarkerRadius,
		MinVisibleLength:         DefaultMinVisibleLength,
		HeadRatio:                DefaultHeadRatio,
	}
}

// Option mutates Options during New
type Option func(*Options)

// WithOptions replaces the whole option block, typically one decoded from config
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

func WithResizeHeadOnLengthChange(on bool) Option {
	return func(o *Options) { o.ResizeHeadOnLengthChange = on }
}

func WithMarkerRadius(r float64) Option {
	return func(o *Options) { o.MarkerRadius = r }
}

func WithMinVisibleLength(l float64) Option {
	return func(o *Options) { o.MinVisibleLength = l }
}

func WithHeadRatio(r float64) Option {
	return func(o *Options) { o.HeadRatio = r }
}
