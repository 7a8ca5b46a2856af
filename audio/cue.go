package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
)

// Cue names a short sound tied to an arrow state transition
type Cue int

const (
	CueNone Cue = iota
	CueCollapse
	CueRestore
	CueTick
)

func (c Cue) String() string {
	switch c {
	case CueNone:
		return "none"
	case CueCollapse:
		return "collapse"
	case CueRestore:
		return "restore"
	case CueTick:
		return "tick"
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// note is one step of a cue
type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueCollapse: {{660, 70 * time.Millisecond}, {440, 110 * time.Millisecond}},
	CueRestore:  {{440, 70 * time.Millisecond}, {660, 110 * time.Millisecond}},
	CueTick:     {{880, 30 * time.Millisecond}},
}

// CueStreamer builds the streamer for cue; CueNone yields nil
func CueStreamer(cue Cue, rate beep.SampleRate) (beep.Streamer, error) {
	if cue == CueNone {
		return nil, nil
	}
	notes, ok := cueNotes[cue]
	if !ok {
		return nil, fmt.Errorf("unknown cue %v", cue)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := NewTone(n.freq, n.dur, rate)
		if err != nil {
			return nil, fmt.Errorf("cue %v: %w", cue, err)
		}
		parts = append(parts, tone)
	}
	return beep.Seq(parts...), nil
}

// CueDuration returns the total length of cue
func CueDuration(cue Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[cue] {
		d += n.dur
	}
	return d
}

// Degenerator is anything that can collapse to a point marker, e.g. *arrow.Arrow
type Degenerator interface {
	Degenerate() bool
}

// Watcher turns frame-by-frame degenerate state into transition cues
type Watcher struct {
	primed     bool
	degenerate bool
}

// Observe records the current state and returns the cue for a transition
// The first observation only primes the watcher
func (w *Watcher) Observe(d Degenerator) Cue {
	now := d.Degenerate()
	if !w.primed {
		w.primed = true
		w.degenerate = now
		return CueNone
	}
	if now == w.degenerate {
		return CueNone
	}
	w.degenerate = now
	if now {
		return CueCollapse
	}
	return CueRestore
}
