package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

type fakeArrow struct{ degenerate bool }

func (f *fakeArrow) Degenerate() bool { return f.degenerate }

func TestCueStreamerLengths(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		cue  Cue
		want time.Duration
	}{
		{CueCollapse, 180 * time.Millisecond},
		{CueRestore, 180 * time.Millisecond},
		{CueTick, 30 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			if d := CueDuration(tt.cue); d != tt.want {
				t.Errorf("Expected duration %v, got %v", tt.want, d)
			}
			s, err := CueStreamer(tt.cue, rate)
			if err != nil {
				t.Fatalf("CueStreamer: %v", err)
			}
			total, _ := drain(t, s)
			want := 0
			for _, n := range cueNotes[tt.cue] {
				want += rate.N(n.dur)
			}
			if total != want {
				t.Errorf("Expected %d samples, got %d", want, total)
			}
		})
	}
}

func TestCueStreamerNoneAndUnknown(t *testing.T) {
	s, err := CueStreamer(CueNone, beep.SampleRate(44100))
	if s != nil || err != nil {
		t.Errorf("Expected nil streamer and error for CueNone, got %v, %v", s, err)
	}
	if _, err := CueStreamer(Cue(99), beep.SampleRate(44100)); err == nil {
		t.Error("Expected error for unknown cue")
	}
	if Cue(99).String() != "cue(99)" {
		t.Errorf("Unexpected name %q", Cue(99).String())
	}
}

func TestWatcherTransitions(t *testing.T) {
	a := &fakeArrow{}
	var w Watcher

	steps := []struct {
		degenerate bool
		want       Cue
	}{
		{false, CueNone}, // primes
		{false, CueNone},
		{true, CueCollapse},
		{true, CueNone},
		{false, CueRestore},
		{false, CueNone},
	}

	for i, s := range steps {
		a.degenerate = s.degenerate
		if got := w.Observe(a); got != s.want {
			t.Errorf("Step %d: expected %v, got %v", i, s.want, got)
		}
	}
}

func TestWatcherPrimesOnDegenerate(t *testing.T) {
	var w Watcher
	if got := w.Observe(&fakeArrow{degenerate: true}); got != CueNone {
		t.Errorf("Expected first observation to be silent, got %v", got)
	}
	if got := w.Observe(&fakeArrow{degenerate: false}); got != CueRestore {
		t.Errorf("Expected restore, got %v", got)
	}
}

func TestPlayCueBeforeInitialize(t *testing.T) {
	sm := NewSoundManager()
	// Must not touch the speaker
	sm.PlayCue(CueCollapse)
	sm.Cleanup()
	if sm.Ready() {
		t.Error("Expected manager not ready without Initialize")
	}
}
