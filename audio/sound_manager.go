package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays cues through the speaker mixer
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	gain        float64
	initialized bool
}

// NewSoundManager creates a new sound manager at half volume
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		gain:  -1,
	}
}

// SetGain sets cue volume in base-2 steps (0 = unity, -1 = half)
func (sm *SoundManager) SetGain(gain float64) {
	sm.mu.Lock()
	sm.gain = gain
	sm.mu.Unlock()
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	glog.V(2).Infof("audio: speaker ready at %d Hz", sampleRate)
	return nil
}

// Cleanup stops all sounds and closes the audio device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayCue queues cue on the mixer; a no-op before Initialize
func (sm *SoundManager) PlayCue(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || cue == CueNone {
		return
	}

	s, err := CueStreamer(cue, sampleRate)
	if err != nil {
		glog.Warningf("audio: %v", err)
		return
	}

	speaker.Lock()
	sm.mixer.Add(withGain(s, sm.gain))
	speaker.Unlock()
	glog.V(2).Infof("audio: cue %v", cue)
}

// Ready reports whether the speaker is initialized
func (sm *SoundManager) Ready() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
