// Package output plays sound effects and music through the system speaker.
package output

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/egg-hatch/internal/audio"
)

// Speaker mixes effects onto the system audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	music  *beep.Ctrl
	rate   beep.SampleRate
	logger *log.Logger
	closed bool
}

// New opens the audio device. When no device is available the failure is
// logged and a silent player is returned, so the game runs either way.
func New(logger *log.Logger) audio.Player {
	rate := audio.SampleRate
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return audio.Nop{}
	}

	s := &Speaker{
		mixer:  &beep.Mixer{},
		rate:   rate,
		logger: logger,
	}
	speaker.Play(s.mixer)
	logger.Debug("audio initialized", "rate", int(rate))
	return s
}

// Play queues an effect on the mixer.
func (s *Speaker) Play(snd audio.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	st := audio.Effect(snd, s.rate)
	if st == nil {
		s.logger.Debug("unknown sound", "sound", int(snd))
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Music starts or pauses the background loop. Resuming continues where
// the loop was paused.
func (s *Speaker) Music(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	switch {
	case on && s.music == nil:
		s.music = &beep.Ctrl{Streamer: audio.Music(s.rate)}
		s.mixer.Add(s.music)
	case s.music != nil:
		s.music.Paused = !on
	}
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
