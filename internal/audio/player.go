package audio

import "sync"

// Player plays sound effects and the looping background music.
// Neither Play nor Music may block the game loop.
type Player interface {
	Play(s Sound)
	Music(on bool)
	Close()
}

// Nop is a silent player.
type Nop struct{}

func (Nop) Play(Sound) {}
func (Nop) Music(bool) {}
func (Nop) Close()     {}

// Recorder remembers every sound it was asked to play.
type Recorder struct {
	mu     sync.Mutex
	played []Sound
	music  []bool
	closed bool
}

// Play records s.
func (r *Recorder) Play(s Sound) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.played = append(r.played, s)
}

// Music records a music toggle.
func (r *Recorder) Music(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.music = append(r.music, on)
}

// Close marks the recorder closed.
func (r *Recorder) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}

// Played returns a copy of the recorded sounds.
func (r *Recorder) Played() []Sound {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Sound(nil), r.played...)
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// MusicToggles returns a copy of the recorded music toggles.
func (r *Recorder) MusicToggles() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.music...)
}

// MusicOn reports whether the last toggle turned the music on.
func (r *Recorder) MusicOn() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.music) > 0 && r.music[len(r.music)-1]
}
