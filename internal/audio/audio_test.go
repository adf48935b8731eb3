package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream never ended")
	return nil
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			samples := drain(t, NewOscillator(440, 100*time.Millisecond, tc.wave, rate))
			if len(samples) != rate.N(100*time.Millisecond) {
				t.Errorf("got %d samples, expected %d", len(samples), rate.N(100*time.Millisecond))
			}
			for i, s := range samples {
				if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
					t.Fatalf("sample %d = %v", i, s)
				}
			}
		})
	}
}

func TestSquareWaveValues(t *testing.T) {
	samples := drain(t, NewOscillator(220, 50*time.Millisecond, WaveSquare, SampleRate))
	for i, s := range samples {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("square sample %d = %f", i, s[0])
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // phase stays 0: constant 1.0
	samples := drain(t, NewEnvelope(osc, time.Second, 100*time.Millisecond, 200*time.Millisecond, rate))

	if len(samples) != 1000 {
		t.Fatalf("got %d samples, expected 1000", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", samples[0][0])
	}
	if math.Abs(samples[50][0]-0.5) > 1e-9 {
		t.Errorf("mid-attack = %f, expected 0.5", samples[50][0])
	}
	if samples[500][0] != 1 {
		t.Errorf("sustain = %f, expected 1", samples[500][0])
	}
	if math.Abs(samples[900][0]-0.5) > 1e-9 {
		t.Errorf("mid-release = %f, expected 0.5", samples[900][0])
	}
}

func TestEffects(t *testing.T) {
	for _, s := range []Sound{SoundCollision, SoundPickup, SoundHatch} {
		t.Run(s.String(), func(t *testing.T) {
			st := Effect(s, SampleRate)
			if st == nil {
				t.Fatal("expected a streamer")
			}
			samples := drain(t, st)
			if len(samples) == 0 {
				t.Fatal("effect produced no samples")
			}
			loud := false
			for _, v := range samples {
				if math.Abs(v[0]) > 0.01 {
					loud = true
					break
				}
			}
			if !loud {
				t.Error("effect is silent")
			}
		})
	}

	if Effect(Sound(99), SampleRate) != nil {
		t.Error("unknown sound should have no streamer")
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	var p Player = &r
	p.Play(SoundCollision)
	p.Play(SoundPickup)
	p.Close()

	got := r.Played()
	if len(got) != 2 || got[0] != SoundCollision || got[1] != SoundPickup {
		t.Errorf("played = %v", got)
	}
	if !r.Closed() {
		t.Error("recorder should be closed")
	}

	Nop{}.Play(SoundHatch)
	Nop{}.Music(true)
}

func TestRecorderMusic(t *testing.T) {
	var r Recorder
	if r.MusicOn() {
		t.Error("music should start off")
	}

	r.Music(true)
	if !r.MusicOn() {
		t.Error("music should be on")
	}
	r.Music(false)
	if r.MusicOn() {
		t.Error("music should be off")
	}

	got := r.MusicToggles()
	if len(got) != 2 || !got[0] || got[1] {
		t.Errorf("toggles = %v, expected [true false]", got)
	}
}

func TestMusicPhraseLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	samples := drain(t, MusicPhrase(rate))
	if len(samples) != rate.N(MusicLength()) {
		t.Errorf("got %d samples, expected %d", len(samples), rate.N(MusicLength()))
	}
}

func TestMusicLoops(t *testing.T) {
	rate := beep.SampleRate(8000)
	music := Music(rate)
	phrase := rate.N(MusicLength())

	buf := make([][2]float64, 1000)
	streamed := 0
	loud := false
	for streamed < 3*phrase {
		n, ok := music.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("music stopped after %d samples", streamed)
		}
		for _, v := range buf[:n] {
			if math.Abs(v[0]) > 0.01 {
				loud = true
			}
		}
		streamed += n
	}
	if !loud {
		t.Error("music is silent")
	}
}
