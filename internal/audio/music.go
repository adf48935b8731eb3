package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// musicNote is the length of one step of the background tune.
const musicNote = 250 * time.Millisecond

// Background tune in C major, one step per entry; 0 is a rest.
var musicMelody = []float64{
	261.63, 329.63, 392.00, 329.63,
	349.23, 440.00, 392.00, 0,
	293.66, 349.23, 440.00, 349.23,
	329.63, 392.00, 261.63, 0,
}

// MusicPhrase is one pass of the background tune: a quiet square lead over
// a sine bass that follows the root of every bar.
func MusicPhrase(rate beep.SampleRate) beep.Streamer {
	lead := make([]beep.Streamer, 0, len(musicMelody))
	for _, freq := range musicMelody {
		if freq == 0 {
			lead = append(lead, beep.Silence(rate.N(musicNote)))
			continue
		}
		lead = append(lead, NewEnvelope(NewOscillator(freq, musicNote, WaveSquare, rate),
			musicNote, 10*time.Millisecond, 120*time.Millisecond, rate))
	}

	bar := 4 * musicNote
	bass := make([]beep.Streamer, 0, len(musicMelody)/4)
	for i := 0; i < len(musicMelody); i += 4 {
		bass = append(bass, NewEnvelope(NewOscillator(musicMelody[i]/2, bar, WaveSine, rate),
			bar, 20*time.Millisecond, 200*time.Millisecond, rate))
	}

	return newVolume(beep.Mix(newVolume(beep.Seq(lead...), 0.15), newVolume(beep.Seq(bass...), 0.25)), 0.6)
}

// Music returns the background tune looped forever. The phrase is rendered
// once into a buffer so the loop can seek back to its start.
func Music(rate beep.SampleRate) beep.Streamer {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(MusicPhrase(rate))
	return beep.Loop(-1, buf.Streamer(0, buf.Len()))
}

// MusicLength is the duration of one pass of the tune.
func MusicLength() time.Duration {
	return time.Duration(len(musicMelody)) * musicNote
}
