package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is the rate every effect is synthesized at.
const SampleRate = beep.SampleRate(44100)

const (
	collisionDuration = 180 * time.Millisecond
	pickupDuration    = 90 * time.Millisecond
)

// Sound identifies an effect.
type Sound int

const (
	SoundCollision Sound = iota
	SoundPickup
	SoundHatch
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundCollision:
		return "collision"
	case SoundPickup:
		return "pickup"
	case SoundHatch:
		return "hatch"
	default:
		return "unknown"
	}
}

// CollisionSound is a dull thud: a falling square tone over a noise burst.
func CollisionSound(rate beep.SampleRate) beep.Streamer {
	tone := NewEnvelope(NewGlide(160, 60, collisionDuration, WaveSquare, rate),
		collisionDuration, 2*time.Millisecond, 140*time.Millisecond, rate)
	noise := NewEnvelope(NewOscillator(0, collisionDuration, WaveNoise, rate),
		collisionDuration, time.Millisecond, 170*time.Millisecond, rate)
	return newVolume(beep.Mix(newVolume(tone, 0.6), newVolume(noise, 0.3)), 0.8)
}

// PickupSound is a short rising blip.
func PickupSound(rate beep.SampleRate) beep.Streamer {
	blip := NewGlide(880, 1320, pickupDuration, WaveSine, rate)
	return newVolume(NewEnvelope(blip, pickupDuration, 5*time.Millisecond, 60*time.Millisecond, rate), 0.5)
}

// HatchSound is a three-note arpeggio.
func HatchSound(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		return NewEnvelope(NewOscillator(freq, 120*time.Millisecond, WaveSquare, rate),
			120*time.Millisecond, 5*time.Millisecond, 80*time.Millisecond, rate)
	}
	return newVolume(beep.Seq(note(523.25), note(659.25), note(783.99)), 0.4)
}

// Effect returns a fresh streamer for s, or nil for an unknown sound.
func Effect(s Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case SoundCollision:
		return CollisionSound(rate)
	case SoundPickup:
		return PickupSound(rate)
	case SoundHatch:
		return HatchSound(rate)
	default:
		return nil
	}
}
