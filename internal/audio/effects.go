package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Effect names one of the game's sounds.
type Effect int

const (
	EffectLaser Effect = iota
	EffectHit
	EffectExplosion
	EffectWave
	EffectGameOver
)

func (e Effect) String() string {
	switch e {
	case EffectLaser:
		return "laser"
	case EffectHit:
		return "hit"
	case EffectExplosion:
		return "explosion"
	case EffectWave:
		return "wave"
	case EffectGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EffectFor maps a simulation event to its sound. Events without a sound
// report false.
func EffectFor(kind core.EventKind) (Effect, bool) {
	switch kind {
	case core.EventShot:
		return EffectLaser, true
	case core.EventAlienHit:
		return EffectHit, true
	case core.EventAlienKilled:
		return EffectExplosion, true
	case core.EventWaveCleared:
		return EffectWave, true
	case core.EventGameOver:
		return EffectGameOver, true
	default:
		return 0, false
	}
}

// NewEffect builds a fresh, finite streamer for the effect.
func NewEffect(effect Effect, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch effect {
	case EffectLaser:
		d := 90 * time.Millisecond
		s = NewEnvelope(NewSweep(1800, 400, d, WaveSquare, rate), d, 2*time.Millisecond, 40*time.Millisecond, rate)
	case EffectHit:
		d := 50 * time.Millisecond
		s = NewEnvelope(NewOscillator(220, d, WaveSaw, rate), d, time.Millisecond, 30*time.Millisecond, rate)
	case EffectExplosion:
		d := 250 * time.Millisecond
		noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, 200*time.Millisecond, rate)
		rumble := NewEnvelope(NewSweep(120, 40, d, WaveSine, rate), d, time.Millisecond, 200*time.Millisecond, rate)
		s = beep.Mix(withVolume(noise, 0.6), withVolume(rumble, 0.4))
	case EffectWave:
		note := 80 * time.Millisecond
		notes := []float64{523.25, 659.25, 783.99, 1046.50} // C5 E5 G5 C6
		seq := make([]beep.Streamer, 0, len(notes))
		for _, f := range notes {
			seq = append(seq, NewEnvelope(NewOscillator(f, note, WaveSquare, rate), note, 2*time.Millisecond, 30*time.Millisecond, rate))
		}
		s = beep.Seq(seq...)
	case EffectGameOver:
		d := 900 * time.Millisecond
		s = NewEnvelope(NewSweep(440, 55, d, WaveSaw, rate), d, 5*time.Millisecond, 400*time.Millisecond, rate)
	default:
		return nil
	}
	return withVolume(s, volume)
}
