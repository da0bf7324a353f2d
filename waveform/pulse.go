package waveform

import "time"

// Pulse is a scalar model of a single square-wave half-cycle: a length in
// Z80 t-cycles (or CPC-clock equivalent) and the polarity (high/low) of the
// level during that half-cycle.
type Pulse struct {
	LengthTCycles uint16
	High          bool
}

// Config carries the values every sample-producing component needs: the
// output sample rate, the source platform's clock, and the user's playback
// speed adjustment.
type Config struct {
	SampleRate          int
	Platform            Platform
	PlaybackDurationPct float64 // 100 = unchanged; defaults applied by caller
}

// DefaultConfig returns the conventional ZX Spectrum 44.1kHz configuration.
func DefaultConfig() Config {
	return Config{SampleRate: 44100, Platform: ZXSpectrum, PlaybackDurationPct: 100}
}

func (c Config) durationScale() float64 {
	if c.PlaybackDurationPct <= 0 {
		return 1
	}
	return c.PlaybackDurationPct / 100.0
}

// Seconds returns the wall-clock duration of this pulse under cfg.
func (p Pulse) Seconds(cfg Config) float64 {
	return float64(p.LengthTCycles) * cfg.Platform.tCycleSeconds() * cfg.durationScale()
}

// SampleCount returns the number of samples, at cfg.SampleRate, that this
// pulse occupies: round(length_tcycles * t_cycle_seconds * sample_rate).
func (p Pulse) SampleCount(cfg Config) int {
	n := p.Seconds(cfg) * float64(cfg.SampleRate)
	return roundToInt(n)
}

// Duration returns the pulse length as a time.Duration.
func (p Pulse) Duration(cfg Config) time.Duration {
	return time.Duration(p.Seconds(cfg) * float64(time.Second))
}

func roundToInt(f float64) int {
	if f < 0 {
		return -roundToInt(-f)
	}
	return int(f + 0.5)
}

// Level returns +1.0 for a high pulse and -1.0 for a low pulse: the sample
// value held for the pulse's whole duration.
func (p Pulse) Level() float32 {
	if p.High {
		return 1.0
	}
	return -1.0
}
