package waveform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"retroio/waveform"
)

func TestPulseSampleCountRounds(t *testing.T) {
	cfg := waveform.DefaultConfig()
	p := waveform.Pulse{LengthTCycles: 2168, High: true}
	// 2168 t-cycles at 3.5MHz is ~619.4us; at 44100Hz that's ~27.3 samples.
	n := p.SampleCount(cfg)
	assert.InDelta(t, 27, n, 1)
}

func TestPulseLevel(t *testing.T) {
	assert.Equal(t, float32(1.0), waveform.Pulse{High: true}.Level())
	assert.Equal(t, float32(-1.0), waveform.Pulse{High: false}.Level())
}

func TestPlaybackDurationPctScalesPulseLength(t *testing.T) {
	cfg := waveform.DefaultConfig()
	half := cfg
	half.PlaybackDurationPct = 50

	p := waveform.Pulse{LengthTCycles: 10000, High: true}
	assert.InDelta(t, p.Seconds(cfg)/2, p.Seconds(half), 1e-12)
}

func TestAmstradCPCClockDiffersFromZXSpectrum(t *testing.T) {
	p := waveform.Pulse{LengthTCycles: 1000, High: true}
	zx := waveform.DefaultConfig()
	cpc := zx
	cpc.Platform = waveform.AmstradCPC

	assert.NotEqual(t, p.Seconds(zx), p.Seconds(cpc))
}

func TestPilotPulseTrainAlternatesPolarityAndExhausts(t *testing.T) {
	cfg := waveform.DefaultConfig()
	pilot := waveform.NewPilot(cfg, 2168, 4, true)

	var levels []float32
	for {
		s, ok := pilot.Next()
		if !ok {
			break
		}
		levels = append(levels, s)
	}
	assert.NotEmpty(t, levels)
	// Four pulses from high: high, low, high, low.
	assert.Equal(t, float32(1.0), levels[0])
	assert.Equal(t, float32(-1.0), levels[len(levels)-1])
	assert.True(t, pilot.Started())

	_, ok := pilot.Next()
	assert.False(t, ok)
}

func TestPilotNextStartHighParity(t *testing.T) {
	assert.True(t, waveform.PilotNextStartHigh(4, true))
	assert.False(t, waveform.PilotNextStartHigh(3, true))
}

func TestPilotCloneIsIndependentAndUnstarted(t *testing.T) {
	cfg := waveform.DefaultConfig()
	pilot := waveform.NewPilot(cfg, 2168, 10, true)
	_, _ = pilot.Next()
	assert.True(t, pilot.Started())

	clone := pilot.Clone()
	assert.False(t, clone.Started())
}
