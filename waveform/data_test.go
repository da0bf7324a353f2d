package waveform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retroio/waveform"
)

func TestDataWaveformSeekMatchesLinearScan(t *testing.T) {
	cfg := waveform.DefaultConfig()
	payload := waveform.NewPayload([]byte{0xAA, 0x55, 0xF0, 0x0F, 0xFF, 0x00, 0x3C, 0xC3}, 8)

	reference := waveform.NewData(cfg, payload, 855, 1710, true)
	total := reference.TotalDuration()
	target := total / 3

	// Linear reference: consume samples one at a time up to target.
	linear := waveform.NewData(cfg, payload, 855, 1710, true)
	targetSamples := int(target.Seconds() * float64(cfg.SampleRate))
	var want float32
	var ok bool
	for i := 0; i <= targetSamples; i++ {
		want, ok = linear.Next()
		require.True(t, ok)
	}

	accelerated := waveform.NewData(cfg, payload, 855, 1710, true)
	require.True(t, accelerated.TrySeek(target))
	got, ok := accelerated.Next()
	require.True(t, ok)

	assert.Equal(t, want, got)
}

func TestDataWaveformSeekOutOfRangeFails(t *testing.T) {
	cfg := waveform.DefaultConfig()
	payload := waveform.NewPayload([]byte{0xFF}, 8)
	d := waveform.NewData(cfg, payload, 855, 1710, true)

	assert.False(t, d.TrySeek(-1))
	assert.False(t, d.TrySeek(d.TotalDuration()*2))
}

func TestDataWaveformPayloadPositionTracksByte(t *testing.T) {
	cfg := waveform.DefaultConfig()
	payload := waveform.NewPayload([]byte{0x00, 0x00, 0x00}, 8)
	d := waveform.NewData(cfg, payload, 855, 1710, true)

	off, ok := d.PayloadPosition()
	assert.True(t, ok)
	assert.Equal(t, 0, off)

	require.True(t, d.TrySeek(d.TotalDuration()))
	off, ok = d.PayloadPosition()
	assert.True(t, ok)
	assert.Equal(t, 3, off)
}

func TestDataWaveformPulseCountHonoursUsedBits(t *testing.T) {
	cfg := waveform.DefaultConfig()
	// Two bytes with 3 used bits in the last: 11 bits, two pulses each.
	payload := waveform.NewPayload([]byte{0x00, 0x00}, 3)
	d := waveform.NewData(cfg, payload, 855, 855, true)

	perPulse := waveform.Pulse{LengthTCycles: 855}.SampleCount(cfg)
	var samples int
	for {
		_, ok := d.Next()
		if !ok {
			break
		}
		samples++
	}
	assert.Equal(t, 11*2*perPulse, samples)
}

func TestDataNextStartHighIsUnchangedSincePulseCountIsAlwaysEven(t *testing.T) {
	// Two pulses per bit means the total pulse count is always even, so the
	// polarity handed to the following waveform always matches startHigh.
	p := waveform.NewPayload([]byte{0xFF}, 8)
	assert.True(t, waveform.DataNextStartHigh(p, true))
	assert.False(t, waveform.DataNextStartHigh(p, false))
}
