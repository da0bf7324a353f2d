package waveform_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retroio/waveform"
)

func TestZeroMillisecondPauseProducesNoSamples(t *testing.T) {
	cfg := waveform.DefaultConfig()
	p := waveform.NewPause(cfg, 0)

	_, ok := p.Next()
	assert.False(t, ok)
	assert.Equal(t, time.Duration(0), p.TotalDuration())
}

func TestNonZeroPauseStartsWithEdgeSpikeThenSilence(t *testing.T) {
	cfg := waveform.DefaultConfig()
	p := waveform.NewPause(cfg, 1000) // 1 second

	first, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, float32(0.0), first)

	second, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, float32(-1.0), second)

	// Walk to the end; everything after the edge should be silence (0.0).
	var sawSilenceAfterEdge bool
	for {
		v, ok := p.Next()
		if !ok {
			break
		}
		if v == 0.0 {
			sawSilenceAfterEdge = true
		}
	}
	assert.True(t, sawSilenceAfterEdge)
}

func TestPauseVisualiseEmptyWhenZeroLength(t *testing.T) {
	cfg := waveform.DefaultConfig()
	p := waveform.NewPause(cfg, 0)
	assert.Equal(t, "", p.Visualise(10))
}
