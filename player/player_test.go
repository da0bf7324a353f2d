package player_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retroio/player"
	"retroio/tzx"
	"retroio/waveform"
)

func twoBlockPlaylist() []tzx.Block {
	return []tzx.Block{
		&tzx.PureTone{PulseLength: 2168, PulseCount: 20},
		&tzx.PureTone{PulseLength: 2168, PulseCount: 20},
	}
}

func TestPlayerStateMachineTransitions(t *testing.T) {
	p := player.New(twoBlockPlaylist(), player.NullSink{}, waveform.DefaultConfig())
	assert.Equal(t, player.Idle, p.State())

	p.Play()
	assert.Equal(t, player.Playing, p.State())

	p.Pause()
	assert.Equal(t, player.Paused, p.State())

	p.Play()
	assert.Equal(t, player.Playing, p.State())

	// Pausing twice is a no-op transition-wise.
	p.Pause()
	p.Pause()
	assert.Equal(t, player.Paused, p.State())
}

func TestPlayerBlockCountAndAccessors(t *testing.T) {
	p := player.New(twoBlockPlaylist(), player.NullSink{}, waveform.DefaultConfig())
	assert.Equal(t, 2, p.BlockCount())
	assert.NotNil(t, p.BlockAt(0))
	assert.NotNil(t, p.BlockAt(1))
	assert.Nil(t, p.BlockAt(2))
	assert.Nil(t, p.BlockAt(-1))
}

func TestPlayerBlockBoundsAreContiguousAndSumToTotal(t *testing.T) {
	p := player.New(twoBlockPlaylist(), player.NullSink{}, waveform.DefaultConfig())

	start0, end0 := p.BlockBounds(0)
	start1, end1 := p.BlockBounds(1)

	assert.Equal(t, time.Duration(0), start0)
	assert.Equal(t, start1, end0)
	assert.Equal(t, p.TotalDuration(), end1)
}

func TestPlayerWaveformBoundsOutOfRangeIsZero(t *testing.T) {
	p := player.New(twoBlockPlaylist(), player.NullSink{}, waveform.DefaultConfig())
	start, end := p.WaveformBounds(-1)
	assert.Equal(t, time.Duration(0), start)
	assert.Equal(t, time.Duration(0), end)
}

func TestPlayerSeekToBlockRepositionsElapsed(t *testing.T) {
	p := player.New(twoBlockPlaylist(), player.NullSink{}, waveform.DefaultConfig())

	require.NoError(t, p.SeekToBlock(1))
	block, _ := p.CurrentIndices()
	assert.Equal(t, 1, block)

	start1, _ := p.BlockBounds(1)
	assert.Equal(t, start1, p.Elapsed())
	assert.Equal(t, player.Paused, p.State())
}

func TestPlayerSeekToBlockOutOfRangeErrors(t *testing.T) {
	p := player.New(twoBlockPlaylist(), player.NullSink{}, waveform.DefaultConfig())
	assert.Error(t, p.SeekToBlock(99))
	assert.Error(t, p.SeekToBlock(-1))
}

func TestPlayerTickAfterSeekKeepsIndicesInRange(t *testing.T) {
	p := player.New(twoBlockPlaylist(), player.NullSink{}, waveform.DefaultConfig())
	require.NoError(t, p.SeekToBlock(1))
	// Resume from the last block's start and let one millisecond of real
	// time pass before ticking.
	p.Play()
	time.Sleep(time.Millisecond)
	p.Tick()

	// Confirm Tick doesn't panic and indices stay in range.
	blockIdx, waveIdx := p.CurrentIndices()
	assert.GreaterOrEqual(t, blockIdx, 0)
	assert.GreaterOrEqual(t, waveIdx, 0)
}

func TestPlayerWaveformAtReturnsIndependentClones(t *testing.T) {
	p := player.New(twoBlockPlaylist(), player.NullSink{}, waveform.DefaultConfig())

	w1 := p.WaveformAt(0)
	_, ok := w1.Next()
	require.True(t, ok)
	assert.True(t, w1.Started())

	// Consuming one clone must not advance the cursor another caller sees.
	w2 := p.WaveformAt(0)
	assert.False(t, w2.Started())
}

func TestPlayerWaveformAtOutOfRangeReturnsEmpty(t *testing.T) {
	p := player.New(twoBlockPlaylist(), player.NullSink{}, waveform.DefaultConfig())
	w := p.WaveformAt(9999)
	_, ok := w.Next()
	assert.False(t, ok)
}
