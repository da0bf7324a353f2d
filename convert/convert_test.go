package convert_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retroio/convert"
	"retroio/tzx"
	"retroio/waveform"
)

type recordingWriter struct {
	samples []float32
}

func (r *recordingWriter) WriteSample(s float32) error {
	r.samples = append(r.samples, s)
	return nil
}

type failingWriter struct{}

func (failingWriter) WriteSample(s float32) error { return errors.New("disk full") }

func TestRunWritesEverySampleOfEveryBlock(t *testing.T) {
	blocks := []tzx.Block{
		&tzx.PureTone{PulseLength: 2168, PulseCount: 4},
		&tzx.PureTone{PulseLength: 2168, PulseCount: 4},
	}
	w := &recordingWriter{}

	require.NoError(t, convert.Run(blocks, waveform.DefaultConfig(), w))
	assert.NotEmpty(t, w.samples)
	for _, s := range w.samples {
		assert.True(t, s == 1.0 || s == -1.0)
	}
}

func TestRunPropagatesWriterError(t *testing.T) {
	blocks := []tzx.Block{&tzx.PureTone{PulseLength: 2168, PulseCount: 4}}
	err := convert.Run(blocks, waveform.DefaultConfig(), failingWriter{})
	assert.Error(t, err)
}

func TestRunHandlesEmptyBlockList(t *testing.T) {
	w := &recordingWriter{}
	require.NoError(t, convert.Run(nil, waveform.DefaultConfig(), w))
	assert.Empty(t, w.samples)
}
