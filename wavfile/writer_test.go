package wavfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retroio/wavfile"
)

func TestWriterProducesReadableMonoPCMWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")

	w, err := wavfile.Create(path, 44100)
	require.NoError(t, err)

	samples := []float32{0, 1.0, -1.0, 0.5, -0.5}
	for _, s := range samples {
		require.NoError(t, w.WriteSample(s))
	}
	require.NoError(t, w.Close())

	in, err := os.Open(path)
	require.NoError(t, err)
	defer in.Close()

	buf, err := wav.NewDecoder(in).FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, len(samples), len(buf.Data))
	assert.Equal(t, 0, buf.Data[0])
	assert.Equal(t, 32767, buf.Data[1]) // round(1.0 * MaxInt16)
	assert.Equal(t, -32767, buf.Data[2])
}
