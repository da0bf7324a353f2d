// Package wavfile is the concrete SampleWriter the convert runner writes
// to: a mono, 16-bit PCM WAV file built on github.com/go-audio/wav.
package wavfile

import (
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

const (
	bitDepth  = 16
	channels  = 1
	wavFormat = 1 // PCM
)

// Writer wraps a wav.Encoder, exposing the single-sample WriteSample method
// convert.Run is written against.
type Writer struct {
	f   *os.File
	enc *wav.Encoder
	buf *audio.IntBuffer
}

// Create opens path and prepares a mono WAV encoder at sampleRate.
func Create(path string, sampleRate int) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "wavfile: creating output file")
	}

	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, wavFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, 1),
		SourceBitDepth: bitDepth,
	}
	return &Writer{f: f, enc: enc, buf: buf}, nil
}

// WriteSample writes one mono sample, scaled from [-1.0, 1.0] to a signed
// 16-bit PCM value as round(sample * 32767).
func (w *Writer) WriteSample(sample float32) error {
	v := int(math.Round(float64(sample) * math.MaxInt16))
	if v > math.MaxInt16 {
		v = math.MaxInt16
	}
	if v < math.MinInt16 {
		v = math.MinInt16
	}
	w.buf.Data[0] = v
	if err := w.enc.Write(w.buf); err != nil {
		return errors.Wrap(err, "wavfile: writing sample")
	}
	return nil
}

// Close flushes the encoder's header/footer and closes the underlying file.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		_ = w.f.Close()
		return errors.Wrap(err, "wavfile: closing encoder")
	}
	return errors.Wrap(w.f.Close(), "wavfile: closing file")
}
