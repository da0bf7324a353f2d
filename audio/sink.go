// Package audio is the real-time output device the Player drives during
// `play`: a gordonklaus/portaudio stream fed exclusively by pre-queued
// Waveform segments, so the callback itself never constructs samples or
// blocks.
package audio

import (
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"
	"github.com/pkg/errors"

	"retroio/waveform"
)

// bufferDelayMultiple compensates for PortAudio's own internal buffering in
// addition to the frames-per-callback latency, matching how Player.Play
// biases start_instant forward by the sink's reported BufferDelay.
const bufferDelayMultiple = 2

// PortAudioSink implements player.Sink on top of a PortAudio default output
// stream.
type PortAudioSink struct {
	mu     sync.Mutex
	stream *portaudio.Stream

	queue  []waveform.Waveform
	cursor int // index into queue of the waveform currently draining

	paused bool

	sampleRate   int
	framesPerBuf int
}

// Open initializes PortAudio and starts the default output stream at
// sampleRate, paused until the caller calls Unpause (via Player.Play).
func Open(sampleRate, framesPerBuffer int) (*PortAudioSink, error) {
	if framesPerBuffer <= 0 {
		framesPerBuffer = 512
	}
	if err := portaudio.Initialize(); err != nil {
		return nil, errors.Wrap(err, "audio: initializing portaudio")
	}

	s := &PortAudioSink{sampleRate: sampleRate, framesPerBuf: framesPerBuffer, paused: true}

	stream, err := portaudio.OpenDefaultStream(0, 1, float64(sampleRate), framesPerBuffer, s.callback)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, errors.Wrap(err, "audio: opening output stream")
	}
	if err := stream.Start(); err != nil {
		_ = portaudio.Terminate()
		return nil, errors.Wrap(err, "audio: starting output stream")
	}
	s.stream = stream
	return s, nil
}

// callback runs on PortAudio's real-time thread. It only pulls samples from
// waveforms already appended by Enqueue; it never allocates or parses.
func (s *PortAudioSink) callback(out []float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range out {
		if s.paused {
			out[i] = 0
			continue
		}
		sample, ok := s.nextLocked()
		if !ok {
			out[i] = 0
			continue
		}
		out[i] = sample
	}
}

func (s *PortAudioSink) nextLocked() (float32, bool) {
	for s.cursor < len(s.queue) {
		sample, ok := s.queue[s.cursor].Next()
		if ok {
			return sample, true
		}
		s.cursor++
	}
	return 0, false
}

// Enqueue appends w to the playback queue.
func (s *PortAudioSink) Enqueue(w waveform.Waveform) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, w)
	return nil
}

// Pause halts sample consumption without discarding queued waveforms.
func (s *PortAudioSink) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
}

// Unpause resumes sample consumption.
func (s *PortAudioSink) Unpause() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
}

// Clear stops consumption and discards every queued waveform.
func (s *PortAudioSink) Clear() {
	s.mu.Lock()
	s.queue = nil
	s.cursor = 0
	s.mu.Unlock()
}

// Empty reports whether every enqueued waveform has been fully consumed.
func (s *PortAudioSink) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor >= len(s.queue)
}

// QueueLen reports how many waveforms remain unconsumed.
func (s *PortAudioSink) QueueLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue) - s.cursor
}

// BufferDelay is the stream's pre-roll latency: the time to drain one
// callback buffer, doubled to cover PortAudio's own internal double
// buffering.
func (s *PortAudioSink) BufferDelay() time.Duration {
	perBuffer := time.Duration(float64(s.framesPerBuf) / float64(s.sampleRate) * float64(time.Second))
	return perBuffer * bufferDelayMultiple
}

// Close stops the stream and terminates PortAudio.
func (s *PortAudioSink) Close() error {
	if err := s.stream.Close(); err != nil {
		return errors.Wrap(err, "audio: closing stream")
	}
	return errors.Wrap(portaudio.Terminate(), "audio: terminating portaudio")
}
