// Package player implements the streaming transport that turns a parsed
// tape's block list into real-time audio: flattening blocks into waveform
// segments, feeding a bounded queue ahead of an audio sink, and tracking
// elapsed/remaining time for pause, resume and block-level seek.
package player

import (
	"time"

	"retroio/waveform"
)

// Sink is the real-time audio output collaborator. Enqueue hands over a
// pristine (unconsumed) Waveform; the sink's own goroutine is responsible
// for pulling samples from queued waveforms, in FIFO order, and writing
// them to the audio device without blocking the caller. Pause/Unpause and
// Clear are called only from the foreground control loop, never from the
// sink's own real-time thread.
type Sink interface {
	// Enqueue appends w to the playback queue. Must not block for more
	// than a bounded, small amount of time.
	Enqueue(w waveform.Waveform) error

	// Pause halts sample consumption without discarding queued waveforms.
	Pause()

	// Unpause resumes sample consumption.
	Unpause()

	// Clear stops consumption and discards every queued waveform,
	// without closing the sink; used when seeking.
	Clear()

	// Empty reports whether every enqueued waveform has been fully
	// consumed.
	Empty() bool

	// QueueLen reports how many enqueued waveforms have not yet been
	// fully consumed.
	QueueLen() int

	// BufferDelay is the sink's own pre-roll/output latency, used to
	// compensate elapsed-time computation and to bound how long Finish
	// should wait for the hardware buffer to drain.
	BufferDelay() time.Duration
}

// NullSink discards every enqueued waveform immediately, reporting itself
// always empty. It lets tooling (inspect --waveforms) build a Player to
// enumerate the flattened waveform list and per-block/per-waveform
// durations without opening a real audio device.
type NullSink struct{}

func (NullSink) Enqueue(waveform.Waveform) error { return nil }
func (NullSink) Pause() {}
func (NullSink) Unpause() {}
func (NullSink) Clear() {}
func (NullSink) Empty() bool { return true }
func (NullSink) QueueLen() int { return 0 }
func (NullSink) BufferDelay() time.Duration { return 0 }
