// Package waveform turns the timing information decoded from a tape block
// into the actual audio signal a loader ROM expects: a lazy, clonable,
// seekable sequence of float32 samples in [-1.0, +1.0].
package waveform

import "time"

// Waveform is one playable segment of the reconstructed tape signal: the
// pilot tone of a block, its sync pulses, its data bits, a pause, and so on.
// Implementations are single-channel sample iterators; none of them are
// safe for concurrent use by more than one goroutine at a time, but cheap
// Clone lets the Player hand one clone to the audio thread while keeping a
// pristine copy for rebuilding the queue after a seek.
type Waveform interface {
	// Next yields the next sample, or ok=false once the waveform is
	// exhausted.
	Next() (sample float32, ok bool)

	// TotalDuration is this waveform's full wall-clock length, regardless
	// of how much has already been consumed.
	TotalDuration() time.Duration

	// TrySeek repositions the internal cursor to pos. It returns false
	// (and leaves the cursor unchanged) if pos is out of range.
	TrySeek(pos time.Duration) bool

	// Clone returns an independent copy positioned at the start, sharing
	// any large backing buffers.
	Clone() Waveform

	// Started reports whether any sample has been yielded since the last
	// Clone/seek-to-start.
	Started() bool

	// Visualise renders an approximate ASCII preview of the next `width`
	// units of signal, without consuming samples. Waveforms with nothing
	// meaningful to show return "".
	Visualise(width int) string

	// PayloadPosition returns the current byte offset into a backing data
	// payload, for waveforms that carry one (Data, Direct). ok is false
	// for waveforms with no payload (Pilot, Sync, Pause, Empty, ...).
	PayloadPosition() (offset int, ok bool)
}

// pulseSource supplies pulses by index, letting one generic player object
// (pulseTrain) implement most Waveform variants. Index 0 is the first pulse
// to be played.
type pulseSource interface {
	PulseCount() int
	PulseAt(i int) Pulse
}

// pulseTrain is a generic, lazily-advancing Waveform over any pulseSource.
// Pilot, Sync, PulseSequence, Direct, and Generalized waveforms are all thin
// wrappers constructing one of these with the appropriate source.
type pulseTrain struct {
	cfg Config
	src pulseSource

	pulseIdx  int
	sampleIdx int
	started   bool

	cumulative []int // lazily built prefix sums of per-pulse sample counts
}

func newPulseTrain(cfg Config, src pulseSource) *pulseTrain {
	return &pulseTrain{cfg: cfg, src: src}
}

func (w *pulseTrain) Next() (float32, bool) {
	for {
		if w.pulseIdx >= w.src.PulseCount() {
			return 0, false
		}
		p := w.src.PulseAt(w.pulseIdx)
		n := p.SampleCount(w.cfg)
		if n == 0 {
			w.pulseIdx++
			w.sampleIdx = 0
			continue
		}
		w.started = true
		val := p.Level()
		w.sampleIdx++
		if w.sampleIdx >= n {
			w.pulseIdx++
			w.sampleIdx = 0
		}
		return val, true
	}
}

func (w *pulseTrain) buildCumulative() []int {
	if w.cumulative != nil {
		return w.cumulative
	}
	n := w.src.PulseCount()
	cum := make([]int, n+1)
	for i := 0; i < n; i++ {
		cum[i+1] = cum[i] + w.src.PulseAt(i).SampleCount(w.cfg)
	}
	w.cumulative = cum
	return cum
}

func (w *pulseTrain) totalSamples() int {
	cum := w.buildCumulative()
	return cum[len(cum)-1]
}

func (w *pulseTrain) TotalDuration() time.Duration {
	total := w.totalSamples()
	return time.Duration(float64(total) / float64(w.cfg.SampleRate) * float64(time.Second))
}

func (w *pulseTrain) TrySeek(pos time.Duration) bool {
	target := int(pos.Seconds() * float64(w.cfg.SampleRate))
	cum := w.buildCumulative()
	total := cum[len(cum)-1]
	if pos == w.TotalDuration() {
		// TotalDuration truncates at nanosecond granularity, so converting
		// it back would land one sample short of the end.
		target = total
	}
	if target < 0 || target > total {
		return false
	}
	idx := searchPrefix(cum, target)
	w.pulseIdx = idx
	if idx < len(cum)-1 {
		w.sampleIdx = target - cum[idx]
	} else {
		w.sampleIdx = 0
	}
	w.started = target > 0
	return true
}

// searchPrefix returns the largest i such that cum[i] <= target.
func searchPrefix(cum []int, target int) int {
	lo, hi := 0, len(cum)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if cum[mid] <= target {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func (w *pulseTrain) Clone() *pulseTrain {
	return &pulseTrain{cfg: w.cfg, src: w.src, cumulative: w.cumulative}
}

func (w *pulseTrain) Started() bool { return w.started }

func (w *pulseTrain) Visualise(width int) string {
	if width <= 0 {
		return ""
	}
	n := w.src.PulseCount()
	if n == 0 {
		return ""
	}
	step := n - w.pulseIdx
	if step <= 0 {
		return ""
	}
	perChar := step / width
	if perChar < 1 {
		perChar = 1
	}
	out := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		idx := w.pulseIdx + i*perChar
		if idx >= n {
			break
		}
		if w.src.PulseAt(idx).High {
			out = append(out, '▀')
		} else {
			out = append(out, '▄')
		}
	}
	return string(out)
}
