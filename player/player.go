package player

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"retroio/tzx"
	"retroio/waveform"
)

// QMax bounds how many waveform segments the Player keeps queued ahead of
// the sink at once.
const QMax = 1000

// State is the Player's playback state machine: Idle -> Playing <-> Paused
// -> Finished.
type State uint8

const (
	Idle State = iota
	Playing
	Paused
	Finished
)

func (s State) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Finished:
		return "Finished"
	default:
		return "Idle"
	}
}

// Player builds the flattened waveform list for a block sequence and feeds
// it to a Sink in real time, tracking elapsed time and supporting pause,
// resume, and block-level seek.
type Player struct {
	mu sync.Mutex

	cfg  waveform.Config
	sink Sink

	blocks []tzx.Block

	// live holds the instances handed to the sink, whose iterators advance
	// as playback consumes them; pristine holds unconsumed clones used to
	// rebuild the queue after a seek. The foreground
	// thread never reads a live instance once enqueued; WaveformAt hands
	// out fresh clones instead.
	live     []waveform.Waveform
	pristine []waveform.Waveform

	waveformDurations  []time.Duration
	blockStartWaveform []int // index into live/pristine where block i begins
	blockDurations     []time.Duration
	totalDuration      time.Duration

	state   State
	seeking bool

	startInstant         time.Time
	accumulatedPlayback  time.Duration
	currentBlockIndex    int
	currentWaveformIndex int
	queuedAheadIndex     int
}

// New builds a Player from a parsed block sequence, ready to Play. It
// pre-queues up to QMax waveforms onto sink.
func New(blocks []tzx.Block, sink Sink, cfg waveform.Config) *Player {
	p := &Player{cfg: cfg, sink: sink, blocks: blocks}
	p.build()
	p.refillQueue()
	return p
}

// build flattens every block's waveforms into the live/pristine lists,
// tracking inter-block polarity continuity and accumulating durations.
func (p *Player) build() {
	currentPolarity := true // a tape's first pulse starts high

	for _, block := range p.blocks {
		p.blockStartWaveform = append(p.blockStartWaveform, len(p.live))
		waveforms := block.Waveforms(p.cfg, currentPolarity)

		var blockDuration time.Duration
		for _, w := range waveforms {
			p.live = append(p.live, w)
			p.pristine = append(p.pristine, w.Clone())
			d := w.TotalDuration()
			p.waveformDurations = append(p.waveformDurations, d)
			blockDuration += d
		}
		p.blockDurations = append(p.blockDurations, blockDuration)
		p.totalDuration += blockDuration

		currentPolarity = block.NextStartHigh(currentPolarity)
	}
}

// refillQueue enqueues live instances while under QMax ahead of the
// current waveform index and within the list's bounds.
func (p *Player) refillQueue() {
	for p.queuedAheadIndex < p.currentWaveformIndex+QMax && p.queuedAheadIndex < len(p.pristine) {
		if err := p.sink.Enqueue(p.live[p.queuedAheadIndex]); err != nil {
			log.Error("player: failed to enqueue waveform", "index", p.queuedAheadIndex, "err", err)
			return
		}
		p.queuedAheadIndex++
	}
}

// Play transitions Idle/Paused -> Playing. From Idle it compensates for the
// sink's pre-roll latency; from Paused it resumes accumulation from where
// it left off.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case Idle:
		p.accumulatedPlayback = 0
		p.startInstant = time.Now().Add(p.sink.BufferDelay())
	case Paused:
		p.startInstant = time.Now()
	default:
		return
	}
	p.sink.Unpause()
	p.state = Playing
}

// Pause transitions Playing -> Paused, freezing accumulated playback
// duration.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Playing {
		return
	}
	p.accumulatedPlayback += time.Since(p.startInstant)
	p.sink.Pause()
	p.state = Paused
}

// Elapsed returns accumulated + (running since start_instant if playing).
func (p *Player) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.elapsedLocked()
}

func (p *Player) elapsedLocked() time.Duration {
	if p.state != Playing {
		return p.accumulatedPlayback
	}
	return p.accumulatedPlayback + time.Since(p.startInstant)
}

// TotalDuration returns the full tape's wall-clock length.
func (p *Player) TotalDuration() time.Duration { return p.totalDuration }

// State returns the player's current lifecycle state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// CurrentIndices returns the current block and waveform index.
func (p *Player) CurrentIndices() (block, waveformIdx int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentBlockIndex, p.currentWaveformIndex
}

// Tick recomputes the current block/waveform indices from elapsed time,
// refills the sink queue, and marks Finished once the sink reports empty.
// Intended to be called every <=10ms from the foreground control loop.
func (p *Player) Tick() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == Idle || p.state == Finished || p.seeking {
		return
	}

	elapsed := p.elapsedLocked()

	var cum time.Duration
	blockIdx := 0
	for i, d := range p.blockDurations {
		if cum+d > elapsed {
			blockIdx = i
			break
		}
		cum += d
		blockIdx = i + 1
	}
	p.currentBlockIndex = blockIdx

	cum = 0
	waveIdx := 0
	for i, d := range p.waveformDurations {
		if cum+d > elapsed {
			waveIdx = i
			break
		}
		cum += d
		waveIdx = i + 1
	}
	p.currentWaveformIndex = waveIdx

	p.refillQueue()

	if p.state == Playing && p.sink.Empty() && p.queuedAheadIndex >= len(p.pristine) {
		p.state = Finished
	}
}

// SeekToBlock pauses, clears the sink, repositions accumulated playback to
// the start of block n, and re-enqueues up to QMax waveforms from there. It
// does not auto-resume. A reentrancy flag prevents Tick from racing a seek
// in progress.
func (p *Player) SeekToBlock(n int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n < 0 || n >= len(p.blocks) {
		return errors.Errorf("player: block index %d out of range", n)
	}

	p.seeking = true
	defer func() { p.seeking = false }()

	p.sink.Pause()
	p.sink.Clear()

	var accumulated time.Duration
	for i := 0; i < n; i++ {
		accumulated += p.blockDurations[i]
	}
	p.accumulatedPlayback = accumulated
	p.startInstant = time.Now()

	p.currentBlockIndex = n
	p.currentWaveformIndex = p.blockStartWaveform[n]
	p.queuedAheadIndex = p.currentWaveformIndex

	// Rebuild live/pristine from this point with fresh clones, so a
	// waveform already partially consumed before the seek doesn't leak
	// its old cursor position into the new queue.
	for i := p.currentWaveformIndex; i < len(p.pristine); i++ {
		p.live[i] = p.pristine[i].Clone()
	}

	p.refillQueue()
	p.state = Paused
	return nil
}

// Finish sleeps for bufferDelay+10ms to let the sink drain, then stops it.
func (p *Player) Finish() {
	time.Sleep(p.sink.BufferDelay() + 10*time.Millisecond)
	p.mu.Lock()
	p.sink.Pause()
	p.state = Finished
	p.mu.Unlock()
}

// WaveformAt returns an independent clone of waveform segment i, its
// cursor positioned at the player's current elapsed offset within that
// segment. The audio thread drains the live instance; the TUI's Visualise
// and PayloadPosition calls run against this clone, so the two threads
// never share a mutable Waveform.
func (p *Player) WaveformAt(i int) waveform.Waveform {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.pristine) {
		return waveform.Empty{}
	}
	clone := p.pristine[i].Clone()
	var start time.Duration
	for _, d := range p.waveformDurations[:i] {
		start += d
	}
	if off := p.elapsedLocked() - start; off > 0 {
		clone.TrySeek(off)
	}
	return clone
}

// BlockCount returns the number of blocks in the playlist.
func (p *Player) BlockCount() int { return len(p.blocks) }

// WaveformCount returns the number of flattened waveform segments.
func (p *Player) WaveformCount() int { return len(p.live) }

// BlockAt returns the block at index i, for the TUI's per-block title and
// hex-dump display.
func (p *Player) BlockAt(i int) tzx.Block {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.blocks) {
		return nil
	}
	return p.blocks[i]
}

// BlockBounds returns the cumulative [start, end) elapsed-time range block i
// occupies, used by the TUI to compute that block's own elapsed/remaining
// pair from the tape-wide elapsed time.
func (p *Player) BlockBounds(i int) (start, end time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.blockDurations) {
		return 0, 0
	}
	for _, d := range p.blockDurations[:i] {
		start += d
	}
	return start, start + p.blockDurations[i]
}

// WaveformBounds returns the cumulative [start, end) elapsed-time range
// waveform segment i occupies.
func (p *Player) WaveformBounds(i int) (start, end time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.waveformDurations) {
		return 0, 0
	}
	for _, d := range p.waveformDurations[:i] {
		start += d
	}
	return start, start + p.waveformDurations[i]
}
