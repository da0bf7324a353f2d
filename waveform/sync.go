package waveform

// sliceSource is a pulseSource backed by an explicit, already-polarity-
// resolved slice of pulses. Used for Sync (exactly two pulses) and
// PulseSequence (an arbitrary caller-supplied list).
type sliceSource []Pulse

func (s sliceSource) PulseCount() int { return len(s) }
func (s sliceSource) PulseAt(i int) Pulse { return s[i] }

// Sync is the two-pulse sync Waveform following a pilot tone.
type Sync struct {
	*pulseTrain
}

// NewSync builds the two sync pulses, alternating from startHigh.
func NewSync(cfg Config, first, second uint16, startHigh bool) *Sync {
	src := sliceSource{
		{LengthTCycles: first, High: startHigh},
		{LengthTCycles: second, High: !startHigh},
	}
	return &Sync{newPulseTrain(cfg, src)}
}

func (w *Sync) Clone() Waveform { return &Sync{w.pulseTrain.Clone()} }
func (w *Sync) PayloadPosition() (int, bool) { return 0, false }

// PulseSequence plays an arbitrary list of pulse lengths, alternating
// polarity from a starting level.
type PulseSequence struct {
	*pulseTrain
	count int
}

// NewPulseSequence builds a PulseSequence waveform from explicit lengths,
// alternating polarity starting at startHigh.
func NewPulseSequence(cfg Config, lengths []uint16, startHigh bool) *PulseSequence {
	src := make(sliceSource, len(lengths))
	high := startHigh
	for i, l := range lengths {
		src[i] = Pulse{LengthTCycles: l, High: high}
		high = !high
	}
	return &PulseSequence{pulseTrain: newPulseTrain(cfg, src), count: len(lengths)}
}

func (w *PulseSequence) Clone() Waveform {
	return &PulseSequence{pulseTrain: w.pulseTrain.Clone(), count: w.count}
}
func (w *PulseSequence) PayloadPosition() (int, bool) { return 0, false }

// PulseSequenceNextStartHigh reports the polarity following n alternating pulses from
// startHigh.
func PulseSequenceNextStartHigh(n int, startHigh bool) bool {
	if n%2 == 1 {
		return !startHigh
	}
	return startHigh
}
