package waveform

// Generalized is the multi-pulse-symbol Waveform produced by GeneralizedData
// blocks. Symbol keys are decoded upstream (by the block
// decoder, which owns the symbol-table and RLE parsing) into a plain list of
// symbol-table indices; this type turns that key list plus the resolved
// SymbolDefinition table into pulses.
//
// Because each symbol can contribute a different number of pulses, and the
// polarity of a symbol's first pulse depends on the polarity the previous
// symbol left off at, the pulse list is resolved eagerly at construction
// time rather than lazily per pulseSource lookup; generalized blocks are
// bounded by the tape file's own size, so this is cheap in practice.
type Generalized struct {
	*pulseTrain
}

// NewGeneralized builds a Generalized waveform from a resolved symbol table
// and the sequence of symbol-table indices the data stream selected, keeping
// polarity continuity across symbols starting from startHigh.
func NewGeneralized(cfg Config, table []Symbol, keys []int, startHigh bool) *Generalized {
	pulses, _ := resolveGeneralizedPulses(table, keys, startHigh)
	return &Generalized{newPulseTrain(cfg, sliceSource(pulses))}
}

// GeneralizedEndHigh reports the polarity the last pulse of this symbol
// stream leaves the signal at, without building a playable Waveform. The
// block decoder uses it to chain a pilot symbol stream's ending polarity
// into the data symbol stream that follows within the same block, the same
// way Pilot/Sync chain into Data elsewhere.
func GeneralizedEndHigh(table []Symbol, keys []int, startHigh bool) bool {
	_, end := resolveGeneralizedPulses(table, keys, startHigh)
	return end
}

func resolveGeneralizedPulses(table []Symbol, keys []int, startHigh bool) ([]Pulse, bool) {
	pulses := make([]Pulse, 0, len(keys)*2)
	prevHigh := startHigh
	for _, key := range keys {
		if key < 0 || key >= len(table) {
			continue
		}
		sym := table[key]
		active := sym.ActivePulses()
		high := sym.FirstPolarity(prevHigh)
		for _, length := range active {
			pulses = append(pulses, Pulse{LengthTCycles: length, High: high})
			high = !high
		}
		if len(active) > 0 {
			prevHigh = pulses[len(pulses)-1].High
		}
	}
	return pulses, prevHigh
}

func (w *Generalized) Clone() Waveform { return &Generalized{w.pulseTrain.Clone()} }

func (w *Generalized) PayloadPosition() (int, bool) { return 0, false }

// GeneralizedNextStartHigh is always true: the block following a
// GeneralizedData block resumes high.
func GeneralizedNextStartHigh() bool { return true }
