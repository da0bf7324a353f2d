package waveform

// directSource is the one-pulse-per-bit pulseSource for Direct Recording
// waveforms: each bit of the payload becomes exactly one pulse of a fixed
// length, high when the bit is set. Because every pulse shares the same
// length, the generic pulseTrain's cumulative-sum seek is already cheap;
// no popcount acceleration is needed here.
type directSource struct {
	payload       *Payload
	sampleTCycles uint16
}

func (s directSource) PulseCount() int { return s.payload.TotalBits() }

func (s directSource) PulseAt(i int) Pulse {
	return Pulse{LengthTCycles: s.sampleTCycles, High: s.payload.Bit(i)}
}

// Direct is the Direct Recording Waveform (TZX block 0x15 / CDT direct
// playback): a raw one-bit-per-sample-group bitstream sampled at a caller
// supplied rate, rather than a pair of timed pulse-widths per bit.
type Direct struct {
	*pulseTrain
	src directSource
}

// NewDirect builds a Direct Recording waveform over payload, where each bit
// occupies sampleTCycles t-cycles.
func NewDirect(cfg Config, payload *Payload, sampleTCycles uint16) *Direct {
	src := directSource{payload: payload, sampleTCycles: sampleTCycles}
	return &Direct{pulseTrain: newPulseTrain(cfg, src), src: src}
}

func (w *Direct) Clone() Waveform {
	return &Direct{pulseTrain: w.pulseTrain.Clone(), src: w.src}
}

// PayloadPosition returns the bit-group (byte) index the cursor currently
// sits within.
func (w *Direct) PayloadPosition() (int, bool) {
	return w.pulseTrain.pulseIdx / 8, true
}

// DirectNextStartHigh is unused by Direct Recording: every bit fully
// determines its own pulse's polarity, and tzx.DirectRecording.NextStartHigh
// derives the following block's polarity from the last bit instead. Kept
// only so callers can treat all waveform constructors uniformly; it always
// returns the input unchanged.
func DirectNextStartHigh(startHigh bool) bool { return startHigh }
