package waveform

// pilotSource produces `count` identical-length pulses alternating polarity,
// starting at startHigh.
type pilotSource struct {
	length    uint16
	count     int
	startHigh bool
}

func (s pilotSource) PulseCount() int { return s.count }

func (s pilotSource) PulseAt(i int) Pulse {
	high := s.startHigh
	if i%2 == 1 {
		high = !high
	}
	return Pulse{LengthTCycles: s.length, High: high}
}

// Pilot is the pilot-tone Waveform: a run of identical pulses alternating
// polarity, as emitted by StandardSpeedData, TurboSpeedData and PureTone.
// GeneralizedData builds its pilot from symbols as a Generalized waveform.
type Pilot struct {
	*pulseTrain
}

// NewPilot builds a Pilot waveform of `count` pulses of `length` t-cycles,
// starting at polarity startHigh.
func NewPilot(cfg Config, length uint16, count int, startHigh bool) *Pilot {
	return &Pilot{newPulseTrain(cfg, pilotSource{length: length, count: count, startHigh: startHigh})}
}

func (w *Pilot) Clone() Waveform { return &Pilot{w.pulseTrain.Clone()} }

func (w *Pilot) PayloadPosition() (int, bool) { return 0, false }

// PilotNextStartHigh reports the polarity of the pulse that would follow a
// pilot tone of count pulses, i.e. startHigh flipped if count is odd.
func PilotNextStartHigh(count int, startHigh bool) bool {
	if count%2 == 1 {
		return !startHigh
	}
	return startHigh
}
