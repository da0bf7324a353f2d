package waveform

import "time"

// dataSource is the two-pulses-per-bit pulseSource for Data waveforms:
// pulse i belongs to bit i/2, its length is the bit's zero/one pulse
// length, and polarity alternates every pulse starting from startHigh.
type dataSource struct {
	payload         *Payload
	zeroLen, oneLen uint16
	startHigh       bool
}

func (s dataSource) PulseCount() int { return 2 * s.payload.TotalBits() }

func (s dataSource) PulseAt(i int) Pulse {
	bitIdx := i / 2
	length := s.zeroLen
	if s.payload.Bit(bitIdx) {
		length = s.oneLen
	}
	high := s.startHigh
	if i%2 == 1 {
		high = !high
	}
	return Pulse{LengthTCycles: length, High: high}
}

// Data is the two-level, 1-bit-per-cell data Waveform. It accelerates
// TrySeek with a byte-estimate + popcount shortcut rather than the generic
// pulseTrain's linear prefix-sum scan, since data payloads routinely run
// into the tens of thousands of bytes.
type Data struct {
	*pulseTrain
	src dataSource
}

// NewData builds a Data waveform over payload, with pulse lengths zeroLen
// and oneLen (t-cycles), starting at polarity startHigh.
func NewData(cfg Config, payload *Payload, zeroLen, oneLen uint16, startHigh bool) *Data {
	src := dataSource{payload: payload, zeroLen: zeroLen, oneLen: oneLen, startHigh: startHigh}
	return &Data{pulseTrain: newPulseTrain(cfg, src), src: src}
}

func (w *Data) samplesPerPulse(length uint16) int {
	return Pulse{LengthTCycles: length}.SampleCount(w.cfg)
}

// TrySeek estimates the target byte from the requested fraction of total
// duration, uses the cached popcount over the bytes before it to compute
// the sample count reached in O(1), then walks pulse-by-pulse from there
// to the exact position.
func (w *Data) TrySeek(pos time.Duration) bool {
	total := w.TotalDuration()
	if pos < 0 || pos > total {
		return false
	}
	payload := w.src.payload
	zeroSamples := w.samplesPerPulse(w.src.zeroLen)
	oneSamples := w.samplesPerPulse(w.src.oneLen)

	targetSample := int(pos.Seconds() * float64(w.cfg.SampleRate))
	if pos == total {
		// TotalDuration truncates at nanosecond granularity, so converting
		// it back would land one sample short of the end.
		targetSample = payload.Zeros()*2*zeroSamples + payload.Ones()*2*oneSamples
	}

	byteLen := payload.Len()
	var estByte int
	if total > 0 {
		frac := float64(pos) / float64(total)
		estByte = int(float64(byteLen) * frac)
	}
	// Keep the estimate strictly before the final byte: its unused bits are
	// excluded from the popcount cache, so landing on it would break the
	// samples-at-byte arithmetic below. The pulse walk covers the rest.
	if estByte > byteLen-1 {
		estByte = byteLen - 1
	}
	if estByte < 0 {
		estByte = 0
	}

	onesBefore := payload.PopcountPrefix(estByte)
	zerosBefore := estByte*8 - onesBefore
	samplesAtByte := zerosBefore*2*zeroSamples + onesBefore*2*oneSamples
	pulseAtByte := estByte * 16 // 2 pulses/bit * 8 bits/byte

	// Walk forward or backward pulse-by-pulse from the estimate until the
	// cumulative sample count brackets targetSample.
	pulseIdx := pulseAtByte
	cum := samplesAtByte
	count := w.src.PulseCount()

	for pulseIdx < count && cum < targetSample {
		n := w.src.PulseAt(pulseIdx).SampleCount(w.cfg)
		if cum+n > targetSample {
			break
		}
		cum += n
		pulseIdx++
	}
	for pulseIdx > 0 && cum > targetSample {
		pulseIdx--
		n := w.src.PulseAt(pulseIdx).SampleCount(w.cfg)
		cum -= n
	}

	w.pulseIdxSet(pulseIdx, targetSample-cum)
	w.markStarted(targetSample > 0)
	return true
}

// pulseIdxSet and markStarted reach into the embedded pulseTrain's private
// cursor fields; they live here (same package) rather than exported, since
// only the accelerated-seek variants need direct cursor control.
func (w *Data) pulseIdxSet(pulseIdx, sampleOffset int) {
	w.pulseTrain.pulseIdx = pulseIdx
	w.pulseTrain.sampleIdx = sampleOffset
}

func (w *Data) markStarted(v bool) {
	w.pulseTrain.started = v
}

func (w *Data) Clone() Waveform {
	return &Data{pulseTrain: w.pulseTrain.Clone(), src: w.src}
}

// PayloadPosition returns the byte offset the cursor currently sits within,
// for the TUI's hex-dump of the current data byte.
func (w *Data) PayloadPosition() (int, bool) {
	return w.pulseTrain.pulseIdx / 16, true
}

// DataNextStartHigh reports the polarity following a data waveform's last
// pulse.
func DataNextStartHigh(payload *Payload, startHigh bool) bool {
	total := 2 * payload.TotalBits()
	if total%2 == 1 {
		return !startHigh
	}
	return startHigh
}
