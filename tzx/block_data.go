package tzx

import (
	"fmt"

	"retroio/spectrum/header"
	"retroio/storage"
	"retroio/waveform"
)

// Canonical pulse lengths (t-cycles) used by the ROM-standard loader, as
// emitted by StandardSpeedData.
const (
	standardPilotPulse     = 2168
	standardPilotCountHdr  = 8063
	standardPilotCountData = 3223
	standardSync1          = 667
	standardSync2          = 735
	standardZeroPulse      = 855
	standardOnePulse       = 1710
)

// StandardSpeedData (0x10): pause, length, data. Pilot pulse-count depends
// on whether the payload looks like a header block (data[0] < 128) or a
// data block.
type StandardSpeedData struct {
	Pause  uint16
	Length uint16
	Data   []byte
}

func (b *StandardSpeedData) Kind() BlockKind { return KindStandardSpeedData }

func (b *StandardSpeedData) Read(r *storage.Reader) error {
	var err error
	if b.Pause, err = r.ReadShort(); err != nil {
		return err
	}
	if b.Length, err = r.ReadShort(); err != nil {
		return err
	}
	if b.Data, err = r.ReadBytes(int(b.Length)); err != nil {
		return err
	}
	return nil
}

func (b *StandardSpeedData) pilotCount() int {
	if len(b.Data) > 0 && b.Data[0] < 128 {
		return standardPilotCountHdr
	}
	return standardPilotCountData
}

func (b *StandardSpeedData) Describe() string {
	kind := "data"
	if len(b.Data) > 0 && b.Data[0] < 128 {
		kind = "header"
	}
	return fmt.Sprintf("Standard Speed Data: %d bytes (%s), pause %dms", b.Length, kind, b.Pause)
}

func (b *StandardSpeedData) DataBytes() []byte { return b.Data }

func (b *StandardSpeedData) Extended() []string {
	var lines []string
	if preview, ok := header.Parse(b.Data); ok {
		lines = append(lines, preview.String())
	}
	lines = append(lines, cpcExtended(b.Data)...)
	return lines
}

func (b *StandardSpeedData) Waveforms(cfg waveform.Config, startHigh bool) []waveform.Waveform {
	payload := waveform.NewPayload(b.Data, 8)
	dataHigh := dataStartHigh(startHigh, b.pilotCount())
	return []waveform.Waveform{
		waveform.NewPilot(cfg, standardPilotPulse, b.pilotCount(), startHigh),
		waveform.NewSync(cfg, standardSync1, standardSync2, dataHigh),
		waveform.NewData(cfg, payload, standardZeroPulse, standardOnePulse, dataHigh),
		waveform.NewPause(cfg, b.Pause),
	}
}

func (b *StandardSpeedData) NextStartHigh(startHigh bool) bool { return true }

// TurboSpeedData (0x11): the fully-parameterised pilot/sync/data block used
// by custom turbo loaders.
type TurboSpeedData struct {
	PulsePilot uint16
	PulseSync1 uint16
	PulseSync2 uint16
	PulseZero  uint16
	PulseOne   uint16
	TonePilot  uint16
	UsedBits   uint8
	Pause      uint16
	Length     uint32
	Data       []byte
}

func (b *TurboSpeedData) Kind() BlockKind { return KindTurboSpeedData }

func (b *TurboSpeedData) Read(r *storage.Reader) error {
	var err error
	if b.PulsePilot, err = r.ReadShort(); err != nil {
		return err
	}
	if b.PulseSync1, err = r.ReadShort(); err != nil {
		return err
	}
	if b.PulseSync2, err = r.ReadShort(); err != nil {
		return err
	}
	if b.PulseZero, err = r.ReadShort(); err != nil {
		return err
	}
	if b.PulseOne, err = r.ReadShort(); err != nil {
		return err
	}
	if b.TonePilot, err = r.ReadShort(); err != nil {
		return err
	}
	if b.UsedBits, err = r.ReadByte(); err != nil {
		return err
	}
	if b.Pause, err = r.ReadShort(); err != nil {
		return err
	}
	if b.Length, err = r.ReadUint24(); err != nil {
		return err
	}
	if b.Data, err = r.ReadBytes(int(b.Length)); err != nil {
		return err
	}
	return nil
}

func (b *TurboSpeedData) DataBytes() []byte { return b.Data }

func (b *TurboSpeedData) Describe() string {
	return fmt.Sprintf("Turbo Speed Data: %d bytes, pause %dms", b.Length, b.Pause)
}

func (b *TurboSpeedData) Extended() []string { return nil }

// dataStartHigh is the polarity the data portion of a pilot+sync+data block
// resumes at after its pilot tone, flipped per pulse-count parity.
func dataStartHigh(startHigh bool, toneCount int) bool {
	return waveform.PilotNextStartHigh(toneCount, startHigh)
}

func (b *TurboSpeedData) Waveforms(cfg waveform.Config, startHigh bool) []waveform.Waveform {
	payload := waveform.NewPayload(b.Data, b.UsedBits)
	dataHigh := dataStartHigh(startHigh, int(b.TonePilot))
	return []waveform.Waveform{
		waveform.NewPilot(cfg, b.PulsePilot, int(b.TonePilot), startHigh),
		waveform.NewSync(cfg, b.PulseSync1, b.PulseSync2, dataHigh),
		waveform.NewData(cfg, payload, b.PulseZero, b.PulseOne, dataHigh),
		waveform.NewPause(cfg, b.Pause),
	}
}

func (b *TurboSpeedData) NextStartHigh(startHigh bool) bool {
	if b.Pause > 0 {
		return true
	}
	return dataStartHigh(startHigh, int(b.TonePilot))
}

// PureTone (0x12): a pilot-only tone of a given pulse length and count.
type PureTone struct {
	PulseLength uint16
	PulseCount  uint16
}

func (b *PureTone) Kind() BlockKind { return KindPureTone }

func (b *PureTone) Read(r *storage.Reader) error {
	var err error
	if b.PulseLength, err = r.ReadShort(); err != nil {
		return err
	}
	if b.PulseCount, err = r.ReadShort(); err != nil {
		return err
	}
	return nil
}

func (b *PureTone) Describe() string {
	return fmt.Sprintf("Pure Tone: %d pulses of %d t-states", b.PulseCount, b.PulseLength)
}

func (b *PureTone) Extended() []string { return nil }

func (b *PureTone) Waveforms(cfg waveform.Config, startHigh bool) []waveform.Waveform {
	return []waveform.Waveform{waveform.NewPilot(cfg, b.PulseLength, int(b.PulseCount), startHigh)}
}

func (b *PureTone) NextStartHigh(startHigh bool) bool {
	return waveform.PilotNextStartHigh(int(b.PulseCount), startHigh)
}

// PulseSequenceBlock (0x13): an explicit list of pulse lengths.
type PulseSequenceBlock struct {
	PulseLengths []uint16
}

func (b *PulseSequenceBlock) Kind() BlockKind { return KindPulseSequence }

func (b *PulseSequenceBlock) Read(r *storage.Reader) error {
	n, err := r.ReadByte()
	if err != nil {
		return err
	}
	b.PulseLengths = make([]uint16, n)
	for i := range b.PulseLengths {
		if b.PulseLengths[i], err = r.ReadShort(); err != nil {
			return err
		}
	}
	return nil
}

func (b *PulseSequenceBlock) Describe() string {
	return fmt.Sprintf("Pulse Sequence: %d pulses", len(b.PulseLengths))
}

func (b *PulseSequenceBlock) Extended() []string { return nil }

func (b *PulseSequenceBlock) Waveforms(cfg waveform.Config, startHigh bool) []waveform.Waveform {
	return []waveform.Waveform{waveform.NewPulseSequence(cfg, b.PulseLengths, startHigh)}
}

func (b *PulseSequenceBlock) NextStartHigh(startHigh bool) bool {
	return waveform.PulseSequenceNextStartHigh(len(b.PulseLengths), startHigh)
}

// PureData (0x14): a Data waveform with no pilot/sync, parameterised pulse
// widths.
type PureData struct {
	PulseZero uint16
	PulseOne  uint16
	UsedBits  uint8
	Pause     uint16
	Length    uint32
	Data      []byte
}

func (b *PureData) Kind() BlockKind { return KindPureData }

func (b *PureData) Read(r *storage.Reader) error {
	var err error
	if b.PulseZero, err = r.ReadShort(); err != nil {
		return err
	}
	if b.PulseOne, err = r.ReadShort(); err != nil {
		return err
	}
	if b.UsedBits, err = r.ReadByte(); err != nil {
		return err
	}
	if b.Pause, err = r.ReadShort(); err != nil {
		return err
	}
	if b.Length, err = r.ReadUint24(); err != nil {
		return err
	}
	if b.Data, err = r.ReadBytes(int(b.Length)); err != nil {
		return err
	}
	return nil
}

func (b *PureData) DataBytes() []byte { return b.Data }

func (b *PureData) Describe() string {
	return fmt.Sprintf("Pure Data: %d bytes, pause %dms", b.Length, b.Pause)
}

func (b *PureData) Extended() []string { return nil }

func (b *PureData) Waveforms(cfg waveform.Config, startHigh bool) []waveform.Waveform {
	payload := waveform.NewPayload(b.Data, b.UsedBits)
	return []waveform.Waveform{
		waveform.NewData(cfg, payload, b.PulseZero, b.PulseOne, startHigh),
		waveform.NewPause(cfg, b.Pause),
	}
}

func (b *PureData) NextStartHigh(startHigh bool) bool {
	if b.Pause > 0 {
		return true
	}
	return startHigh
}

// DirectRecording (0x15): a raw one-bit-per-sample bitstream.
type DirectRecording struct {
	SampleTCycles uint16
	Pause         uint16
	UsedBits      uint8
	Length        uint32
	Data          []byte
}

func (b *DirectRecording) Kind() BlockKind { return KindDirectRecording }

func (b *DirectRecording) Read(r *storage.Reader) error {
	var err error
	if b.SampleTCycles, err = r.ReadShort(); err != nil {
		return err
	}
	if b.Pause, err = r.ReadShort(); err != nil {
		return err
	}
	if b.UsedBits, err = r.ReadByte(); err != nil {
		return err
	}
	if b.Length, err = r.ReadUint24(); err != nil {
		return err
	}
	if b.Data, err = r.ReadBytes(int(b.Length)); err != nil {
		return err
	}
	return nil
}

func (b *DirectRecording) DataBytes() []byte { return b.Data }

func (b *DirectRecording) Describe() string {
	return fmt.Sprintf("Direct Recording: %d t-states/sample, %d bytes", b.SampleTCycles, b.Length)
}

func (b *DirectRecording) Extended() []string { return nil }

func (b *DirectRecording) Waveforms(cfg waveform.Config, startHigh bool) []waveform.Waveform {
	payload := waveform.NewPayload(b.Data, b.UsedBits)
	return []waveform.Waveform{
		waveform.NewDirect(cfg, payload, b.SampleTCycles),
		waveform.NewPause(cfg, b.Pause),
	}
}

func (b *DirectRecording) lastBit() bool {
	payload := waveform.NewPayload(b.Data, b.UsedBits)
	if payload.TotalBits() == 0 {
		return false
	}
	return payload.Bit(payload.TotalBits() - 1)
}

func (b *DirectRecording) NextStartHigh(startHigh bool) bool {
	if b.Pause > 0 {
		return true
	}
	return !b.lastBit()
}

// CSWRecording (0x18) carries a compressed waveform (RLE or Z-RLE). Decoding
// compressed audio codecs is outside scope; the block is retained as opaque
// metadata with an Empty waveform.
type CSWRecording struct {
	Length uint32
	Data   []byte
}

func (b *CSWRecording) Kind() BlockKind { return KindCSWRecording }

func (b *CSWRecording) Read(r *storage.Reader) error {
	var err error
	if b.Length, err = r.ReadLong(); err != nil {
		return err
	}
	if b.Data, err = r.ReadBytes(int(b.Length)); err != nil {
		return err
	}
	return nil
}

func (b *CSWRecording) Describe() string {
	return fmt.Sprintf("CSW Recording: %d bytes (compressed, not decoded)", b.Length)
}

func (b *CSWRecording) Extended() []string { return nil }

func (b *CSWRecording) Waveforms(cfg waveform.Config, startHigh bool) []waveform.Waveform {
	return []waveform.Waveform{waveform.Empty{}}
}

func (b *CSWRecording) NextStartHigh(startHigh bool) bool { return startHigh }
