package tzx

import (
	"fmt"

	"retroio/storage"
	"retroio/waveform"
)

// PauseOrStopTape (0x20): a pause, or (when Pause==0) a "stop the tape"
// marker understood by real players as "wait for the user".
type PauseOrStopTape struct {
	Pause uint16
}

func (b *PauseOrStopTape) Kind() BlockKind { return KindPauseOrStopTape }

func (b *PauseOrStopTape) Read(r *storage.Reader) error {
	var err error
	b.Pause, err = r.ReadShort()
	return err
}

func (b *PauseOrStopTape) Describe() string {
	if b.Pause == 0 {
		return "Stop The Tape command"
	}
	return fmt.Sprintf("Pause: %dms", b.Pause)
}

func (b *PauseOrStopTape) Extended() []string { return nil }

func (b *PauseOrStopTape) Waveforms(cfg waveform.Config, startHigh bool) []waveform.Waveform {
	return []waveform.Waveform{waveform.NewPause(cfg, b.Pause)}
}

func (b *PauseOrStopTape) NextStartHigh(startHigh bool) bool { return startHigh }

// metadataOnlyBlock is embedded by every block kind below whose body carries
// no audio content of its own: they all contribute a single Empty waveform
// and leave polarity unchanged.
type metadataOnlyBlock struct{}

func (metadataOnlyBlock) Extended() []string { return nil }

func (metadataOnlyBlock) Waveforms(cfg waveform.Config, startHigh bool) []waveform.Waveform {
	return []waveform.Waveform{waveform.Empty{}}
}

func (metadataOnlyBlock) NextStartHigh(startHigh bool) bool { return startHigh }

// GroupStart (0x21): a named marker for TUI/inspect grouping.
type GroupStart struct {
	metadataOnlyBlock
	Name string
}

func (b *GroupStart) Kind() BlockKind { return KindGroupStart }

func (b *GroupStart) Read(r *storage.Reader) error {
	n, err := r.ReadByte()
	if err != nil {
		return err
	}
	name, err := r.ReadBytes(int(n))
	if err != nil {
		return err
	}
	b.Name = string(name)
	return nil
}

func (b *GroupStart) Describe() string { return fmt.Sprintf("Group Start: %q", b.Name) }

// GroupEnd (0x22): closes the most recent GroupStart.
type GroupEnd struct{ metadataOnlyBlock }

func (b *GroupEnd) Kind() BlockKind { return KindGroupEnd }
func (b *GroupEnd) Read(r *storage.Reader) error { return nil }
func (b *GroupEnd) Describe() string { return "Group End" }

// JumpToBlock (0x23): a relative jump offset for looping players. The decoder
// only preserves the offset; the Player plays blocks in tape order and does
// not follow the jump.
type JumpToBlock struct {
	metadataOnlyBlock
	Offset int16
}

func (b *JumpToBlock) Kind() BlockKind { return KindJumpToBlock }

func (b *JumpToBlock) Read(r *storage.Reader) error {
	v, err := r.ReadShort()
	b.Offset = int16(v)
	return err
}

func (b *JumpToBlock) Describe() string { return fmt.Sprintf("Jump To Block: relative %+d", b.Offset) }

// LoopStart (0x24): repeat the following blocks Count times.
type LoopStart struct {
	metadataOnlyBlock
	Count uint16
}

func (b *LoopStart) Kind() BlockKind { return KindLoopStart }

func (b *LoopStart) Read(r *storage.Reader) error {
	var err error
	b.Count, err = r.ReadShort()
	return err
}

func (b *LoopStart) Describe() string { return fmt.Sprintf("Loop Start: x%d", b.Count) }

// LoopEnd (0x25): closes the most recent LoopStart.
type LoopEnd struct{ metadataOnlyBlock }

func (b *LoopEnd) Kind() BlockKind { return KindLoopEnd }
func (b *LoopEnd) Read(r *storage.Reader) error { return nil }
func (b *LoopEnd) Describe() string { return "Loop End" }

// CallSequence (0x26): a list of relative block offsets to call in turn.
type CallSequence struct {
	metadataOnlyBlock
	Offsets []int16
}

func (b *CallSequence) Kind() BlockKind { return KindCallSequence }

func (b *CallSequence) Read(r *storage.Reader) error {
	n, err := r.ReadShort()
	if err != nil {
		return err
	}
	b.Offsets = make([]int16, n)
	for i := range b.Offsets {
		v, err := r.ReadShort()
		if err != nil {
			return err
		}
		b.Offsets[i] = int16(v)
	}
	return nil
}

func (b *CallSequence) Describe() string {
	return fmt.Sprintf("Call Sequence: %d calls", len(b.Offsets))
}

// ReturnFromSequence (0x27): no body.
type ReturnFromSequence struct{ metadataOnlyBlock }

func (b *ReturnFromSequence) Kind() BlockKind { return KindReturnFromSequence }
func (b *ReturnFromSequence) Read(r *storage.Reader) error { return nil }
func (b *ReturnFromSequence) Describe() string { return "Return From Sequence" }

// SelectBlock (0x28): a menu of named jump offsets for interactive players.
type SelectBlock struct {
	metadataOnlyBlock
	Selections []Selection
}

type Selection struct {
	Offset int16
	Text   string
}

func (b *SelectBlock) Kind() BlockKind { return KindSelectBlock }

func (b *SelectBlock) Read(r *storage.Reader) error {
	if _, err := r.ReadShort(); err != nil { // block length, unused
		return err
	}
	n, err := r.ReadByte()
	if err != nil {
		return err
	}
	b.Selections = make([]Selection, n)
	for i := range b.Selections {
		off, err := r.ReadShort()
		if err != nil {
			return err
		}
		tlen, err := r.ReadByte()
		if err != nil {
			return err
		}
		text, err := r.ReadBytes(int(tlen))
		if err != nil {
			return err
		}
		b.Selections[i] = Selection{Offset: int16(off), Text: string(text)}
	}
	return nil
}

func (b *SelectBlock) Describe() string {
	return fmt.Sprintf("Select Block: %d options", len(b.Selections))
}

// StopTapeIf48K (0x2A): no body beyond its (always zero) length field.
type StopTapeIf48K struct{ metadataOnlyBlock }

func (b *StopTapeIf48K) Kind() BlockKind { return KindStopTapeIf48K }

func (b *StopTapeIf48K) Read(r *storage.Reader) error {
	_, err := r.ReadLong()
	return err
}

func (b *StopTapeIf48K) Describe() string { return "Stop Tape If In 48K Mode" }

// SetSignalLevel (0x2B): sets the current pulse level without emitting a
// pulse.
type SetSignalLevel struct {
	Level uint8
}

func (b *SetSignalLevel) Kind() BlockKind { return KindSetSignalLevel }

func (b *SetSignalLevel) Read(r *storage.Reader) error {
	if _, err := r.ReadLong(); err != nil { // length, always 1
		return err
	}
	var err error
	b.Level, err = r.ReadByte()
	return err
}

func (b *SetSignalLevel) Describe() string {
	return fmt.Sprintf("Set Signal Level: %d", b.Level)
}

func (b *SetSignalLevel) Extended() []string { return nil }

func (b *SetSignalLevel) Waveforms(cfg waveform.Config, startHigh bool) []waveform.Waveform {
	return []waveform.Waveform{waveform.Empty{}}
}

func (b *SetSignalLevel) NextStartHigh(startHigh bool) bool { return b.Level != 0 }
