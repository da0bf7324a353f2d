package tzx

import (
	"retroio/storage"
	"retroio/waveform"
)

// Block is the common contract every TZX block-kind decoder satisfies: read
// its own body from the stream (the tag byte has already been consumed),
// describe itself for the inspect runner, and produce the waveform segments
// (if any) it contributes to playback.
type Block interface {
	// Read parses the block body from r. The block-kind tag has already
	// been consumed by the caller.
	Read(r *storage.Reader) error

	// Kind returns this block's BlockKind tag.
	Kind() BlockKind

	// Describe returns a short, one-line human-readable summary.
	Describe() string

	// Extended returns additional lines of detail for the inspect runner's
	// verbose mode (archive-info entries, hardware-type entries, payload
	// hex, pilot symbol tables, ...). Empty for blocks with nothing more
	// to add.
	Extended() []string

	// Waveforms returns the ordered list of waveform segments this block
	// contributes to playback, given the incoming signal polarity.
	Waveforms(cfg waveform.Config, startHigh bool) []waveform.Waveform

	// NextStartHigh returns the polarity the following block's first pulse
	// must start from, given this block's starting polarity.
	NextStartHigh(startHigh bool) bool
}

// DataBytesProvider is implemented by block kinds that carry a raw data
// payload (StandardSpeedData, TurboSpeedData, PureData, DirectRecording),
// letting the play TUI's hex-dump pane read the current data byte without
// a type switch over every block kind.
type DataBytesProvider interface {
	DataBytes() []byte
}

// newBlockForKind constructs the zero-value Block implementation for a
// known tag, ready for Read.
func newBlockForKind(kind BlockKind) Block {
	switch kind {
	case KindStandardSpeedData:
		return &StandardSpeedData{}
	case KindTurboSpeedData:
		return &TurboSpeedData{}
	case KindPureTone:
		return &PureTone{}
	case KindPulseSequence:
		return &PulseSequenceBlock{}
	case KindPureData:
		return &PureData{}
	case KindDirectRecording:
		return &DirectRecording{}
	case KindC64ROMTypeData:
		return &C64ROMTypeData{}
	case KindC64TurboTapeData:
		return &C64TurboTapeData{}
	case KindCSWRecording:
		return &CSWRecording{}
	case KindGeneralizedData:
		return &GeneralizedData{}
	case KindPauseOrStopTape:
		return &PauseOrStopTape{}
	case KindGroupStart:
		return &GroupStart{}
	case KindGroupEnd:
		return &GroupEnd{}
	case KindJumpToBlock:
		return &JumpToBlock{}
	case KindLoopStart:
		return &LoopStart{}
	case KindLoopEnd:
		return &LoopEnd{}
	case KindCallSequence:
		return &CallSequence{}
	case KindReturnFromSequence:
		return &ReturnFromSequence{}
	case KindSelectBlock:
		return &SelectBlock{}
	case KindStopTapeIf48K:
		return &StopTapeIf48K{}
	case KindSetSignalLevel:
		return &SetSignalLevel{}
	case KindText:
		return &TextDescription{}
	case KindMessage:
		return &Message{}
	case KindArchiveInfo:
		return &ArchiveInfo{}
	case KindHardwareType:
		return &HardwareType{}
	case KindEmulationInfo:
		return &EmulationInfo{}
	case KindCustomInfoBlock:
		return &CustomInfoBlock{}
	case KindSnapshotBlock:
		return &SnapshotBlock{}
	case KindGlueBlock:
		return &GlueBlock{}
	default:
		return nil
	}
}

// decodeBlockKind is the RecoveryEnum decode function for block tags: a pure
// membership test against knownKinds, consuming nothing beyond the tag byte
// already read. Body parsing (and its own, separately-handled truncation
// failure mode) happens afterwards in ReadBlocks, kept apart from "tag not
// recognised at all" so the two get distinct log messages and recovery
// behaviour.
func decodeBlockKind(tag byte, r *storage.Reader) (BlockKind, bool) {
	kind, ok := knownKinds[tag]
	return kind, ok
}
