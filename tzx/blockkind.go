package tzx

// BlockKind enumerates the defined TZX block-ID tag bytes. Tags the format
// has deprecated are still recognised here (so old files decode cleanly);
// they produce an Empty waveform and a "deprecated" note in their
// description. Tags the format never defined are not in this set.
type BlockKind uint8

const (
	KindStandardSpeedData    BlockKind = 0x10
	KindTurboSpeedData       BlockKind = 0x11
	KindPureTone             BlockKind = 0x12
	KindPulseSequence        BlockKind = 0x13
	KindPureData             BlockKind = 0x14
	KindDirectRecording      BlockKind = 0x15
	KindC64ROMTypeData       BlockKind = 0x16
	KindC64TurboTapeData     BlockKind = 0x17
	KindCSWRecording         BlockKind = 0x18
	KindGeneralizedData      BlockKind = 0x19
	KindPauseOrStopTape      BlockKind = 0x20
	KindGroupStart           BlockKind = 0x21
	KindGroupEnd             BlockKind = 0x22
	KindJumpToBlock          BlockKind = 0x23
	KindLoopStart            BlockKind = 0x24
	KindLoopEnd              BlockKind = 0x25
	KindCallSequence         BlockKind = 0x26
	KindReturnFromSequence   BlockKind = 0x27
	KindSelectBlock          BlockKind = 0x28
	KindStopTapeIf48K        BlockKind = 0x2A
	KindSetSignalLevel       BlockKind = 0x2B
	KindText                 BlockKind = 0x30
	KindMessage              BlockKind = 0x31
	KindArchiveInfo          BlockKind = 0x32
	KindHardwareType         BlockKind = 0x33
	KindEmulationInfo        BlockKind = 0x34
	KindCustomInfoBlock      BlockKind = 0x35
	KindSnapshotBlock        BlockKind = 0x40
	KindInstructionsBlock    BlockKind = 0x5A // deprecated ID, see GlueBlock note below
	KindGlueBlock            BlockKind = 0x5A
)

// knownKinds lists every tag decodeBlockKind recognises. GlueBlock and
// InstructionsBlock share 0x5A in historical TZX format documents; the format
// resolved this by retiring InstructionsBlock, so 0x5A always decodes as
// GlueBlock here.
var knownKinds = map[byte]BlockKind{
	byte(KindStandardSpeedData):  KindStandardSpeedData,
	byte(KindTurboSpeedData):     KindTurboSpeedData,
	byte(KindPureTone):           KindPureTone,
	byte(KindPulseSequence):      KindPulseSequence,
	byte(KindPureData):           KindPureData,
	byte(KindDirectRecording):    KindDirectRecording,
	byte(KindC64ROMTypeData):     KindC64ROMTypeData,
	byte(KindC64TurboTapeData):   KindC64TurboTapeData,
	byte(KindCSWRecording):       KindCSWRecording,
	byte(KindGeneralizedData):    KindGeneralizedData,
	byte(KindPauseOrStopTape):    KindPauseOrStopTape,
	byte(KindGroupStart):         KindGroupStart,
	byte(KindGroupEnd):           KindGroupEnd,
	byte(KindJumpToBlock):        KindJumpToBlock,
	byte(KindLoopStart):          KindLoopStart,
	byte(KindLoopEnd):            KindLoopEnd,
	byte(KindCallSequence):       KindCallSequence,
	byte(KindReturnFromSequence): KindReturnFromSequence,
	byte(KindSelectBlock):        KindSelectBlock,
	byte(KindStopTapeIf48K):      KindStopTapeIf48K,
	byte(KindSetSignalLevel):     KindSetSignalLevel,
	byte(KindText):               KindText,
	byte(KindMessage):            KindMessage,
	byte(KindArchiveInfo):        KindArchiveInfo,
	byte(KindHardwareType):       KindHardwareType,
	byte(KindEmulationInfo):      KindEmulationInfo,
	byte(KindCustomInfoBlock):    KindCustomInfoBlock,
	byte(KindSnapshotBlock):      KindSnapshotBlock,
	byte(KindGlueBlock):          KindGlueBlock,
}

func (k BlockKind) String() string {
	switch k {
	case KindStandardSpeedData:
		return "Standard Speed Data"
	case KindTurboSpeedData:
		return "Turbo Speed Data"
	case KindPureTone:
		return "Pure Tone"
	case KindPulseSequence:
		return "Pulse Sequence"
	case KindPureData:
		return "Pure Data"
	case KindDirectRecording:
		return "Direct Recording"
	case KindC64ROMTypeData:
		return "C64 ROM Type Data"
	case KindC64TurboTapeData:
		return "C64 Turbo Tape Data"
	case KindCSWRecording:
		return "CSW Recording"
	case KindGeneralizedData:
		return "Generalized Data"
	case KindPauseOrStopTape:
		return "Pause (silence) or 'Stop the Tape' command"
	case KindGroupStart:
		return "Group Start"
	case KindGroupEnd:
		return "Group End"
	case KindJumpToBlock:
		return "Jump To Block"
	case KindLoopStart:
		return "Loop Start"
	case KindLoopEnd:
		return "Loop End"
	case KindCallSequence:
		return "Call Sequence"
	case KindReturnFromSequence:
		return "Return From Sequence"
	case KindSelectBlock:
		return "Select Block"
	case KindStopTapeIf48K:
		return "Stop The Tape If In 48K Mode"
	case KindSetSignalLevel:
		return "Set Signal Level"
	case KindText:
		return "Text Description"
	case KindMessage:
		return "Message"
	case KindArchiveInfo:
		return "Archive Info"
	case KindHardwareType:
		return "Hardware Type"
	case KindEmulationInfo:
		return "Emulation Info"
	case KindCustomInfoBlock:
		return "Custom Info Block"
	case KindSnapshotBlock:
		return "Snapshot Block"
	case KindGlueBlock:
		return "Glue Block"
	default:
		return "Unknown"
	}
}
