package tzx

import (
	"fmt"

	"retroio/storage"
)

// TextDescription (0x30): a short free-text annotation, shown by players
// while the following blocks are running.
type TextDescription struct {
	metadataOnlyBlock
	Text string
}

func (b *TextDescription) Kind() BlockKind { return KindText }

func (b *TextDescription) Read(r *storage.Reader) error {
	n, err := r.ReadByte()
	if err != nil {
		return err
	}
	text, err := r.ReadBytes(int(n))
	if err != nil {
		return err
	}
	b.Text = string(text)
	return nil
}

func (b *TextDescription) Describe() string { return fmt.Sprintf("Text: %q", b.Text) }

// Message (0x31): a message to display for a given number of seconds.
type Message struct {
	metadataOnlyBlock
	DisplayTime uint8
	Text        string
}

func (b *Message) Kind() BlockKind { return KindMessage }

func (b *Message) Read(r *storage.Reader) error {
	var err error
	if b.DisplayTime, err = r.ReadByte(); err != nil {
		return err
	}
	n, err := r.ReadByte()
	if err != nil {
		return err
	}
	text, err := r.ReadBytes(int(n))
	if err != nil {
		return err
	}
	b.Text = string(text)
	return nil
}

func (b *Message) Describe() string {
	return fmt.Sprintf("Message (%ds): %q", b.DisplayTime, b.Text)
}

// C64ROMTypeData (0x16, deprecated): Commodore 64 ROM-loader data. The
// whole body is length-prefixed, so it can be skipped without decoding the
// C64-specific timing fields inside.
type C64ROMTypeData struct {
	metadataOnlyBlock
	Data []byte
}

func (b *C64ROMTypeData) Kind() BlockKind { return KindC64ROMTypeData }

func (b *C64ROMTypeData) Read(r *storage.Reader) error {
	n, err := r.ReadLong()
	if err != nil {
		return err
	}
	b.Data, err = r.ReadBytes(int(n))
	return err
}

func (b *C64ROMTypeData) Describe() string {
	return fmt.Sprintf("C64 ROM Type Data: %d bytes (deprecated)", len(b.Data))
}

// C64TurboTapeData (0x17, deprecated): Commodore 64 turbo-loader data,
// length-prefixed like C64ROMTypeData.
type C64TurboTapeData struct {
	metadataOnlyBlock
	Data []byte
}

func (b *C64TurboTapeData) Kind() BlockKind { return KindC64TurboTapeData }

func (b *C64TurboTapeData) Read(r *storage.Reader) error {
	n, err := r.ReadLong()
	if err != nil {
		return err
	}
	b.Data, err = r.ReadBytes(int(n))
	return err
}

func (b *C64TurboTapeData) Describe() string {
	return fmt.Sprintf("C64 Turbo Tape Data: %d bytes (deprecated)", len(b.Data))
}

// EmulationInfo (0x34, deprecated): opaque emulator-specific settings,
// retained only so a length-prefixed unknown body doesn't desync the block
// stream.
type EmulationInfo struct {
	metadataOnlyBlock
	Data []byte
}

func (b *EmulationInfo) Kind() BlockKind { return KindEmulationInfo }

func (b *EmulationInfo) Read(r *storage.Reader) error {
	n, err := r.ReadLong()
	if err != nil {
		return err
	}
	b.Data, err = r.ReadBytes(int(n))
	return err
}

func (b *EmulationInfo) Describe() string {
	return fmt.Sprintf("Emulation Info: %d bytes (deprecated)", len(b.Data))
}

// CustomInfoBlock (0x35): a named, opaque chunk of tool-specific data.
type CustomInfoBlock struct {
	metadataOnlyBlock
	Identification string
	Data           []byte
}

func (b *CustomInfoBlock) Kind() BlockKind { return KindCustomInfoBlock }

func (b *CustomInfoBlock) Read(r *storage.Reader) error {
	id, err := r.ReadBytes(10)
	if err != nil {
		return err
	}
	b.Identification = string(id)
	n, err := r.ReadLong()
	if err != nil {
		return err
	}
	b.Data, err = r.ReadBytes(int(n))
	return err
}

func (b *CustomInfoBlock) Describe() string {
	return fmt.Sprintf("Custom Info Block: %q, %d bytes", b.Identification, len(b.Data))
}

// SnapshotBlock (0x40, deprecated): an embedded emulator snapshot. Retained
// opaquely; Non-goals exclude emulation of the loaded program.
type SnapshotBlock struct {
	metadataOnlyBlock
	Data []byte
}

func (b *SnapshotBlock) Kind() BlockKind { return KindSnapshotBlock }

func (b *SnapshotBlock) Read(r *storage.Reader) error {
	n, err := r.ReadUint24()
	if err != nil {
		return err
	}
	b.Data, err = r.ReadBytes(int(n))
	return err
}

func (b *SnapshotBlock) Describe() string {
	return fmt.Sprintf("Snapshot Block: %d bytes (deprecated)", len(b.Data))
}

// GlueBlock (0x5A): a glue marker left behind when two TZX files are
// concatenated; its body is the next file's own magic and version bytes.
type GlueBlock struct {
	metadataOnlyBlock
	MajorVersion uint8
	MinorVersion uint8
}

func (b *GlueBlock) Kind() BlockKind { return KindGlueBlock }

func (b *GlueBlock) Read(r *storage.Reader) error {
	magic, err := r.ReadBytes(7)
	if err != nil {
		return err
	}
	_ = magic // "XTape!\x1A" expected; the bytes are not validated, so a mismatch is not an error
	b.MajorVersion, err = r.ReadByte()
	if err != nil {
		return err
	}
	b.MinorVersion, err = r.ReadByte()
	return err
}

func (b *GlueBlock) Describe() string {
	return fmt.Sprintf("Glue Block: v%d.%d", b.MajorVersion, b.MinorVersion)
}

// UndefinedBlockTypeBlock is produced for a tag byte DecodeRecovery could
// not resolve to a known BlockKind: opaque, length-prefixed data with no
// audio content.
type UndefinedBlockTypeBlock struct {
	metadataOnlyBlock
	TagByte byte
	Length  uint32
	Data    []byte
}

func (b *UndefinedBlockTypeBlock) Kind() BlockKind { return BlockKind(b.TagByte) }

func (b *UndefinedBlockTypeBlock) Read(r *storage.Reader) error {
	var err error
	if b.Length, err = r.ReadLong(); err != nil {
		return err
	}
	b.Data, err = r.ReadBytes(int(b.Length))
	return err
}

func (b *UndefinedBlockTypeBlock) Describe() string {
	return fmt.Sprintf("Unknown block (tag 0x%02X): %d bytes", b.TagByte, len(b.Data))
}
