package tzx

import (
	"fmt"
	"strings"

	"retroio/storage"
)

// ArchiveInfoEntryKind is the tag byte of one ArchiveInfo string entry.
type ArchiveInfoEntryKind uint8

const (
	ArchiveFullTitle        ArchiveInfoEntryKind = 0x00
	ArchivePublisher        ArchiveInfoEntryKind = 0x01
	ArchiveAuthors          ArchiveInfoEntryKind = 0x02
	ArchiveYear             ArchiveInfoEntryKind = 0x03
	ArchiveLanguage         ArchiveInfoEntryKind = 0x04
	ArchiveGameType         ArchiveInfoEntryKind = 0x05
	ArchivePrice            ArchiveInfoEntryKind = 0x06
	ArchiveProtectionScheme ArchiveInfoEntryKind = 0x07
	ArchiveOrigin           ArchiveInfoEntryKind = 0x08
	ArchiveComment          ArchiveInfoEntryKind = 0xFF
)

var archiveEntryNames = map[byte]ArchiveInfoEntryKind{
	0x00: ArchiveFullTitle,
	0x01: ArchivePublisher,
	0x02: ArchiveAuthors,
	0x03: ArchiveYear,
	0x04: ArchiveLanguage,
	0x05: ArchiveGameType,
	0x06: ArchivePrice,
	0x07: ArchiveProtectionScheme,
	0x08: ArchiveOrigin,
	0xFF: ArchiveComment,
}

func (k ArchiveInfoEntryKind) String() string {
	switch k {
	case ArchiveFullTitle:
		return "Full title"
	case ArchivePublisher:
		return "Software house/publisher"
	case ArchiveAuthors:
		return "Author(s)"
	case ArchiveYear:
		return "Year of publication"
	case ArchiveLanguage:
		return "Language"
	case ArchiveGameType:
		return "Game/utility type"
	case ArchivePrice:
		return "Price"
	case ArchiveProtectionScheme:
		return "Protection scheme/loader"
	case ArchiveOrigin:
		return "Origin"
	case ArchiveComment:
		return "Comment(s)"
	default:
		return "Unknown"
	}
}

// decodeArchiveEntryKind is a pure lookup: it never consumes bytes from r,
// so DecodeRecovery's rewind-on-failure is a no-op here regardless of
// whether the id is recognised; it only affects which label gets attached
// to the entry, never the stream position.
func decodeArchiveEntryKind(tag byte, r *storage.Reader) (ArchiveInfoEntryKind, bool) {
	kind, ok := archiveEntryNames[tag]
	return kind, ok
}

// ArchiveInfoEntry is one (kind, text) string pair.
type ArchiveInfoEntry struct {
	Kind    ArchiveInfoEntryKind
	RawKind byte
	Text    string
}

// ArchiveInfo (0x32): free-text metadata about the tape's contents, always
// the first block after the header when present.
type ArchiveInfo struct {
	metadataOnlyBlock
	Entries []ArchiveInfoEntry
}

func (b *ArchiveInfo) Kind() BlockKind { return KindArchiveInfo }

func (b *ArchiveInfo) Read(r *storage.Reader) error {
	if _, err := r.ReadShort(); err != nil { // block length, unused: we read structurally
		return err
	}
	n, err := r.ReadByte()
	if err != nil {
		return err
	}
	b.Entries = make([]ArchiveInfoEntry, n)
	for i := range b.Entries {
		rec, err := DecodeRecovery(r, decodeArchiveEntryKind)
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
		b.Entries[i] = ArchiveInfoEntry{Kind: rec.Value, RawKind: rec.Raw, Text: string(text)}
	}
	return nil
}

func (b *ArchiveInfo) Describe() string {
	return fmt.Sprintf("Archive Info: %d entries", len(b.Entries))
}

func (b *ArchiveInfo) Extended() []string {
	lines := make([]string, len(b.Entries))
	for i, e := range b.Entries {
		label := e.Kind.String()
		if label == "Unknown" {
			label = fmt.Sprintf("Unknown (0x%02X)", e.RawKind)
		}
		lines[i] = fmt.Sprintf("%s: %s", label, strings.TrimSpace(e.Text))
	}
	return lines
}
