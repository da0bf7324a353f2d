package tzx

import (
	"encoding/binary"
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"retroio/storage"
)

const (
	SupportedMajorVersion = 1
	SupportedMinorVersion = 20
)

// Header is the 10-byte TZX/CDT file header: the magic `ZXTape!\x1A`
// followed by two version bytes.
type Header struct {
	Signature    [7]byte
	Terminator   uint8
	MajorVersion uint8
	MinorVersion uint8
}

func (h Header) valid() error {
	want := [7]byte{'Z', 'X', 'T', 'a', 'p', 'e', '!'}
	if h.Signature != want {
		return errors.Errorf("tzx: bad signature %q", h.Signature)
	}
	if h.Terminator != 0x1a {
		return errors.Errorf("tzx: bad terminator byte 0x%02x", h.Terminator)
	}
	if h.MajorVersion != SupportedMajorVersion {
		return errors.Errorf("tzx: unsupported major version %d", h.MajorVersion)
	}
	return nil
}

// ReadHeader reads and validates the file header.
func ReadHeader(r *storage.Reader) (Header, error) {
	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return h, errors.Wrap(err, "tzx: reading header")
	}
	if err := h.valid(); err != nil {
		return h, err
	}
	return h, nil
}

// ReadBlocks loops reading block-tag + block-body until clean EOF. Decoder
// failures on an individual block are logged and non-fatal: the loop
// rewinds the reader to one byte past the failing tag and keeps going.
func ReadBlocks(r *storage.Reader) ([]Block, error) {
	var blocks []Block
	ordinal := 0
	for {
		ordinal++
		if _, err := r.Peek(1); err != nil {
			if err == io.EOF {
				return blocks, nil
			}
			return blocks, errors.Wrap(err, "tzx: peeking next block tag")
		}

		rec, err := DecodeRecovery(r, decodeBlockKind)
		if err != nil {
			return blocks, errors.Wrapf(err, "tzx: block #%d", ordinal)
		}

		if !rec.Known {
			log.Warn("unrecognised TZX block tag, treating as undefined block",
				"ordinal", ordinal, "tag", rec.Raw)

			block := &UndefinedBlockTypeBlock{TagByte: rec.Raw}
			if err := block.Read(r); err != nil {
				log.Error("failed to recover undefined block body, stopping scan",
					"ordinal", ordinal, "err", err)
				return blocks, nil
			}
			blocks = append(blocks, block)
			continue
		}

		// Tag recognised; parse its body. A truncated/malformed body is
		// non-fatal: log it, step one byte past the tag we just consumed,
		// and let the loop resynchronise from there rather than giving up
		// on the rest of the tape.
		tagPos := r.Pos() - 1
		block := newBlockForKind(rec.Value)
		if err := block.Read(r); err != nil {
			log.Error("failed to parse block, resynchronising",
				"ordinal", ordinal, "kind", rec.Value, "err", err)
			if serr := r.SeekTo(tagPos + 1); serr != nil {
				return blocks, serr
			}
			continue
		}
		blocks = append(blocks, block)
	}
}
