// Package storage provides a seekable byte reader used throughout
// the tape-format decoders. It wraps an io.ReadSeeker with the small set of
// little-endian primitives the TZX/CDT/TAP formats need, plus the
// record/rewind pair the recovery protocol (see tzx.RecoveryEnum) depends on.
package storage

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Reader wraps an io.ReadSeeker, adding little-endian primitive reads and a
// cheap position marker used for speculative ("try this, rewind on failure")
// decoding.
type Reader struct {
	r   io.ReadSeeker
	pos int64
}

// NewReader wraps the given ReadSeeker.
func NewReader(r io.ReadSeeker) *Reader {
	return &Reader{r: r}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	r.pos += int64(n)
	return n, err
}

// Pos returns the current stream offset.
func (r *Reader) Pos() int64 {
	return r.pos
}

// SeekTo repositions the stream to an absolute offset previously obtained
// from Pos.
func (r *Reader) SeekTo(pos int64) error {
	n, err := r.r.Seek(pos, io.SeekStart)
	if err != nil {
		return errors.Wrap(err, "storage: seek failed")
	}
	r.pos = n
	return nil
}

// ReadByte reads a single byte, returning io.EOF unwrapped so callers can
// detect clean end-of-stream (the block-parse loop relies on this).
func (r *Reader) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return 0, err
	}
	return b[0], nil
}

// Peek returns the next n bytes without advancing the stream.
func (r *Reader) Peek(n int) ([]byte, error) {
	buf := make([]byte, n)
	read, err := io.ReadFull(r.r, buf)
	if read > 0 {
		if _, serr := r.r.Seek(-int64(read), io.SeekCurrent); serr != nil {
			return nil, errors.Wrap(serr, "storage: peek rewind failed")
		}
	}
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return buf[:read], err
	}
	return buf, nil
}

// ReadBytes reads exactly n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return nil, err
	}
	return buf, nil
}

// ReadShort reads a little-endian uint16.
func (r *Reader) ReadShort() (uint16, error) {
	buf, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf), nil
}

// ReadLong reads a little-endian uint32.
func (r *Reader) ReadLong() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// ReadUint24 reads a little-endian 24-bit value stored as 3 bytes, as used by
// the TZX "N BYTE[3]" length fields.
func (r *Reader) ReadUint24() (uint32, error) {
	buf, err := r.ReadBytes(3)
	if err != nil {
		return 0, err
	}
	return BytesToLong(append(buf, 0)), nil
}

// BytesToLong converts a 4-byte little-endian slice into a uint32, used for
// 24-bit length fields padded to 4 bytes.
func BytesToLong(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}
