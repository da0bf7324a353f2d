// Package cpc recognises Amstrad CPC tape payloads (header and data
// records) embedded inside a ZX Spectrum-format StandardSpeedData block,
// and the paged CRC-16-CCITT framing those records are wrapped in.
package cpc

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// PageSize is the CPC tape page size a CrcPagedRW validates/emits a
// trailing CRC-16-CCITT after.
const PageSize = 256

const (
	crcPoly = 0x1021
	crcInit = 0xFFFF
	crcXor  = 0xFFFF
)

// crc16CCITT computes the CPC-variant CRC-16-CCITT (poly 0x1021, init
// 0xFFFF, xorout 0xFFFF, MSB-first, no reflection) over data.
func crc16CCITT(data []byte) uint16 {
	crc := uint16(crcInit)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ crcPoly
			} else {
				crc <<= 1
			}
		}
	}
	return crc ^ crcXor
}

// ErrCRCMismatch is returned by CrcPagedRW.Read when a page's stored CRC
// does not match the bytes just read.
var ErrCRCMismatch = errors.New("cpc: CRC-16 mismatch")

// CrcPagedRW treats an underlying byte slice as a sequence of PageSize-byte
// pages, each followed by a big-endian CRC-16-CCITT of the page contents.
// It reads and seeks, validating each page's CRC; Writer is the separate
// write-side counterpart that computes and appends it.
type CrcPagedRW struct {
	buf []byte // underlying raw bytes, pages + trailing CRCs interleaved
	pos int    // read/write cursor into buf
}

// NewReader wraps raw (page, crc16, page, crc16, ...) bytes for reading.
func NewReader(raw []byte) *CrcPagedRW {
	return &CrcPagedRW{buf: raw}
}

// ReadPage reads one page's worth of payload (possibly short, for the final
// partial page) and validates the CRC that follows it.
func (c *CrcPagedRW) ReadPage(payloadLen int) ([]byte, error) {
	if payloadLen > PageSize {
		payloadLen = PageSize
	}
	if c.pos+payloadLen+2 > len(c.buf) {
		return nil, errors.New("cpc: truncated page")
	}
	page := c.buf[c.pos : c.pos+payloadLen]
	stored := binary.BigEndian.Uint16(c.buf[c.pos+payloadLen : c.pos+payloadLen+2])
	c.pos += payloadLen + 2

	if got := crc16CCITT(page); got != stored {
		return page, ErrCRCMismatch
	}
	return page, nil
}

// Seek repositions the cursor to a logical payload offset, i.e. an offset
// that counts only page content. Every page crossing moves the underlying
// cursor by PageSize+2 to step over the CRC trailer. Only io.SeekStart and
// io.SeekCurrent are supported; seeking from the end is rejected, matching
// the read side's ignorance of the stream's total length.
func (c *CrcPagedRW) Seek(offset int64, whence int) (int64, error) {
	frame := int64(PageSize + 2)

	page := int64(c.pos) / frame
	inPage := int64(c.pos) % frame
	if inPage > int64(PageSize) {
		inPage = int64(PageSize)
	}
	logical := page*int64(PageSize) + inPage

	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		offset += logical
	default:
		return 0, errors.New("cpc: seek from end is not supported")
	}
	if offset < 0 {
		return 0, errors.New("cpc: negative seek position")
	}

	c.pos = int(offset/int64(PageSize)*frame + offset%int64(PageSize))
	return offset, nil
}

// ReadAll reads every page of a stream totalling length payload bytes,
// concatenating the validated page contents. It stops at the first
// CRC-mismatching page, returning what was read so far plus the error.
func (c *CrcPagedRW) ReadAll(length int) ([]byte, error) {
	out := make([]byte, 0, length)
	for len(out) < length {
		want := length - len(out)
		page, err := c.ReadPage(want)
		out = append(out, page...)
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// Writer accumulates payload bytes and emits (page, crc16) pairs as each
// page fills, padding the final partial page with zeros on Flush.
type Writer struct {
	out     []byte
	pending []byte
}

func NewWriter() *Writer { return &Writer{} }

// Write buffers p, flushing full pages to the output as they accumulate.
func (w *Writer) Write(p []byte) (int, error) {
	w.pending = append(w.pending, p...)
	for len(w.pending) >= PageSize {
		w.emitPage(w.pending[:PageSize])
		w.pending = w.pending[PageSize:]
	}
	return len(p), nil
}

func (w *Writer) emitPage(page []byte) {
	w.out = append(w.out, page...)
	crc := crc16CCITT(page)
	var crcBuf [2]byte
	binary.BigEndian.PutUint16(crcBuf[:], crc)
	w.out = append(w.out, crcBuf[:]...)
}

// Flush pads any remaining partial page with zeros and emits it with its
// CRC, then returns the accumulated output.
func (w *Writer) Flush() []byte {
	if len(w.pending) > 0 {
		page := make([]byte, PageSize)
		copy(page, w.pending)
		w.emitPage(page)
		w.pending = nil
	}
	return w.out
}
