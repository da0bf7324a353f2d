package cpc

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	syncHeader = 0x2C
	syncData   = 0x16
)

// Header is a 256-byte Amstrad CPC tape header record (AMSDOS "chunk
// header"): filename, block/file type, lengths, load/entry addresses.
type Header struct {
	Filename   string
	BlockNum   uint8
	LastBlock  uint8
	FileType   uint8
	DataLength uint16
	LoadAddr   uint16
	FirstBlock uint8
	LogicalLen uint16
	EntryAddr  uint16
}

// Data is a CPC tape data record: a run of raw bytes, already CRC-validated
// by the paged read.
type Data struct {
	Bytes []byte
}

// Recognise attempts to interpret a StandardSpeedData block's payload as a
// CPC header or data record: the payload must be at least 5 bytes and
// `(length-5) % 258 == 0` (sync byte + N pages of 256 data bytes
// + 2 CRC bytes each + 4 trailing bytes), and the leading sync byte must
// identify a header or data record. Any mismatch returns ok=false and the caller
// should treat the block as opaque.
func Recognise(data []byte) (header *Header, rec *Data, ok bool) {
	if len(data) < 5 || (len(data)-5)%258 != 0 {
		return nil, nil, false
	}
	sync := data[0]
	if sync != syncHeader && sync != syncData {
		return nil, nil, false
	}

	pages := (len(data) - 5) / 258
	body, err := NewReader(data[1:]).ReadAll(pages * PageSize)
	if err != nil {
		return nil, nil, false
	}

	if sync == syncHeader {
		h, ok := parseHeader(body)
		return h, nil, ok
	}
	return nil, &Data{Bytes: body}, true
}

func parseHeader(body []byte) (*Header, bool) {
	if len(body) < 28 {
		return nil, false
	}
	name := string(bytes.TrimRight(body[0:16], "\x00 "))
	return &Header{
		Filename:   name,
		BlockNum:   body[16],
		LastBlock:  body[17],
		FileType:   body[18],
		DataLength: binary.LittleEndian.Uint16(body[19:21]),
		LoadAddr:   binary.LittleEndian.Uint16(body[21:23]),
		FirstBlock: body[23],
		LogicalLen: binary.LittleEndian.Uint16(body[24:26]),
		EntryAddr:  binary.LittleEndian.Uint16(body[26:28]),
	}, true
}

func (h Header) String() string {
	return fmt.Sprintf("CPC header: %q block %d (type %d; len %d/%d; loc 0x%04X; ent 0x%04X)",
		h.Filename, h.BlockNum, h.FileType, h.DataLength, h.LogicalLen, h.LoadAddr, h.EntryAddr)
}

func (d Data) String() string {
	return fmt.Sprintf("CPC data: %d bytes", len(d.Bytes))
}
