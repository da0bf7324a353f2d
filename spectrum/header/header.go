// Package header decodes the 19-byte ROM-standard header that precedes a
// BASIC program, numeric array, character array or code block on tape,
// following the ROM's `flag=0x00` convention: the first data byte of
// a StandardSpeedData/TAP block identifies it as a header rather than the
// program data itself.
package header

import (
	"fmt"
	"strings"
)

// DataType is the second header byte, identifying what kind of block
// follows.
type DataType uint8

const (
	Program        DataType = 0
	NumberArray    DataType = 1
	CharacterArray DataType = 2
	CodeBlock      DataType = 3
)

func (t DataType) String() string {
	switch t {
	case Program:
		return "Program"
	case NumberArray:
		return "Number array"
	case CharacterArray:
		return "Character array"
	case CodeBlock:
		return "Bytes"
	default:
		return "Unknown"
	}
}

// Preview is the subset of the 19-byte ROM header useful for a one-line
// inspect summary.
type Preview struct {
	DataType   DataType
	Filename   string
	DataLength uint16
}

// Parse recognises a ROM-standard header at the start of data: byte 0 must
// be the header flag (0x00), and at least 19 bytes must be present.
func Parse(data []byte) (*Preview, bool) {
	if len(data) < 19 || data[0] != 0x00 {
		return nil, false
	}
	return &Preview{
		DataType:   DataType(data[1]),
		Filename:   strings.TrimRight(string(data[2:12]), " "),
		DataLength: uint16(data[12]) | uint16(data[13])<<8,
	}, true
}

func (p Preview) String() string {
	return fmt.Sprintf("Header: %s %q, %d bytes", p.DataType, p.Filename, p.DataLength)
}
