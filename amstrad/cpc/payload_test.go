package cpc_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"retroio/amstrad/cpc"
)

// framedHeaderPayload builds a StandardSpeedData-style payload carrying one
// CPC header page: a sync byte, the CRC-framed page, and the trailing
// padding bytes Recognise's page-count arithmetic allows but never reads.
func framedHeaderPayload(body [cpc.PageSize]byte) []byte {
	w := cpc.NewWriter()
	_, _ = w.Write(body[:])
	framed := w.Flush() // page + CRC16, 258 bytes

	out := append([]byte{0x2C}, framed...)
	return append(out, 0, 0, 0, 0) // pad to satisfy (len-5)%258==0
}

func TestRecogniseHeader(t *testing.T) {
	var body [cpc.PageSize]byte
	copy(body[0:16], "GAME")
	body[16] = 3
	body[17] = 1
	body[18] = 2
	binary.LittleEndian.PutUint16(body[19:21], 0x1234)
	binary.LittleEndian.PutUint16(body[21:23], 0x4000)
	body[23] = 1
	binary.LittleEndian.PutUint16(body[24:26], 0x2000)
	binary.LittleEndian.PutUint16(body[26:28], 0x4100)

	header, rec, ok := cpc.Recognise(framedHeaderPayload(body))
	require := assert.New(t)
	require.True(ok)
	require.Nil(rec)
	require.NotNil(header)
	require.Equal("GAME", header.Filename)
	require.EqualValues(3, header.BlockNum)
	require.EqualValues(1, header.LastBlock)
	require.EqualValues(2, header.FileType)
	require.EqualValues(0x1234, header.DataLength)
	require.EqualValues(0x4000, header.LoadAddr)
	require.EqualValues(1, header.FirstBlock)
	require.EqualValues(0x2000, header.LogicalLen)
	require.EqualValues(0x4100, header.EntryAddr)
}

func TestRecogniseData(t *testing.T) {
	var body [cpc.PageSize]byte
	for i := range body {
		body[i] = byte(i)
	}
	payload := framedHeaderPayload(body)
	payload[0] = 0x16 // syncData instead of syncHeader

	header, rec, ok := cpc.Recognise(payload)
	assert.True(t, ok)
	assert.Nil(t, header)
	assert.NotNil(t, rec)
	assert.Equal(t, body[:], rec.Bytes)
}

func TestRecogniseRejectsUnframedPayload(t *testing.T) {
	_, _, ok := cpc.Recognise([]byte{0x01, 0x02, 0x03})
	assert.False(t, ok)
}

func TestRecogniseRejectsBadSyncByte(t *testing.T) {
	var body [cpc.PageSize]byte
	payload := framedHeaderPayload(body)
	payload[0] = 0xFF
	_, _, ok := cpc.Recognise(payload)
	assert.False(t, ok)
}
