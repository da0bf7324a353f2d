package storage_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retroio/storage"
)

func newReader(b []byte) *storage.Reader {
	return storage.NewReader(bytes.NewReader(b))
}

func TestReaderLittleEndianPrimitives(t *testing.T) {
	r := newReader([]byte{0x34, 0x12, 0x78, 0x56, 0x34, 0x12, 0x01, 0x02, 0x03})

	short, err := r.ReadShort()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), short)

	long, err := r.ReadLong()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), long)

	u24, err := r.ReadUint24()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x030201), u24)
}

func TestReaderPeekDoesNotAdvance(t *testing.T) {
	r := newReader([]byte{0xAA, 0xBB, 0xCC})

	peeked, err := r.Peek(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB}, peeked)
	assert.EqualValues(t, 0, r.Pos())

	b, err := r.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0xAA), b)
	assert.EqualValues(t, 1, r.Pos())
}

func TestReaderSeekToRewindsForRecovery(t *testing.T) {
	r := newReader([]byte{0x01, 0x02, 0x03, 0x04})

	mark := r.Pos()
	_, err := r.ReadBytes(2)
	require.NoError(t, err)
	assert.EqualValues(t, 2, r.Pos())

	require.NoError(t, r.SeekTo(mark))
	assert.EqualValues(t, 0, r.Pos())

	rest, err := r.ReadBytes(4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, rest)
}

func TestReaderByteReadsReportCleanEOF(t *testing.T) {
	r := newReader(nil)

	_, err := r.ReadByte()
	assert.ErrorIs(t, err, io.EOF)

	_, err = r.Peek(1)
	assert.ErrorIs(t, err, io.EOF)
}
