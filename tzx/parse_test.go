package tzx_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retroio/storage"
	"retroio/tzx"
)

func validHeaderBytes() []byte {
	return []byte{'Z', 'X', 'T', 'a', 'p', 'e', '!', 0x1a, 1, 20}
}

func TestReadHeaderAcceptsValidSignature(t *testing.T) {
	r := storage.NewReader(bytes.NewReader(validHeaderBytes()))
	h, err := tzx.ReadHeader(r)
	require.NoError(t, err)
	assert.EqualValues(t, 1, h.MajorVersion)
	assert.EqualValues(t, 20, h.MinorVersion)
}

func TestReadHeaderRejectsBadSignature(t *testing.T) {
	bad := validHeaderBytes()
	bad[0] = 'A'
	r := storage.NewReader(bytes.NewReader(bad))
	_, err := tzx.ReadHeader(r)
	assert.Error(t, err)
}

func TestReadHeaderRejectsUnsupportedMajorVersion(t *testing.T) {
	bad := validHeaderBytes()
	bad[8] = 2
	r := storage.NewReader(bytes.NewReader(bad))
	_, err := tzx.ReadHeader(r)
	assert.Error(t, err)
}

// standardSpeedDataBytes builds the on-wire body of a StandardSpeedData
// block (tag 0x10 already consumed): pause(2) + length(2) + data.
func standardSpeedDataBytes(pause uint16, data []byte) []byte {
	buf := &bytes.Buffer{}
	buf.WriteByte(byte(pause))
	buf.WriteByte(byte(pause >> 8))
	n := uint16(len(data))
	buf.WriteByte(byte(n))
	buf.WriteByte(byte(n >> 8))
	buf.Write(data)
	return buf.Bytes()
}

func TestReadBlocksParsesStandardSpeedDataHeaderBlock(t *testing.T) {
	body := standardSpeedDataBytes(1000, append([]byte{0x00}, bytes.Repeat([]byte{0xAA}, 18)...))
	stream := append([]byte{byte(tzx.KindStandardSpeedData)}, body...)

	r := storage.NewReader(bytes.NewReader(stream))
	blocks, err := tzx.ReadBlocks(r)
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	ssd, ok := blocks[0].(*tzx.StandardSpeedData)
	require.True(t, ok)
	assert.Equal(t, uint16(1000), ssd.Pause)
	assert.Contains(t, ssd.Describe(), "header")
}

func TestReadBlocksTreatsNonHeaderPayloadAsDataKind(t *testing.T) {
	body := standardSpeedDataBytes(0, bytes.Repeat([]byte{0xFF}, 4))
	stream := append([]byte{byte(tzx.KindStandardSpeedData)}, body...)

	r := storage.NewReader(bytes.NewReader(stream))
	blocks, err := tzx.ReadBlocks(r)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0].Describe(), "data")
}

func TestReadBlocksRecoversFromUnknownTag(t *testing.T) {
	// 0xFF is not a defined block tag; the recovery protocol should rewind
	// and hand it to UndefinedBlockTypeBlock rather than aborting the scan.
	stream := []byte{0xFF, 0x00, 0x00, 0x00, 0x00}

	r := storage.NewReader(bytes.NewReader(stream))
	blocks, err := tzx.ReadBlocks(r)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, tzx.BlockKind(0xFF), blocks[0].Kind())
}

func TestReadBlocksResyncsAfterTruncatedKnownBlock(t *testing.T) {
	// 0x10 (StandardSpeedData) is a known tag, but the stream runs out
	// mid-header (its pause+length fields need 4 bytes; only 3 follow). The
	// loop must log and resynchronise one byte past the tag rather than
	// propagating the error; that next byte happens to be a valid
	// PauseOrStopTape tag, which should then parse normally.
	stream := []byte{byte(tzx.KindStandardSpeedData), byte(tzx.KindPauseOrStopTape), 0xE8, 0x03}

	r := storage.NewReader(bytes.NewReader(stream))
	blocks, err := tzx.ReadBlocks(r)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	require.Equal(t, tzx.KindPauseOrStopTape, blocks[0].Kind())
	pause, ok := blocks[0].(*tzx.PauseOrStopTape)
	require.True(t, ok)
	assert.EqualValues(t, 1000, pause.Pause)
}

func TestReadBlocksStopsCleanlyAtEOF(t *testing.T) {
	r := storage.NewReader(bytes.NewReader(nil))
	blocks, err := tzx.ReadBlocks(r)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}
