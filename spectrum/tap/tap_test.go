package tap_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retroio/spectrum/tap"
	"retroio/storage"
	"retroio/tzx"
)

func tapRecord(data []byte) []byte {
	n := uint16(len(data))
	return append([]byte{byte(n), byte(n >> 8)}, data...)
}

func TestTapNewSynthesizesStandardSpeedDataPerRecord(t *testing.T) {
	var stream []byte
	stream = append(stream, tapRecord(append([]byte{0x00}, bytes.Repeat([]byte{0x11}, 17)...))...)
	stream = append(stream, tapRecord(bytes.Repeat([]byte{0x22}, 4))...)

	r := storage.NewReader(bytes.NewReader(stream))
	f, err := tap.New(r)
	require.NoError(t, err)
	require.Len(t, f.Blocks, 2)

	first, ok := f.Blocks[0].(*tzx.StandardSpeedData)
	require.True(t, ok)
	assert.Equal(t, uint16(1000), first.Pause)
	assert.Equal(t, uint16(18), first.Length)

	second := f.Blocks[1].(*tzx.StandardSpeedData)
	assert.Equal(t, uint16(4), second.Length)
}

func TestTapNewEmptyStreamYieldsNoBlocks(t *testing.T) {
	r := storage.NewReader(bytes.NewReader(nil))
	f, err := tap.New(r)
	require.NoError(t, err)
	assert.Empty(t, f.Blocks)
}

func TestTapNewTruncatedRecordErrors(t *testing.T) {
	stream := []byte{0x05, 0x00, 0x01, 0x02} // claims 5 bytes, only 2 present
	r := storage.NewReader(bytes.NewReader(stream))
	_, err := tap.New(r)
	assert.Error(t, err)
}
