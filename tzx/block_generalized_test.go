package tzx_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retroio/storage"
	"retroio/tzx"
	"retroio/waveform"
)

// generalizedDataBody builds the body of a GeneralizedData block (tag
// already consumed) with exactly one pilot symbol (repeated once) and one
// data symbol (used once), each carrying two pulses. Single-symbol
// alphabets carry no key stream at all: every data position is implicitly
// symbol 0.
func generalizedDataBody() []byte {
	buf := &bytes.Buffer{}
	write32 := func(v uint32) { binary.Write(buf, binary.LittleEndian, v) }
	write16 := func(v uint16) { binary.Write(buf, binary.LittleEndian, v) }
	write8 := func(v uint8) { buf.WriteByte(v) }

	write32(0)   // Length (unused by decode)
	write16(100) // Pause

	write32(1) // TotalPilotSymbols
	write8(2)  // MaxPilotPulses
	write8(1)  // PilotAlphabetSize

	write32(1) // TotalDataSymbols
	write8(2)  // MaxDataPulses
	write8(1)  // DataAlphabetSize

	// Pilot symbol table: 1 entry, polarity flag + 2 pulses.
	write8(0)
	write16(2168)
	write16(2168)

	// Pilot RLE: symbol 0, repeated once.
	write8(0)
	write16(1)

	// Data symbol table: 1 entry, polarity flag + 2 pulses.
	write8(1)
	write16(855)
	write16(1710)

	return buf.Bytes()
}

func TestGeneralizedDataReadAndWaveformSegments(t *testing.T) {
	stream := append([]byte{byte(tzx.KindGeneralizedData)}, generalizedDataBody()...)
	r := storage.NewReader(bytes.NewReader(stream))

	blocks, err := tzx.ReadBlocks(r)
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	gd, ok := blocks[0].(*tzx.GeneralizedData)
	require.True(t, ok)
	assert.EqualValues(t, 1, gd.TotalPilotSymbols)
	assert.EqualValues(t, 1, gd.TotalDataSymbols)
	assert.Len(t, gd.PilotTable, 1)
	assert.Len(t, gd.DataTable, 1)
	assert.Equal(t, []int{0}, gd.DataKeys)

	waveforms := gd.Waveforms(waveform.DefaultConfig(), true)
	assert.Len(t, waveforms, 3) // pilot, data, pause
}

func TestGeneralizedDataZeroAlphabetByteMeansFullAlphabet(t *testing.T) {
	// An ASD byte of 0 means a 256-entry symbol table with 8-bit keys; a
	// trailing PauseOrStopTape block proves the decode consumed exactly
	// the table plus two key bytes and left the stream in sync.
	buf := &bytes.Buffer{}
	write32 := func(v uint32) { binary.Write(buf, binary.LittleEndian, v) }
	write16 := func(v uint16) { binary.Write(buf, binary.LittleEndian, v) }
	write8 := func(v uint8) { buf.WriteByte(v) }

	write8(byte(tzx.KindGeneralizedData))
	write32(0) // Length (unused by decode)
	write16(0) // Pause

	write32(0) // TotalPilotSymbols
	write8(0)  // MaxPilotPulses
	write8(0)  // PilotAlphabetSize

	write32(2) // TotalDataSymbols
	write8(1)  // MaxDataPulses
	write8(0)  // DataAlphabetSize: 0 -> 256 entries

	for i := 0; i < 256; i++ {
		write8(0)
		write16(uint16(100 + i))
	}
	write8(0x05) // data keys, one byte per symbol at 8 bits wide
	write8(0x81)

	write8(byte(tzx.KindPauseOrStopTape))
	write16(1000)

	r := storage.NewReader(bytes.NewReader(buf.Bytes()))
	blocks, err := tzx.ReadBlocks(r)
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	gd, ok := blocks[0].(*tzx.GeneralizedData)
	require.True(t, ok)
	assert.Empty(t, gd.PilotTable)
	assert.Len(t, gd.DataTable, 256)
	assert.Equal(t, []int{0x05, 0x81}, gd.DataKeys)
	assert.Equal(t, tzx.KindPauseOrStopTape, blocks[1].Kind())
}

func TestGeneralizedDataSkipsPilotWhenNoPilotSymbols(t *testing.T) {
	gd := &tzx.GeneralizedData{
		TotalDataSymbols: 1,
		DataTable:        []waveform.Symbol{{Pulses: []uint16{855, 855}}},
		DataKeys:         []int{0},
	}

	waveforms := gd.Waveforms(waveform.DefaultConfig(), true)
	assert.Len(t, waveforms, 2) // data, pause only
}
