package tzx

import (
	"fmt"
	"math/bits"

	"retroio/storage"
	"retroio/waveform"
)

// GeneralizedData (0x19): a symbol-table driven block that can express
// pilot/sync tones and data streams using multi-pulse symbols rather than
// the fixed two-pulse-per-bit scheme.
type GeneralizedData struct {
	Length uint32
	Pause  uint16

	TotalPilotSymbols uint32 // TOTP
	MaxPilotPulses    uint8  // NPP
	PilotAlphabetSize uint8  // ASP

	TotalDataSymbols uint32 // TOTD
	MaxDataPulses    uint8  // NPD
	DataAlphabetSize uint8  // ASD

	PilotTable []waveform.Symbol
	PilotRLE   []pilotRun // (symbol index, repeat count)
	DataTable  []waveform.Symbol
	DataKeys   []int // resolved symbol-table index per data-stream symbol
}

type pilotRun struct {
	Symbol uint8
	Count  uint16
}

func (b *GeneralizedData) Kind() BlockKind { return KindGeneralizedData }

func (b *GeneralizedData) Read(r *storage.Reader) error {
	var err error
	if b.Length, err = r.ReadLong(); err != nil {
		return err
	}
	if b.Pause, err = r.ReadShort(); err != nil {
		return err
	}
	if b.TotalPilotSymbols, err = r.ReadLong(); err != nil {
		return err
	}
	if b.MaxPilotPulses, err = r.ReadByte(); err != nil {
		return err
	}
	if b.PilotAlphabetSize, err = r.ReadByte(); err != nil {
		return err
	}
	if b.TotalDataSymbols, err = r.ReadLong(); err != nil {
		return err
	}
	if b.MaxDataPulses, err = r.ReadByte(); err != nil {
		return err
	}
	if b.DataAlphabetSize, err = r.ReadByte(); err != nil {
		return err
	}

	if b.TotalPilotSymbols > 0 {
		b.PilotTable, err = readSymbolTable(r, alphabetEntries(b.PilotAlphabetSize), int(b.MaxPilotPulses))
		if err != nil {
			return err
		}
		b.PilotRLE = make([]pilotRun, b.TotalPilotSymbols)
		for i := range b.PilotRLE {
			sym, err := r.ReadByte()
			if err != nil {
				return err
			}
			count, err := r.ReadShort()
			if err != nil {
				return err
			}
			b.PilotRLE[i] = pilotRun{Symbol: sym, Count: count}
		}
	}

	if b.TotalDataSymbols > 0 {
		b.DataTable, err = readSymbolTable(r, alphabetEntries(b.DataAlphabetSize), int(b.MaxDataPulses))
		if err != nil {
			return err
		}
		keyBits := symbolKeyWidth(alphabetEntries(b.DataAlphabetSize))
		nBytes := (int(b.TotalDataSymbols)*keyBits + 7) / 8
		raw, err := r.ReadBytes(nBytes)
		if err != nil {
			return err
		}
		b.DataKeys = unpackSymbolKeys(raw, keyBits, int(b.TotalDataSymbols))
	}

	return nil
}

// readSymbolTable reads `count` SymbolDefinition entries, each a one-byte
// polarity flag followed by npp/npd u16 pulse lengths (a trailing
// zero-length pulse, if any, marks early end-of-symbol).
func readSymbolTable(r *storage.Reader, count, pulsesPerSymbol int) ([]waveform.Symbol, error) {
	table := make([]waveform.Symbol, count)
	for i := range table {
		flag, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		pulses := make([]uint16, pulsesPerSymbol)
		for p := range pulses {
			pulses[p], err = r.ReadShort()
			if err != nil {
				return nil, err
			}
		}
		table[i] = waveform.Symbol{Polarity: waveform.SymbolPolarity(flag & 0x03), Pulses: pulses}
	}
	return table, nil
}

// alphabetEntries resolves the one-byte ASP/ASD field to a symbol-table
// entry count: 0 means 256.
func alphabetEntries(size uint8) int {
	if size == 0 {
		return 256
	}
	return int(size)
}

// symbolKeyWidth is the number of key-stream bits per data symbol:
// floor(log2(alphabetSize)). A single-symbol alphabet stores no key data at
// all; every position is implicitly symbol 0.
func symbolKeyWidth(alphabetSize int) int {
	if alphabetSize <= 1 {
		return 0
	}
	return bits.Len(uint(alphabetSize)) - 1
}

// unpackSymbolKeys reads `count` `width`-bit big-endian (MSB-first) fields
// out of raw, spanning byte boundaries as needed.
func unpackSymbolKeys(raw []byte, width, count int) []int {
	keys := make([]int, count)
	bitPos := 0
	for i := 0; i < count; i++ {
		var v int
		for b := 0; b < width; b++ {
			byteIdx := bitPos / 8
			if byteIdx >= len(raw) {
				break
			}
			bitIdx := 7 - (bitPos % 8)
			bit := (raw[byteIdx] >> bitIdx) & 1
			v = (v << 1) | int(bit)
			bitPos++
		}
		keys[i] = v
	}
	return keys
}

func (b *GeneralizedData) Describe() string {
	return fmt.Sprintf("Generalized Data: %d pilot symbols, %d data symbols, pause %dms",
		b.TotalPilotSymbols, b.TotalDataSymbols, b.Pause)
}

func (b *GeneralizedData) Extended() []string {
	lines := make([]string, 0, len(b.PilotTable)+len(b.DataTable))
	for i, s := range b.PilotTable {
		lines = append(lines, fmt.Sprintf("pilot symbol %d: polarity=%d pulses=%v", i, s.Polarity, s.ActivePulses()))
	}
	for i, s := range b.DataTable {
		lines = append(lines, fmt.Sprintf("data symbol %d: polarity=%d pulses=%v", i, s.Polarity, s.ActivePulses()))
	}
	return lines
}

func (b *GeneralizedData) pilotKeys() []int {
	keys := make([]int, 0, b.TotalPilotSymbols)
	for _, run := range b.PilotRLE {
		for i := uint16(0); i < run.Count; i++ {
			keys = append(keys, int(run.Symbol))
		}
	}
	return keys
}

func (b *GeneralizedData) Waveforms(cfg waveform.Config, startHigh bool) []waveform.Waveform {
	var out []waveform.Waveform
	high := startHigh

	if b.TotalPilotSymbols > 0 {
		keys := b.pilotKeys()
		out = append(out, waveform.NewGeneralized(cfg, b.PilotTable, keys, high))
		high = waveform.GeneralizedEndHigh(b.PilotTable, keys, high)
	}

	if b.TotalDataSymbols > 0 {
		out = append(out, waveform.NewGeneralized(cfg, b.DataTable, b.DataKeys, high))
	}

	out = append(out, waveform.NewPause(cfg, b.Pause))
	return out
}

func (b *GeneralizedData) NextStartHigh(startHigh bool) bool {
	return waveform.GeneralizedNextStartHigh()
}
