package waveform

import "math/bits"

// Payload is a bit-addressable, immutable byte buffer with a used-bits count
// on its final byte. It memoises total/one/zero bit counts and answers
// ranged popcount queries so a seek can estimate its target byte in O(1)
// rather than walking every bit.
//
// The backing slice is shared: cloning a Payload never copies Data, only the
// small header fields, matching the "cheaply cloned, shared-immutable
// buffer" ownership model described for Waveforms.
type Payload struct {
	Data         []byte
	UsedBitsLast uint8 // 1..=8, bits actually used in the final byte

	totalBits  int
	onesCount  int
	zerosCount int
	prefixOnes []int // prefixOnes[i] = popcount of Data[0:i]
}

// NewPayload builds a Payload over data, with usedBits (1..=8) significant
// bits in the final byte. usedBits outside that range, as a malformed block
// header can carry, is treated as 8.
func NewPayload(data []byte, usedBits uint8) *Payload {
	if usedBits < 1 || usedBits > 8 {
		usedBits = 8
	}
	p := &Payload{Data: data, UsedBitsLast: usedBits}
	p.index()
	return p
}

func (p *Payload) index() {
	n := len(p.Data)
	p.prefixOnes = make([]int, n+1)
	for i, b := range p.Data {
		p.prefixOnes[i+1] = p.prefixOnes[i] + bits.OnesCount8(b)
	}
	if n == 0 {
		return
	}
	p.totalBits = (n-1)*8 + int(p.UsedBitsLast)
	full := p.prefixOnes[n]
	// subtract the unused low-order bits of the final byte from the popcount.
	last := p.Data[n-1]
	unused := 8 - int(p.UsedBitsLast)
	if unused > 0 {
		full -= bits.OnesCount8(last & ((1 << unused) - 1))
	}
	p.onesCount = full
	p.zerosCount = p.totalBits - full
}

// TotalBits returns (len-1)*8 + used_bits.
func (p *Payload) TotalBits() int { return p.totalBits }

// Ones returns the total count of 1-bits across the whole payload.
func (p *Payload) Ones() int { return p.onesCount }

// Zeros returns the total count of 0-bits across the whole payload.
func (p *Payload) Zeros() int { return p.zerosCount }

// Len is the number of bytes backing the payload.
func (p *Payload) Len() int { return len(p.Data) }

// Bit returns the bit at logical index i (0 = MSb of byte 0), MSB-first
// within each byte.
func (p *Payload) Bit(i int) bool {
	byteIdx := i / 8
	bitIdx := 7 - (i % 8)
	return (p.Data[byteIdx]>>uint(bitIdx))&1 == 1
}

// PopcountPrefix returns the number of 1-bits in Data[0:byteIdx), an O(1)
// lookup used by the data-waveform seek estimator.
func (p *Payload) PopcountPrefix(byteIdx int) int {
	if byteIdx < 0 {
		byteIdx = 0
	}
	if byteIdx > len(p.Data) {
		byteIdx = len(p.Data)
	}
	return p.prefixOnes[byteIdx]
}

// PopcountRange returns the number of 1-bits in Data[from:to), used bits of
// the final byte respected when the range reaches it.
func (p *Payload) PopcountRange(from, to int) int {
	if to > len(p.Data) {
		to = len(p.Data)
	}
	if from < 0 {
		from = 0
	}
	if from >= to {
		return 0
	}
	count := p.prefixOnes[to] - p.prefixOnes[from]
	if to == len(p.Data) {
		unused := 8 - int(p.UsedBitsLast)
		if unused > 0 {
			last := p.Data[to-1]
			count -= bits.OnesCount8(last & ((1 << unused) - 1))
		}
	}
	return count
}
