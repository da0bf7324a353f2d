package waveform

import "time"

// Empty is the Waveform produced by blocks with no audio content of their
// own (group markers, jumps, metadata blocks, ...).
type Empty struct{}

func (Empty) Next() (float32, bool) { return 0, false }
func (Empty) TotalDuration() time.Duration { return 0 }
func (Empty) TrySeek(pos time.Duration) bool { return pos == 0 }
func (Empty) Clone() Waveform { return Empty{} }
func (Empty) Started() bool { return false }
func (Empty) Visualise(int) string { return "" }
func (Empty) PayloadPosition() (int, bool) { return 0, false }
