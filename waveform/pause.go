package waveform

import "time"

// Pause is an end-of-data edge spike followed by silence: a pause of zero
// milliseconds produces no samples at all, and a non-zero pause starts with
// a single zero sample, then sample_rate/1000 samples held low (the edge
// the loader ROM needs to detect), then silence for the remainder of the
// requested duration.
type Pause struct {
	cfg   Config
	total int // total sample count
	edge  int // samples held at -1.0 after the single 0.0 sample

	idx     int
	started bool
}

// NewPause builds a Pause waveform for a pause of ms milliseconds.
func NewPause(cfg Config, ms uint16) *Pause {
	if ms == 0 {
		return &Pause{cfg: cfg}
	}
	total := roundToInt(float64(ms) / 1000.0 * float64(cfg.SampleRate))
	edge := cfg.SampleRate / 1000
	if edge > total-1 {
		edge = total - 1
	}
	if edge < 0 {
		edge = 0
	}
	return &Pause{cfg: cfg, total: total, edge: edge}
}

func (p *Pause) Next() (float32, bool) {
	if p.idx >= p.total {
		return 0, false
	}
	p.started = true
	var v float32
	switch {
	case p.idx == 0:
		v = 0.0
	case p.idx <= p.edge:
		v = -1.0
	default:
		v = 0.0
	}
	p.idx++
	return v, true
}

func (p *Pause) TotalDuration() time.Duration {
	return time.Duration(float64(p.total) / float64(p.cfg.SampleRate) * float64(time.Second))
}

func (p *Pause) TrySeek(pos time.Duration) bool {
	target := int(pos.Seconds() * float64(p.cfg.SampleRate))
	if target < 0 || target > p.total {
		return false
	}
	p.idx = target
	p.started = target > 0
	return true
}

func (p *Pause) Clone() Waveform {
	return &Pause{cfg: p.cfg, total: p.total, edge: p.edge}
}

func (p *Pause) Started() bool { return p.started }

func (p *Pause) Visualise(width int) string {
	if width <= 0 || p.total == 0 {
		return ""
	}
	out := make([]rune, width)
	for i := range out {
		out[i] = '_'
	}
	return string(out)
}

func (p *Pause) PayloadPosition() (int, bool) { return 0, false }
