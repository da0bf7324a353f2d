// Package convert is the offline WAV-export runner: no player and no
// pacing, just iterating every block's waveforms to exhaustion and handing
// each sample to a SampleWriter.
package convert

import (
	"github.com/pkg/errors"

	"retroio/tzx"
	"retroio/waveform"
)

// SampleWriter is the "write one mono sample" collaborator Run depends on.
// wavfile.Writer is the concrete implementation backed by
// github.com/go-audio/wav.
type SampleWriter interface {
	WriteSample(s float32) error
}

// Run walks blocks in order, tracking inter-block signal-level continuity
// exactly as the Player does when it flattens a playlist, and writes every
// sample of every waveform segment to w.
func Run(blocks []tzx.Block, cfg waveform.Config, w SampleWriter) error {
	currentPolarity := true

	for i, block := range blocks {
		for _, wf := range block.Waveforms(cfg, currentPolarity) {
			for {
				sample, ok := wf.Next()
				if !ok {
					break
				}
				if err := w.WriteSample(sample); err != nil {
					return errors.Wrapf(err, "convert: block #%d", i+1)
				}
			}
		}
		currentPolarity = block.NextStartHigh(currentPolarity)
	}
	return nil
}
