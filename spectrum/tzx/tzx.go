// Package tzx reads ZX Spectrum (and, via the cdt package, Amstrad CPC)
// TZX-formatted tape files: a 10-byte header followed by zero or more data
// blocks. The block-kind-specific parsing and waveform synthesis lives in
// the retroio/tzx package; this package is the file-level reader cmd/
// talks to, matching the historical split between the orchestrator and the
// block decoders.
//
// https://www.worldofspectrum.org/TZXformat.html
package tzx

import (
	"retroio/storage"
	"retroio/tzx"
	"retroio/waveform"
)

// TZX is a fully-parsed TZX/CDT tape image.
type TZX struct {
	reader *storage.Reader

	Platform waveform.Platform
	Header   tzx.Header
	Archive  *tzx.ArchiveInfo
	Blocks   []tzx.Block
}

// New prepares a TZX reader for the ZX Spectrum platform. Use NewForPlatform
// for Amstrad CDT files.
func New(reader *storage.Reader) *TZX {
	return &TZX{reader: reader, Platform: waveform.ZXSpectrum}
}

// NewForPlatform prepares a TZX reader for the given platform's t-cycle
// timing.
func NewForPlatform(reader *storage.Reader, platform waveform.Platform) *TZX {
	return &TZX{reader: reader, Platform: platform}
}

// Read processes the header, then every block on the tape.
func (t *TZX) Read() error {
	header, err := tzx.ReadHeader(t.reader)
	if err != nil {
		return err
	}
	t.Header = header

	blocks, err := tzx.ReadBlocks(t.reader)
	if err != nil {
		return err
	}

	for _, block := range blocks {
		if archive, ok := block.(*tzx.ArchiveInfo); ok {
			t.Archive = archive
			continue
		}
		t.Blocks = append(t.Blocks, block)
	}
	return nil
}

