// Package cdt reads Amstrad CDT tape images, as specified in the TZX
// specification: https://www.worldofspectrum.org/TZXformat.html
//
// The `.CDT` tape image file format is byte-identical to `.TZX`; the only
// difference is the t-cycle-to-seconds conversion used when building
// waveforms, since the CPC's Z80 runs at a different effective rate than
// the ZX Spectrum's. This package is a thin wrapper fixing the platform to
// AmstradCPC.
package cdt

import (
	"retroio/spectrum/tzx"
	"retroio/storage"
	"retroio/waveform"
)

// New prepares a CDT reader.
func New(reader *storage.Reader) *tzx.TZX {
	return tzx.NewForPlatform(reader, waveform.AmstradCPC)
}
