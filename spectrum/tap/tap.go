// Package tap reads the ZX Spectrum `.TAP` tape container: a bare sequence
// of `(length: u16, data[length])` records with no per-block header or tag
// byte, each representing one ROM-standard data block. This is the
// supplemental container described alongside the TZX format: it produces
// the same tzx.Block list the player and inspect/convert runners consume,
// by synthesizing a StandardSpeedData block per TAP record.
package tap

import (
	"io"

	"github.com/pkg/errors"

	"retroio/storage"
	"retroio/tzx"
)

// standardPause is the inter-block pause (ms) TAP readers conventionally
// assume, since the container carries no per-block pause of its own.
const standardPause = 1000

// File is a parsed TAP tape: an ordered list of blocks, synthesized as
// StandardSpeedData so downstream code (Player, inspect, convert) never
// needs to know whether the source was a TAP or TZX/CDT file.
type File struct {
	Blocks []tzx.Block
}

// New reads every record in the TAP stream until clean EOF.
func New(r *storage.Reader) (*File, error) {
	f := &File{}
	for {
		length, err := r.ReadShort()
		if err != nil {
			if err == io.EOF {
				return f, nil
			}
			return nil, errors.Wrap(err, "tap: reading record length")
		}

		data, err := r.ReadBytes(int(length))
		if err != nil {
			return nil, errors.Wrap(err, "tap: reading record data")
		}

		f.Blocks = append(f.Blocks, &tzx.StandardSpeedData{
			Pause:  standardPause,
			Length: length,
			Data:   data,
		})
	}
}
