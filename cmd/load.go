package cmd

import (
	"os"

	"github.com/pkg/errors"

	"retroio/amstrad/cdt"
	"retroio/spectrum/tap"
	stzx "retroio/spectrum/tzx"
	"retroio/storage"
	"retroio/tzx"
	"retroio/waveform"
)

// tape is the uniform result of loading any supported container: a block
// list, ready for the inspect runner, the convert runner, or player.New.
// Header and Archive are nil for bare .tap tapes, which carry neither.
type tape struct {
	Header   *tzx.Header
	Archive  *tzx.ArchiveInfo
	Blocks   []tzx.Block
	Platform waveform.Platform
}

// loadTape opens filename and parses it per its container: .tap is the bare
// record sequence (spectrum/tap), .tzx/.cdt (and anything else, by default)
// is the tagged TZX/CDT block format. platformFlag overrides the
// extension-inferred platform when non-empty.
func loadTape(filename, mediaFlag, platformFlag string) (*tape, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "opening tape file")
	}
	defer f.Close()

	reader := storage.NewReader(f)

	platform := waveform.PlatformFromExtension("." + mediaType(mediaFlag, filename))
	if platformFlag != "" {
		if p, ok := waveform.PlatformFromFlag(platformFlag); ok {
			platform = p
		}
	}

	switch mediaType(mediaFlag, filename) {
	case "tap":
		file, err := tap.New(reader)
		if err != nil {
			return nil, errors.Wrap(err, "reading TAP file")
		}
		return &tape{Blocks: file.Blocks, Platform: platform}, nil
	case "cdt":
		var t *stzx.TZX
		if platformFlag != "" {
			t = stzx.NewForPlatform(reader, platform)
		} else {
			t = cdt.New(reader)
		}
		if err := t.Read(); err != nil {
			return nil, errors.Wrap(err, "reading CDT file")
		}
		return &tape{Header: &t.Header, Archive: t.Archive, Blocks: t.Blocks, Platform: platform}, nil
	default:
		t := stzx.NewForPlatform(reader, platform)
		if err := t.Read(); err != nil {
			return nil, errors.Wrap(err, "reading TZX file")
		}
		return &tape{Header: &t.Header, Archive: t.Archive, Blocks: t.Blocks, Platform: platform}, nil
	}
}
