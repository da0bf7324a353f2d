// Package inspect is the block-list display runner: given a parsed tape, it
// writes a one-line summary per block and, in extended mode, the
// per-block-kind detail lines (archive-info entries, hardware-type entries,
// header/CPC payload previews, generalized-data symbol tables).
//
// inspect never touches the tape's waveforms; a waveform-count summary is
// added separately by the caller when --waveforms is requested, since
// building the flattened waveform list is the Player's job (player.New),
// not this runner's.
package inspect

import (
	"fmt"
	"io"
	"strings"

	"retroio/tzx"
)

// Run writes a one-line summary per block to w, in tape order. header and
// archive are optional: a bare .TAP tape carries neither. extended appends
// each block's Extended() detail lines, indented.
func Run(w io.Writer, header *tzx.Header, archive *tzx.ArchiveInfo, blocks []tzx.Block, extended bool) {
	if archive != nil {
		fmt.Fprintln(w, "ARCHIVE INFORMATION:")
		for _, line := range archive.Extended() {
			fmt.Fprintln(w, "  "+line)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "DATA BLOCKS:")
	for i, block := range blocks {
		fmt.Fprintf(w, "#%04d %s\n", i+1, block.Describe())
		if extended {
			for _, line := range block.Extended() {
				fmt.Fprintln(w, "      "+line)
			}
		}
	}

	if header != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "TZX revision: v%d.%d", header.MajorVersion, header.MinorVersion)
		if header.MinorVersion > tzx.SupportedMinorVersion {
			fmt.Fprintf(w, " - NOTE: built against v%d.%d, some newer block kinds may not be fully recognised.",
				tzx.SupportedMajorVersion, tzx.SupportedMinorVersion)
		}
		fmt.Fprintln(w)
	}
}

// ListBasicPrograms writes a preview line for every StandardSpeedData block
// whose payload starts with a ROM-standard "Program" header, supplementing
// the plain block listing for tapes carrying BASIC loaders.
func ListBasicPrograms(w io.Writer, blocks []tzx.Block) {
	var listing strings.Builder
	for i, block := range blocks {
		std, ok := block.(*tzx.StandardSpeedData)
		if !ok {
			continue
		}
		for _, line := range std.Extended() {
			if strings.HasPrefix(line, "Header: Program") {
				fmt.Fprintf(&listing, "BLK#%04d: %s\n", i+1, line)
			}
		}
	}
	if listing.Len() == 0 {
		fmt.Fprintln(w, "No BASIC program headers found.")
		return
	}
	fmt.Fprintln(w, "BASIC PROGRAMS:")
	fmt.Fprintln(w)
	fmt.Fprint(w, listing.String())
}
