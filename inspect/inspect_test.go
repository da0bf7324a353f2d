package inspect_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"retroio/inspect"
	"retroio/tzx"
)

func basicHeaderBlock(name string) *tzx.StandardSpeedData {
	body := make([]byte, 19)
	body[0] = 0x00 // header flag
	body[1] = 0    // Program
	copy(body[2:12], name+strings.Repeat(" ", 10))
	return &tzx.StandardSpeedData{Data: body}
}

func TestRunListsBlocksInOrder(t *testing.T) {
	blocks := []tzx.Block{
		basicHeaderBlock("GAME"),
		&tzx.PureTone{PulseLength: 2168, PulseCount: 10},
	}

	var buf bytes.Buffer
	inspect.Run(&buf, nil, nil, blocks, false)

	out := buf.String()
	assert.Contains(t, out, "#0001")
	assert.Contains(t, out, "#0002")
	assert.Contains(t, out, "Pure Tone")
}

func TestRunExtendedIncludesHeaderPreview(t *testing.T) {
	blocks := []tzx.Block{basicHeaderBlock("GAME")}

	var buf bytes.Buffer
	inspect.Run(&buf, nil, nil, blocks, true)

	assert.Contains(t, buf.String(), `Header: Program "GAME"`)
}

func TestListBasicProgramsFindsHeaderBlocksOnly(t *testing.T) {
	blocks := []tzx.Block{
		basicHeaderBlock("LOADER"),
		&tzx.PureTone{PulseLength: 2168, PulseCount: 10},
	}

	var buf bytes.Buffer
	inspect.ListBasicPrograms(&buf, blocks)

	out := buf.String()
	assert.Contains(t, out, "BLK#0001")
	assert.Contains(t, out, "LOADER")
}

func TestListBasicProgramsReportsNoneFound(t *testing.T) {
	blocks := []tzx.Block{&tzx.PureTone{PulseLength: 2168, PulseCount: 10}}

	var buf bytes.Buffer
	inspect.ListBasicPrograms(&buf, blocks)

	assert.Contains(t, buf.String(), "No BASIC program headers found.")
}
