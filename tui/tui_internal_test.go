package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"retroio/tzx"
)

func TestTailLinesKeepsOnlyLastN(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}
	assert.Equal(t, []string{"c", "d", "e"}, tailLines(lines, 3))
	assert.Equal(t, lines, tailLines(lines, 10))
}

func TestFmtDurationRoundsToSeconds(t *testing.T) {
	assert.Equal(t, "1s", fmtDuration(1100*time.Millisecond))
	assert.Equal(t, "2s", fmtDuration(1600*time.Millisecond))
}

func TestElapsedLineClampsNegativeAndOverrun(t *testing.T) {
	line := elapsedLine("block", -5*time.Second, 10*time.Second)
	assert.Contains(t, line, "elapsed 0s")
	assert.Contains(t, line, "remaining 10s")

	line = elapsedLine("block", 20*time.Second, 10*time.Second)
	assert.Contains(t, line, "remaining 0s")
}

func TestProgressBarFillsProportionally(t *testing.T) {
	assert.Equal(t, strings.Repeat("░", 10), progressBar(0, 10*time.Second, 10))
	assert.Equal(t, strings.Repeat("█", 5)+strings.Repeat("░", 5), progressBar(5*time.Second, 10*time.Second, 10))
	assert.Equal(t, strings.Repeat("█", 10), progressBar(20*time.Second, 10*time.Second, 10))
	assert.Equal(t, strings.Repeat("░", 10), progressBar(time.Second, 0, 10))
}

type fakeVisualiser struct{ s string }

func (f fakeVisualiser) Visualise(int) string { return f.s }

func TestPreviewFallsBackToBlanksWhenWaveformHasNothingToShow(t *testing.T) {
	assert.Equal(t, strings.Repeat(" ", 6), preview(fakeVisualiser{""}, 6))
	assert.Equal(t, "▀▄", preview(fakeVisualiser{"▀▄"}, 6))
}

type fakePositioner struct {
	offset int
	ok     bool
}

func (f fakePositioner) PayloadPosition() (int, bool) { return f.offset, f.ok }

func TestHexDumpReportsNoPayloadForNonDataBlock(t *testing.T) {
	block := &tzx.PureTone{}
	out := hexDump(block, fakePositioner{ok: false})
	assert.Contains(t, out, "no data payload")
}

func TestHexDumpRendersWindowAroundOffset(t *testing.T) {
	block := &tzx.StandardSpeedData{Data: []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}}
	out := hexDump(block, fakePositioner{offset: 5, ok: true})
	assert.Contains(t, out, "byte 6/10")
}
