// Package tui is the play subcommand's terminal front-end: a bubbletea.Model
// rendering a fixed playback pane (progress bars, a hex dump of the current
// data byte, and an ASCII waveform preview) below a scrollback that
// receives one line per block as it finishes playing.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"retroio/player"
	"retroio/tzx"
)

const tickInterval = 10 * time.Millisecond

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	scrollLineSty = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

type tickMsg time.Time

// Model is the play TUI's bubbletea.Model.
type Model struct {
	player   *player.Player
	filename string

	scrollback   []string
	lastBlockIdx int

	width  int
	height int

	quitting bool
}

// New builds a TUI model bound to an already-built Player.
func New(p *player.Player, filename string) Model {
	return Model{player: p, filename: filename, width: 80}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts playback and the ~100Hz foreground tick loop.
func (m Model) Init() tea.Cmd {
	m.player.Play()
	return tick()
}

// Update handles key input and tick-driven player advancement.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			m.player.Finish()
			return m, tea.Quit
		case " ":
			if m.player.State() == player.Playing {
				m.player.Pause()
			} else {
				m.player.Play()
			}
			return m, nil
		case "right":
			blockIdx, _ := m.player.CurrentIndices()
			if blockIdx+1 < m.player.BlockCount() {
				_ = m.player.SeekToBlock(blockIdx + 1)
			}
			return m, nil
		case "left":
			blockIdx, _ := m.player.CurrentIndices()
			if blockIdx > 0 {
				_ = m.player.SeekToBlock(blockIdx - 1)
			}
			return m, nil
		}
		return m, nil

	case tickMsg:
		m.player.Tick()
		m.flushScrollback()
		if m.player.State() == player.Finished {
			return m, tea.Quit
		}
		return m, tick()
	}
	return m, nil
}

// flushScrollback appends one scrollback line for every block that has
// fully finished playing since the last tick.
func (m *Model) flushScrollback() {
	blockIdx, _ := m.player.CurrentIndices()
	for m.lastBlockIdx < blockIdx && m.lastBlockIdx < m.player.BlockCount() {
		block := m.player.BlockAt(m.lastBlockIdx)
		if block != nil {
			m.scrollback = append(m.scrollback,
				fmt.Sprintf("#%04d %s", m.lastBlockIdx+1, block.Describe()))
		}
		m.lastBlockIdx++
	}
}

// View renders the scrollback plus the fixed playback pane.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("retroio - " + m.filename))
	b.WriteString("\n\n")

	for _, line := range tailLines(m.scrollback, 10) {
		b.WriteString(scrollLineSty.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	blockIdx, waveIdx := m.player.CurrentIndices()
	block := m.player.BlockAt(blockIdx)
	waveform := m.player.WaveformAt(waveIdx)

	title := "(no block)"
	if block != nil {
		title = block.Describe()
	}
	b.WriteString(fmt.Sprintf("Block #%04d/%04d: %s\n", blockIdx+1, m.player.BlockCount(), title))
	b.WriteString(fmt.Sprintf("Waveform %d/%d\n", waveIdx+1, m.player.WaveformCount()))

	b.WriteString(barStyle.Render(preview(waveform, 60)))
	b.WriteString("\n")

	b.WriteString(hexDump(block, waveform))
	b.WriteString("\n")

	elapsed := m.player.Elapsed()
	total := m.player.TotalDuration()
	waveStart, waveEnd := m.player.WaveformBounds(waveIdx)
	blockStart, blockEnd := m.player.BlockBounds(blockIdx)

	b.WriteString(elapsedLine("waveform", elapsed-waveStart, waveEnd-waveStart))
	b.WriteString(elapsedLine("block", elapsed-blockStart, blockEnd-blockStart))
	b.WriteString(elapsedLine("total", elapsed, total))

	b.WriteString(dimStyle.Render(fmt.Sprintf("[%s]  space=pause/resume  ←/→=seek block  q=quit", m.player.State())))
	b.WriteString("\n")

	return b.String()
}

func preview(w interface{ Visualise(int) string }, width int) string {
	s := w.Visualise(width)
	if s == "" {
		return strings.Repeat(" ", width)
	}
	return s
}

// hexDump renders the current data byte (and surrounding bytes) of block,
// if it carries a payload and waveform reports a byte offset.
func hexDump(block tzx.Block, w interface{ PayloadPosition() (int, bool) }) string {
	provider, ok := block.(tzx.DataBytesProvider)
	if !ok {
		return dimStyle.Render("(no data payload)")
	}
	offset, ok := w.PayloadPosition()
	if !ok {
		return dimStyle.Render("(no data payload)")
	}
	data := provider.DataBytes()
	if len(data) == 0 {
		return dimStyle.Render("(empty payload)")
	}

	const window = 8
	start := offset - window/2
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > len(data) {
		end = len(data)
		start = end - window
		if start < 0 {
			start = 0
		}
	}

	var hex, ascii strings.Builder
	for i := start; i < end; i++ {
		cur := i == offset
		h := fmt.Sprintf("%02X ", data[i])
		a := "."
		if data[i] >= 32 && data[i] < 127 {
			a = string(data[i])
		}
		if cur {
			h = barStyle.Render(strings.TrimRight(h, " ")) + " "
			a = titleStyle.Render(a)
		}
		hex.WriteString(h)
		ascii.WriteString(a)
	}
	return fmt.Sprintf("byte %d/%d: %s %s", offset+1, len(data), hex.String(), ascii.String())
}

func elapsedLine(label string, elapsed, total time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := total - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("%-8s %s elapsed %s  remaining %s\n",
		label, progressBar(elapsed, total, 20), fmtDuration(elapsed), fmtDuration(remaining))
}

func progressBar(elapsed, total time.Duration, width int) string {
	filled := 0
	if total > 0 {
		filled = int(float64(width) * float64(elapsed) / float64(total))
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func fmtDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return d.String()
}

func tailLines(lines []string, n int) []string {
	if len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}
