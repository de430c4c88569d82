package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/rout"
	"github.com/wippyai/rout/encode"
	"github.com/wippyai/rout/errors"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	addrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	sentinelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// header and footer lines around the viewport
const chromeHeight = 2

type previewModel struct {
	filename string
	status   string
	entries  []rout.Entry
	viewport viewport.Model
	jump     textinput.Model
	format   encode.Format
}

func newPreviewModel(filename string, format encode.Format, entries []rout.Entry, width, height int) *previewModel {
	ti := textinput.New()
	ti.Prompt = "jump to 0x"
	ti.Placeholder = "address"
	ti.CharLimit = 8
	ti.Width = 10

	m := &previewModel{
		filename: filename,
		entries:  entries,
		format:   format,
		jump:     ti,
	}
	m.viewport = viewport.New(width, max(height-chromeHeight, 1))
	m.viewport.SetContent(m.listing())
	return m
}

func (m *previewModel) Init() tea.Cmd {
	return nil
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		return m, nil

	case tea.KeyMsg:
		if m.jump.Focused() {
			switch msg.String() {
			case "enter":
				m.jumpTo(m.jump.Value())
				m.jump.Blur()
				m.jump.Reset()
				return m, nil
			case "esc":
				m.jump.Blur()
				m.jump.Reset()
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.jump, cmd = m.jump.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "/":
			m.status = ""
			return m, m.jump.Focus()
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// jumpTo scrolls to the first entry at or above the hex address s.
func (m *previewModel) jumpTo(s string) {
	addr, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 32)
	if err != nil {
		m.status = fmt.Sprintf("bad address %q", s)
		return
	}
	if len(m.entries) == 0 {
		m.status = "no words"
		return
	}

	idx := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Addr >= uint32(addr)
	})
	if idx == len(m.entries) {
		idx = len(m.entries) - 1
		m.status = fmt.Sprintf("%08x is past the last word", addr)
	} else if m.entries[idx].Addr != uint32(addr) {
		m.status = fmt.Sprintf("%08x not present, showing %08x", addr, m.entries[idx].Addr)
	} else {
		m.status = fmt.Sprintf("at %08x", addr)
	}
	m.viewport.SetYOffset(idx)
}

func (m *previewModel) listing() string {
	var b strings.Builder
	for i, e := range m.entries {
		row := fmt.Sprintf("%s  %08x  %10d", addrStyle.Render(fmt.Sprintf("%08x", e.Addr)), e.Value, e.Value)
		if m.format == encode.JSON && i == len(m.entries)-1 && e.Value == rout.Sentinel {
			row = sentinelStyle.Render(row + "  sentinel")
		}
		b.WriteString(row)
		if i < len(m.entries)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m *previewModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("rout"))
	fmt.Fprintf(&b, " %s (%s, %d words)\n", m.filename, m.format, len(m.entries))
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.jump.Focused() {
		b.WriteString(m.jump.View())
		return b.String()
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("↑/↓ scroll • / jump • g/G top/bottom • q quit • %3.f%%", m.viewport.ScrollPercent()*100)))
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(statusStyle.Render(m.status))
	}
	return b.String()
}

func runPreview(filename string, format encode.Format, entries []rout.Entry) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.Unsupported(errors.PhaseConfig, "preview without a terminal on stdout")
	}

	width, height, err := term.GetSize(fd)
	if err != nil {
		width, height = 80, 24
	}

	p := tea.NewProgram(newPreviewModel(filename, format, entries, width, height), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
