package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/netsketch/netsketch/pkg/layout"
	"github.com/netsketch/netsketch/pkg/network"
	"github.com/netsketch/netsketch/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// arrowheadCycle is the order the TUI steps through arrowhead styles.
var arrowheadCycle = []network.Arrowhead{
	network.ArrowheadNone,
	network.ArrowheadEmpty,
	network.ArrowheadSolid,
}

// EditorModel is the bubbletea model for the terminal diagram editor.
// Every edit replaces the network or style wholesale; the preview stats
// are recomputed from a fresh layout pass on each render.
type EditorModel struct {
	Net    network.Network
	Style  network.Style
	Cursor int

	// Output is where the diagram gets written on save.
	Output string

	// Saved reports whether the user saved before quitting.
	Saved bool

	status string
}

// NewEditorModel creates an editor model over the given starting state.
func NewEditorModel(net network.Network, style network.Style, output string) EditorModel {
	return EditorModel{Net: net, Style: style, Output: output}
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.status = ""
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Net)-1 {
			m.Cursor++
		}

	case "right", "+", "=":
		m.Net = m.Net.SetNeurons(m.Cursor, m.Net[m.Cursor].Neurons+1)
	case "left", "-":
		m.Net = m.Net.SetNeurons(m.Cursor, m.Net[m.Cursor].Neurons-1)

	case "a":
		m.Net = m.Net.Add()
		m.Cursor = len(m.Net) - 1
	case "d", "x":
		m.Net = m.Net.Remove(m.Cursor)
		if m.Cursor >= len(m.Net) {
			m.Cursor = len(m.Net) - 1
		}

	case "b":
		m.Style.ShowBias = !m.Style.ShowBias
	case "n":
		m.Style.ShowLabels = !m.Style.ShowLabels
	case "c":
		m.Style.Bezier = !m.Style.Bezier
	case "o":
		if m.Style.Direction == network.DirectionHorizontal {
			m.Style.Direction = network.DirectionVertical
		} else {
			m.Style.Direction = network.DirectionHorizontal
		}
	case "t":
		m.Style.Arrowheads = nextArrowhead(m.Style.Arrowheads)
	case "r":
		m.Style = network.Reroll(m.Style)
		m.status = "rerolled weights"

	case "s", "enter":
		m.Saved = true
		return m, tea.Quit
	}
	return m, nil
}

func nextArrowhead(a network.Arrowhead) network.Arrowhead {
	for i, cur := range arrowheadCycle {
		if cur == a {
			return arrowheadCycle[(i+1)%len(arrowheadCycle)]
		}
	}
	return network.ArrowheadNone
}

func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("netsketch editor"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ layer  ←/→ neurons  a add  d delete  b bias  o direction  r reroll  s save  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.Net))
	for i, l := range m.Net {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows[i] = []string{cursor, l.ID, strconv.Itoa(l.Neurons), neuronBar(l.Neurons)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Layer", "Neurons", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle()
		})
	b.WriteString(t.Render())
	b.WriteString("\n\n")

	scene := layout.Build(m.Net, m.Style.Normalize(), layout.Viewport{
		Width:  pipeline.DefaultWidth,
		Height: pipeline.DefaultHeight,
	})
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d nodes · %d links", len(scene.Nodes), len(scene.Links))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  direction %s · bias %v · labels %v · curves %v · arrowheads %s",
		m.Style.Direction, m.Style.ShowBias, m.Style.ShowLabels, m.Style.Bezier, m.Style.Arrowheads)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("  save writes " + m.Output))

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(StyleSuccess.Render("  " + m.status))
	}
	b.WriteString("\n")

	return b.String()
}

// neuronBar draws a proportional bar for a neuron count.
func neuronBar(n int) string {
	return strings.Repeat("█", n)
}
