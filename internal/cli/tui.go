package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/pedigree/pkg/chart/orientation"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// OrientationModel - Interactive layout selection
// =============================================================================

// OrientationModel is the bubbletea model for picking the chart layout.
type OrientationModel struct {
	Kinds    []orientation.Kind
	Cursor   int
	Selected orientation.Kind // zero until enter is pressed

	persons int
}

// NewOrientationModel creates a picker with the cursor on current. persons
// is shown in the title.
func NewOrientationModel(current orientation.Kind, persons int) OrientationModel {
	m := OrientationModel{Kinds: orientation.Kinds, persons: persons}
	for i, k := range m.Kinds {
		if k == current {
			m.Cursor = i
		}
	}
	return m
}

func (m OrientationModel) Init() tea.Cmd {
	return nil
}

func (m OrientationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Kinds)-1 {
			m.Cursor++
		}
	case "enter":
		m.Selected = m.Kinds[m.Cursor]
		return m, tea.Quit
	}
	return m, nil
}

func (m OrientationModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Layout"))
	if m.persons > 0 {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d persons", m.persons)))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.Kinds))
	for i, k := range m.Kinds {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		o := orientation.New(k, orientation.Options{})
		box := fmt.Sprintf("%g × %g", o.BoxWidth(), o.BoxHeight())
		rows[i] = []string{cursor, k.String(), k.Describe(), box}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Layout", "Ancestors grow", "Box").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case row == m.Cursor:
				return listSelectedStyle
			case col == 3:
				return listDimStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}

// pickOrientation runs the picker full screen and returns the chosen
// layout name, or "" when the user quit.
func pickOrientation(current string, persons int) (string, error) {
	kind, err := orientation.ParseKind(current)
	if err != nil {
		kind = orientation.TopBottom
	}
	final, err := tea.NewProgram(NewOrientationModel(kind, persons)).Run()
	if err != nil {
		return "", fmt.Errorf("layout picker: %w", err)
	}
	m, ok := final.(OrientationModel)
	if !ok || m.Selected == 0 {
		return "", nil
	}
	return m.Selected.String(), nil
}
