package ui

import (
	"fmt"
	"strings"

	"contraption/ds"
	"contraption/tim/tpart"
	"contraption/tim/tstruct"
	"contraption/tim/ttype"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	detailStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// PartBrowser lists the records of one level. Enter toggles a detail pane
// with the selected record's fields.
type PartBrowser struct {
	title     string
	parts     []tpart.Record
	numMoving int
	cursor    int
	detail    bool
}

func CreatePartBrowser(level tstruct.Level) PartBrowser {
	return PartBrowser{
		title:     level.Header.Title,
		parts:     level.Parts(),
		numMoving: len(level.MovingParts),
	}
}

func (b PartBrowser) Cursor() int {
	return b.cursor
}

func (b PartBrowser) Init() tea.Cmd {
	return nil
}

func (b PartBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}
	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		return b, tea.Quit
	case "up", "k":
		b.cursor = max(b.cursor-1, 0)
	case "down", "j":
		b.cursor = min(b.cursor+1, max(len(b.parts)-1, 0))
	case "enter":
		b.detail = !b.detail
	}
	return b, nil
}

func describePart(i int, record tpart.Record, moving bool) string {
	group := "fixed"
	if moving {
		group = "moving"
	}
	return fmt.Sprintf(
		"%3d  %-20s %-17s (%d, %d)  %s",
		i,
		ttype.Name(record.Tag()),
		record.Kind,
		record.Common.X,
		record.Common.Y,
		group,
	)
}

func (b PartBrowser) View() string {
	builder := strings.Builder{}
	builder.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d parts)", b.title, len(b.parts))))
	builder.WriteString("\n\n")

	if len(b.parts) == 0 {
		builder.WriteString(dimStyle.Render("no parts"))
		builder.WriteString("\n")
	}
	lines := lo.Map(
		b.parts,
		func(record tpart.Record, i int) string {
			line := describePart(i, record, i < b.numMoving)
			if i == b.cursor {
				return selectedStyle.Render("> " + line)
			}
			return "  " + line
		},
	)
	builder.WriteString(strings.Join(lines, "\n"))
	builder.WriteString("\n")

	if b.detail && len(b.parts) > 0 {
		builder.WriteString(detailStyle.Render(ds.DumpJSON(b.parts[b.cursor])))
		builder.WriteString("\n")
	}
	builder.WriteString(dimStyle.Render("up/down: move  enter: details  q: quit"))
	builder.WriteString("\n")
	return builder.String()
}
