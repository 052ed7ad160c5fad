package update

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akarpov/tasktrack/internal/views"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cursorSet    = "> "
	cursorUnset  = "  "
)

const helpMarkdown = `# tasktrack browser

| Key | Action |
| --- | ------ |
| j / k, arrows | move |
| c | mark selected task complete |
| x | delete selected task |
| a | archive selected task |
| tab | switch between active and archive |
| r | reload from disk |
| ? | toggle this help |
| q | quit |

Archive rows are read-only.`

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	if m.HelpVisible {
		return views.RenderMarkdown(helpMarkdown)
	}

	var body string
	var warnings []string
	if m.CurrentView == ViewArchive {
		body = views.RenderArchivedTasks(m.Archived)
	} else {
		body, warnings = views.RenderTasks(m.Tasks, m.Now())
	}

	lines := []string{titleStyle.Render("tasktrack - " + string(m.CurrentView))}
	if m.Loading {
		lines = append(lines, m.spin.View()+" loading")
	} else {
		lines = append(lines, withCursor(body, m.Cursor, m.rowCount()))
	}
	for _, w := range warnings {
		lines = append(lines, warningStyle.Render(w))
	}
	if m.Status.Text != "" {
		style := statusStyle
		if m.Status.IsError {
			style = errorStyle
		}
		lines = append(lines, style.Render(m.Status.Text))
	}
	lines = append(lines, footerStyle.Render("c complete · x delete · a archive · tab archive view · ? help · q quit"))
	return strings.Join(lines, "\n")
}

// withCursor marks the selected data row. The first table line is the
// header; rows follow in cursor order.
func withCursor(table string, cursor, rows int) string {
	lines := strings.Split(table, "\n")
	if rows == 0 || len(lines) < 2 {
		return table
	}
	out := make([]string, 0, len(lines))
	out = append(out, cursorUnset+lines[0])
	for i, line := range lines[1:] {
		marker := cursorUnset
		if i == cursor {
			marker = cursorSet
		}
		out = append(out, marker+line)
	}
	return strings.Join(out, "\n")
}
