package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/akarpov/tasktrack/internal/model"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	overdueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

const archivedAtLayout = "2006-01-02 15:04"

var taskHeader = []string{"ID", "PROJECT", "TASK", "DUE DATE", "COMPLETE"}

// RenderTasks renders the active-task table. Overdue rows are marked in
// bold red. A task with an unreadable due date renders as not overdue
// and produces a warning instead of aborting the listing.
func RenderTasks(tasks []model.Task, today time.Time) (string, []string) {
	if len(tasks) == 0 {
		return "No tasks to show.", nil
	}

	rows := make([][]string, 0, len(tasks))
	overdue := make([]bool, 0, len(tasks))
	warnings := make([]string, 0)
	for _, task := range tasks {
		late := false
		if task.DueDate != "" {
			v, err := model.IsOverdue(task.DueDate, today)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf(
					"task %d has an unreadable due date %q; update it to restore overdue marking",
					task.ID, task.DueDate))
			}
			late = v
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", task.ID),
			task.Project,
			task.Description,
			task.DueDate,
			fmt.Sprintf("%t", task.Complete),
		})
		overdue = append(overdue, late)
	}
	return renderTable(taskHeader, rows, overdue), warnings
}

// RenderArchivedTasks renders the archive table. Archived tasks are
// history, so no overdue marking applies.
func RenderArchivedTasks(items []model.ArchivedTask) string {
	if len(items) == 0 {
		return "No archived tasks to show."
	}

	header := append(append([]string{}, taskHeader...), "ARCHIVED")
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			fmt.Sprintf("%d", item.ID),
			item.Project,
			item.Description,
			item.DueDate,
			fmt.Sprintf("%t", item.Complete),
			item.ArchivedAt.Format(archivedAtLayout),
		})
	}
	return renderTable(header, rows, make([]bool, len(rows)))
}

func renderTable(header []string, rows [][]string, highlight []bool) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, headerStyle.Render(padRow(header, widths)))
	for i, row := range rows {
		line := padRow(row, widths)
		if highlight[i] {
			line = overdueStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func padRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
