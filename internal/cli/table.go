package cli

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"tasktracker/internal/models"
)

const priorityColumn = 4

// renderTaskTable formats tasks as a bordered table. Priorities are coloured
// when w is a terminal that supports colour.
func renderTaskTable(w io.Writer, tasks []models.Task, dateLayout string, now time.Time) string {
	re := lipgloss.NewRenderer(w)
	headerStyle := re.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := re.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		due := t.DueDate.Format(dateLayout)
		if t.IsOverdue(now) {
			due += " !"
		}
		rows = append(rows, []string{
			strconv.FormatInt(t.ID, 10),
			normalizeText(t.Title),
			normalizeText(t.Description),
			due,
			t.Priority.Label(),
			yesNo(t.Completed),
		})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(re.NewStyle()).
		Headers("ID", "Title", "Description", "Due Date", "Priority", "Completed").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == priorityColumn && row >= 0 && row < len(tasks) {
				return cellStyle.Foreground(lipgloss.Color(tasks[row].Priority.Color()))
			}
			return cellStyle
		})

	return tbl.Render()
}

// normalizeText replaces newlines with spaces for single-line display.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
