package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jmylchreest/reticle/internal/cache"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// TableFormatter renders entries as a bordered table.
type TableFormatter struct {
	opts FormatterOptions
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(opts FormatterOptions) *TableFormatter {
	return &TableFormatter{opts: opts}
}

// Format writes entries as a table. An empty cache prints a short notice
// instead of an empty table.
func (f *TableFormatter) Format(w io.Writer, entries []cache.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No cached parameters")
		return err
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			f.opts.shortHash(e.Hash),
			strconv.Itoa(e.TargetX),
			strconv.Itoa(e.TargetY),
			formatOpacity(e.Opacity),
			e.PathForReadability,
			f.opts.relativeTime(e.UpdatedAt),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("HASH", "X", "Y", "OPACITY", "PATH", "UPDATED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, t.String())
	return err
}
