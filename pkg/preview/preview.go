// Package preview prints the dot grid and the run summary to a terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xob0t/daydots/pkg/progress"
)

const (
	doneGlyph    = "●"
	pendingGlyph = "·"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Faint(true)
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// Options sizes the terminal grid. Colors are "#rrggbb".
type Options struct {
	Cols     int
	MaxCells int
	Done     string
	Pending  string
}

// Cells returns how many days each character stands for so that the grid
// fits into maxCells characters.
func Cells(totalDays, maxCells int) (cells, perCell int) {
	if totalDays <= 0 {
		return 0, 1
	}
	perCell = 1
	if maxCells > 0 && totalDays > maxCells {
		perCell = (totalDays + maxCells - 1) / maxCells
	}
	return (totalDays + perCell - 1) / perCell, perCell
}

// Grid renders p as rows of glyphs. A cell counts as done once every day
// it covers has elapsed.
func Grid(p progress.Progress, opts Options) string {
	p = p.Clamped()
	cols := max(opts.Cols, 1)
	cells, perCell := Cells(p.TotalDays, opts.MaxCells)

	done := lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Done))
	pending := lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Pending))

	var b strings.Builder
	for i := 0; i < cells; i++ {
		if i > 0 && i%cols == 0 {
			b.WriteByte('\n')
		}
		last := min((i+1)*perCell, p.TotalDays)
		if last <= p.DayNumber {
			b.WriteString(done.Render(doneGlyph))
		} else {
			b.WriteString(pending.Render(pendingGlyph))
		}
	}

	body := b.String()
	if perCell > 1 {
		body += "\n" + mutedStyle.Render(fmt.Sprintf("1 dot = %d days", perCell))
	}
	return frameStyle.Render(body)
}

// SummaryLine is the plain one-line record of a run.
func SummaryLine(output string, mode progress.Mode, p progress.Progress, span progress.DateSpan) string {
	if mode == progress.ModeYear {
		return fmt.Sprintf("Wrote %s for day %d/%d (year %d, UTC)", output, p.DayNumber, p.TotalDays, span.Start.Year())
	}
	return fmt.Sprintf("Wrote %s for day %d/%d (%s, UTC)", output, p.DayNumber, p.TotalDays, span)
}

// Summary styles SummaryLine for terminals.
func Summary(output string, mode progress.Mode, p progress.Progress, span progress.DateSpan) string {
	line := SummaryLine(output, mode, p, span)
	left := mutedStyle.Render(fmt.Sprintf("%d days left", p.DaysLeft()))
	return titleStyle.Render(line) + " " + left
}
