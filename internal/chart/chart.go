// Package chart draws the wellness and productivity history as terminal bars.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/models"
)

// EmptyMessage is shown instead of a chart when the log has no entries.
const EmptyMessage = "No data yet. Do a daily check-in!"

const (
	scoreGlyph        = "█"
	productivityGlyph = "▒"
	minBarWidth       = 10
	dateWidth         = len(constants.DateFormat)
)

var (
	scoreStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	productivityStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	axisStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Options controls the chart size.
type Options struct {
	// Width is the total width in cells. Zero means 60.
	Width int
	// MaxRows keeps only the most recent entries. Zero means all.
	MaxRows int
}

// Render draws one row pair per entry, in log order: the wellness score bar and the
// productivity bar, both on a 0..10 scale.
func Render(entries []models.DailyEntry, opts Options) string {
	if len(entries) == 0 {
		return EmptyMessage
	}
	if opts.Width <= 0 {
		opts.Width = 60
	}
	if opts.MaxRows > 0 && len(entries) > opts.MaxRows {
		entries = entries[len(entries)-opts.MaxRows:]
	}

	// date, space, bar, space, value
	barWidth := opts.Width - dateWidth - 7
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	var b strings.Builder
	b.WriteString(Legend())
	b.WriteString("\n")
	for _, e := range entries {
		score := BarLength(e.WellnessScore, barWidth)
		prod := BarLength(float64(e.Productivity), barWidth)

		fmt.Fprintf(&b, "%-*s %s %5.2f\n", dateWidth, e.Date,
			scoreStyle.Render(strings.Repeat(scoreGlyph, score))+strings.Repeat(" ", barWidth-score), e.WellnessScore)
		fmt.Fprintf(&b, "%-*s %s %5d\n", dateWidth, "",
			productivityStyle.Render(strings.Repeat(productivityGlyph, prod))+strings.Repeat(" ", barWidth-prod), e.Productivity)
	}
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s %s", dateWidth, "", axis(barWidth))))
	return b.String()
}

// Legend names the two series.
func Legend() string {
	return scoreStyle.Render(scoreGlyph+" wellness_score") + "  " + productivityStyle.Render(productivityGlyph+" productivity")
}

// BarLength scales a 0..10 value to width cells, rounding to the nearest cell.
func BarLength(value float64, width int) int {
	n := int(math.Round(value / constants.MaxComponentScore * float64(width)))
	return max(0, min(n, width))
}

// axis draws 0, 5 and 10 tick labels under the bars.
func axis(width int) string {
	line := []rune(strings.Repeat("─", width))
	labels := make([]rune, width+2)
	for i := range labels {
		labels[i] = ' '
	}
	for _, tick := range []int{0, 5, 10} {
		pos := BarLength(float64(tick), width)
		if pos >= width {
			pos = width - 1
		}
		line[pos] = '┼'
		label := []rune(fmt.Sprint(tick))
		start := min(pos, len(labels)-len(label))
		copy(labels[start:], label)
	}
	return string(line) + "\n" + fmt.Sprintf("%*s ", dateWidth, "") + strings.TrimRight(string(labels), " ")
}
