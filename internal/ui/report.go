package ui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"algolab/internal/algorithms"
	"algolab/internal/benchmark"
	"algolab/internal/insight"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const defaultChartWidth = 40

// RenderTable draws one line per row, highlighting the fastest cell.
func RenderTable(rows []benchmark.ResultRow, show []algorithms.Kind) string {
	if len(rows) == 0 {
		return ""
	}

	headers := []string{"Dataset (n)"}
	for _, k := range show {
		headers = append(headers, k.Label())
	}

	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		line := []string{formatCount(r.DataSize)}
		for _, k := range show {
			cell := fmt.Sprintf("%.4f ms", r.Timing(k))
			if k == algorithms.Recursive && r.RecursiveEstimated {
				cell += " *"
			}
			line = append(line, cell)
		}
		data = append(data, line)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				if col > 0 {
					return base.Bold(true).Foreground(KindColor(show[col-1]))
				}
				return base.Bold(true)
			}
			if col == 0 || row < 0 || row >= len(rows) {
				return base
			}
			k := show[col-1]
			if benchmark.IsFastest(rows[row], k) {
				return base.Bold(true).Foreground(iterativeColor)
			}
			return base
		})

	out := sectionTitleStyle.Render("Results") + "\n" + t.Render()
	for _, r := range rows {
		if r.RecursiveEstimated && slices.Contains(show, algorithms.Recursive) {
			out += "\n" + mutedStyle.Render("* estimated from a truncated sample, not measured directly")
			break
		}
	}
	return out
}

// RenderChart draws horizontal bars per dataset size, scaled to the largest
// visible timing.
func RenderChart(rows []benchmark.ResultRow, show []algorithms.Kind, width int) string {
	if len(rows) == 0 {
		return mutedStyle.Render("No benchmark data yet. Run a benchmark to begin.")
	}
	if width <= 0 {
		width = defaultChartWidth
	}

	max := benchmark.MaxTiming(rows, show...)

	var sb strings.Builder
	sb.WriteString(sectionTitleStyle.Render("Runtime Chart"))
	sb.WriteString("\n")
	sb.WriteString(legend(show))
	sb.WriteString("\n\n")

	for _, r := range rows {
		fastest := benchmark.Fastest(r)
		fmt.Fprintf(&sb, "n = %s\n", formatCount(r.DataSize))
		for _, k := range show {
			v := r.Timing(k)
			n := 0
			if max > 0 {
				n = int(v / max * float64(width))
			}
			if n == 0 && v > 0 {
				n = 1
			}
			bar := kindStyle(k).Render(strings.Repeat("█", n))
			mark := ""
			if k == fastest {
				mark = " " + severityStyle(insight.Success).Render("fastest")
			}
			fmt.Fprintf(&sb, "  %-12s %s %.3f ms%s\n", k.Label(), bar, v, mark)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func legend(show []algorithms.Kind) string {
	parts := make([]string, 0, len(show))
	for _, k := range show {
		parts = append(parts, kindStyle(k).Render("●")+" "+k.Label()+" "+k.Complexity())
	}
	return strings.Join(parts, "   ")
}

// RenderInsights renders insights through glamour, falling back to plain
// styled text when glamour cannot render.
func RenderInsights(insights []insight.Insight, width int) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if out, err := renderer.Render(insight.Markdown(insights)); err == nil {
			return out
		}
	}
	return RenderInsightsPlain(insights)
}

// RenderInsightsPlain renders insights with lipgloss only.
func RenderInsightsPlain(insights []insight.Insight) string {
	var sb strings.Builder
	sb.WriteString(sectionTitleStyle.Render("Automatic Analysis"))
	sb.WriteString("\n")
	if len(insights) == 0 {
		sb.WriteString(mutedStyle.Render("Run a benchmark to see insights."))
		return sb.String()
	}
	for _, in := range insights {
		sb.WriteString(severityStyle(in.Severity).Render(fmt.Sprintf("[%s] %s", in.Severity, in.Title)))
		sb.WriteString("\n  ")
		sb.WriteString(in.Description)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderConfidence shows the qualitative confidence for an iteration count.
func RenderConfidence(iterations int) string {
	c := insight.ConfidenceLevel(iterations)
	return fmt.Sprintf("Iterations: %d  Confidence: %s", iterations, confidenceStyle(c.Level).Render(c.Label))
}

// formatCount renders n with thousands separators.
func formatCount(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + formatCount(-n)
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
