package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ChartWidth is the length in cells of the longest bar.
const ChartWidth = 40

// ChartStyles colors the two bar series.
type ChartStyles struct {
	Generated lipgloss.Style
	Visited   lipgloss.Style
}

// DefaultChartStyles draws generated nodes in green and visited ones in
// yellow.
func DefaultChartStyles() ChartStyles {
	return ChartStyles{
		Generated: lipgloss.NewStyle().Foreground(lipgloss.Color("#2ECC71")),
		Visited:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F")),
	}
}

// WriteChart draws, for each report, a bar for nodes generated and a bar for
// nodes visited, scaled so the largest count spans ChartWidth cells.
func WriteChart(w io.Writer, reports []Report, st ChartStyles) error {
	peak := 0
	for _, r := range reports {
		peak = max(peak, r.Generated, r.Visited)
	}

	var b strings.Builder
	b.WriteString("Heuristic Performance (number of nodes)\n")
	for _, r := range reports {
		fmt.Fprintf(&b, "%-20s gen %s %d\n", r.Heuristic, st.Generated.Render(bar(r.Generated, peak)), r.Generated)
		fmt.Fprintf(&b, "%-20s vis %s %d\n", "", st.Visited.Render(bar(r.Visited, peak)), r.Visited)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("stats: write chart: %w", err)
	}

	return nil
}

// bar returns a run of block characters proportional to n/peak. Any
// non-zero count gets at least one cell.
func bar(n, peak int) string {
	if n <= 0 || peak <= 0 {
		return ""
	}
	cells := n * ChartWidth / peak
	if cells == 0 {
		cells = 1
	}

	return strings.Repeat("█", cells)
}
