package stats

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rollingdie/astar"
)

// ErrUnknownFormat indicates an export format other than json or yaml.
var ErrUnknownFormat = errors.New("stats: unknown export format")

// Export formats understood by Export.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Report is the statistics record of one search run.
type Report struct {
	RunID     string        `json:"run_id" yaml:"run_id"`
	Maze      string        `json:"maze" yaml:"maze"`
	Heuristic string        `json:"heuristic" yaml:"heuristic"`
	Found     bool          `json:"found" yaml:"found"`
	Moves     int           `json:"moves" yaml:"moves"`
	Generated int           `json:"generated" yaml:"generated"`
	Visited   int           `json:"visited" yaml:"visited"`
	Elapsed   time.Duration `json:"elapsed_ns" yaml:"elapsed"`
}

// FromResult builds the report of res, labelled with the maze name.
func FromResult(maze string, res *astar.Result) Report {
	return Report{
		RunID:     res.RunID.String(),
		Maze:      maze,
		Heuristic: res.Heuristic.String(),
		Found:     res.Found,
		Moves:     res.Moves,
		Generated: res.Generated,
		Visited:   res.Visited,
		Elapsed:   res.Elapsed,
	}
}

// printer formats counts with digit grouping.
var printer = message.NewPrinter(language.English)

// WriteSummary writes the metrics block of a single run.
func WriteSummary(w io.Writer, r Report) error {
	var b strings.Builder
	b.WriteString("|---------------- PERFORMANCE METRICS -----------------|\n")
	printer.Fprintf(&b, "Heuristic                                       : %s\n", r.Heuristic)
	if r.Found {
		printer.Fprintf(&b, "No. of moves in the solution                    : %d\n", r.Moves)
	} else {
		b.WriteString("No. of moves in the solution                    : no path found\n")
	}
	printer.Fprintf(&b, "No. of nodes put on the queue                   : %d\n", r.Generated)
	printer.Fprintf(&b, "No. of nodes visited / removed from the queue   : %d\n", r.Visited)
	b.WriteString("|------------------------------------------------------|\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("stats: write summary: %w", err)
	}

	return nil
}

// WriteTable writes one aligned row per report.
func WriteTable(w io.Writer, reports []Report) error {
	var b strings.Builder
	printer.Fprintf(&b, "%-20s %8s %12s %12s\n", "HEURISTIC", "MOVES", "GENERATED", "VISITED")
	for _, r := range reports {
		moves := "-"
		if r.Found {
			moves = printer.Sprintf("%d", r.Moves)
		}
		printer.Fprintf(&b, "%-20s %8s %12d %12d\n", r.Heuristic, moves, r.Generated, r.Visited)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("stats: write table: %w", err)
	}

	return nil
}

// Export writes reports in the given format ("json" or "yaml").
func Export(w io.Writer, format string, reports []Report) error {
	var (
		out []byte
		err error
	)
	switch strings.ToLower(format) {
	case FormatJSON:
		out, err = sonic.ConfigStd.MarshalIndent(reports, "", "  ")
		out = append(out, '\n')
	case FormatYAML:
		out, err = yaml.Marshal(reports)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("stats: encode %s: %w", format, err)
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("stats: write %s: %w", format, err)
	}

	return nil
}
