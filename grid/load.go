package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read parses a maze from r. Each line is trimmed of surrounding whitespace
// and trailing blank lines are dropped; blank lines inside the layout are
// kept and will fail the rectangularity check.
func Read(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read layout: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return Parse(rows)
}

// Load reads and parses the maze file at path.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open %q: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
