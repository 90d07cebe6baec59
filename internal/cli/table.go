// Package cli provides command-line interface utilities.
package cli

import "strings"

// Table is a simple column-aligned text table with optional per-column
// wrapping for long cells.
type Table struct {
	headers   []string
	rows      [][]string
	padding   int
	maxWidths map[int]int
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers:   headers,
		padding:   2,
		maxWidths: make(map[int]int),
	}
}

// SetColumnMaxWidth limits a column's width. Longer cells wrap onto
// continuation lines.
func (t *Table) SetColumnMaxWidth(col, width int) {
	t.maxWidths[col] = width
}

// AddRow appends one row. Missing cells render empty and extra cells
// are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Render returns the formatted table: a header line, a dash separator
// and one or more lines per row.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	wrapped := make([][][]string, len(t.rows))
	for i, row := range t.rows {
		wrapped[i] = make([][]string, len(row))
		for col, cell := range row {
			if max := t.maxWidths[col]; max > 0 {
				wrapped[i][col] = wrapText(cell, max)
			} else {
				wrapped[i][col] = []string{cell}
			}
		}
	}

	widths := make([]int, len(t.headers))
	for col, header := range t.headers {
		widths[col] = len(header)
	}
	for _, row := range wrapped {
		for col, lines := range row {
			for _, line := range lines {
				if len(line) > widths[col] {
					widths[col] = len(line)
				}
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	cells := make([]string, len(t.headers))
	var b strings.Builder

	for col, header := range t.headers {
		cells[col] = padRight(header, widths[col])
	}
	b.WriteString(strings.Join(cells, gap))
	b.WriteString("\n")

	for col, width := range widths {
		cells[col] = strings.Repeat("-", width)
	}
	b.WriteString(strings.Join(cells, gap))
	b.WriteString("\n")

	for _, row := range wrapped {
		depth := 1
		for _, lines := range row {
			if len(lines) > depth {
				depth = len(lines)
			}
		}
		for line := 0; line < depth; line++ {
			for col := range t.headers {
				text := ""
				if col < len(row) && line < len(row[col]) {
					text = row[col][line]
				}
				cells[col] = padRight(text, widths[col])
			}
			b.WriteString(strings.Join(cells, gap))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// wrapText wraps text at word boundaries to fit width. Words longer
// than a whole line are broken mid-word.
func wrapText(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	current := ""
	for _, word := range words {
		for len(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
