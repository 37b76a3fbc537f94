// Package importer ingests curated CSV exports (projects, research, people,
// topics) into the database. The files come out of spreadsheet exports that
// never quote fields, so parsing is a deliberate naive comma split rather
// than encoding/csv: a quoted comma or embedded newline is not part of the
// contract and must split the same way the upstream tooling splits it.
package importer

import "strings"

// Row maps a header name to the cell value, missing cells default to "".
type Row map[string]string

// ParseCSV splits raw CSV content into a header list and data rows. Quotes
// are stripped from cells, blank lines are skipped.
func ParseCSV(content string) ([]string, []Row) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 {
		return nil, nil
	}

	headers := splitLine(lines[0])

	var rows []Row
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := splitLine(line)
		row := Row{}
		for i, header := range headers {
			if i < len(values) {
				row[header] = values[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return headers, rows
}

func splitLine(line string) []string {
	cells := strings.Split(line, ",")
	for i := range cells {
		cells[i] = strings.ReplaceAll(strings.TrimSpace(cells[i]), `"`, "")
	}
	return cells
}
