package common

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// OutputManager renders tabular command output either as an aligned text
// table or as JSON
type OutputManager struct {
	out      io.Writer
	jsonMode bool
}

func NewOutputManager(out io.Writer, jsonMode bool) *OutputManager {
	return &OutputManager{
		out:      out,
		jsonMode: jsonMode,
	}
}

// OutputTable writes rows under headers. In JSON mode each row becomes an
// object keyed by header; rows shorter than headers omit the missing keys.
func (om *OutputManager) OutputTable(headers []string, rows [][]string) error {
	if om.jsonMode {
		data := make([]map[string]string, len(rows))
		for i, row := range rows {
			entry := make(map[string]string)
			for j, header := range headers {
				if j < len(row) {
					entry[header] = row[j]
				}
			}
			data[i] = entry
		}
		return om.OutputJSON(data)
	}

	return om.outputTableHuman(headers, rows)
}

func (om *OutputManager) OutputJSON(data interface{}) error {
	encoder := json.NewEncoder(om.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func (om *OutputManager) outputTableHuman(headers []string, rows [][]string) error {
	w := tabwriter.NewWriter(om.out, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(w, strings.Join(headers, "\t")); err != nil {
		return fmt.Errorf("failed to write table headers: %w", err)
	}

	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return fmt.Errorf("failed to write table row: %w", err)
		}
	}

	return w.Flush()
}
