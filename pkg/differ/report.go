package differ

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

const (
	addedHeader   = "Files added to bundle:"
	removedHeader = "Files removed from bundle:"
)

// WriteReport prints the human readable report. Nothing is written when
// the result has no differences.
func WriteReport(w io.Writer, r Result) error {
	var buf bytes.Buffer

	if len(r.Added) > 0 {
		fmt.Fprintln(&buf, addedHeader)
		for _, name := range r.Added {
			fmt.Fprintf(&buf, "+%s\n", name)
		}
	}

	if len(r.Removed) > 0 {
		fmt.Fprintln(&buf, removedHeader)
		for _, name := range r.Removed {
			fmt.Fprintf(&buf, "-%s\n", name)
		}
	}

	if buf.Len() == 0 {
		return nil
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// JSONReport is the machine readable form of a Result.
type JSONReport struct {
	Added   []string      `json:"added"`
	Removed []string      `json:"removed"`
	Summary ReportSummary `json:"summary"`
}

type ReportSummary struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
}

func NewJSONReport(r Result) JSONReport {
	report := JSONReport{
		Added:   r.Added,
		Removed: r.Removed,
		Summary: ReportSummary{
			Added:   len(r.Added),
			Removed: len(r.Removed),
		},
	}
	if report.Added == nil {
		report.Added = []string{}
	}
	if report.Removed == nil {
		report.Removed = []string{}
	}
	return report
}

// WriteJSON writes the result as indented JSON to path.
func WriteJSON(path string, r Result) error {
	data, err := json.MarshalIndent(NewJSONReport(r), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
