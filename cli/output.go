package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"student-manager/grid"
	"student-manager/service"
)

// writeRows prints rows as an aligned table or a JSON array.
func writeRows(w io.Writer, format string, rows []grid.Row) error {
	if format == "json" {
		if rows == nil {
			rows = []grid.Row{}
		}
		return writeJSON(w, rows)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(grid.Header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r.Cells(), "\t"))
	}
	return tw.Flush()
}

func writeResult(w io.Writer, format string, res service.Result, text string) error {
	if format == "json" {
		return writeJSON(w, res)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
