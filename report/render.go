package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Render writes one result as an aligned text table.
func Render(w io.Writer, res Result) error {
	if _, err := fmt.Fprintf(w, "== %s ==\n", res.Title); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(res.Columns, "\t"))
	for _, row := range res.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "(%d rows)\n\n", len(res.Rows))
	return err
}

// RenderAll writes a sequence of results separated by blank lines.
func RenderAll(w io.Writer, results []Result) error {
	for _, res := range results {
		if err := Render(w, res); err != nil {
			return err
		}
	}
	return nil
}
