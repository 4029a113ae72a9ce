// Package render writes command reports in the configured output format.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	Dump Format = "dump"
)

// Report is a value with a human-readable text form.
type Report interface {
	WriteText(w io.Writer) error
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Write renders r to w. An unknown format is an error.
func Write(w io.Writer, format Format, r Report) error {
	switch format {
	case Text, "":
		return r.WriteText(w)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("render: encode json: %w", err)
		}
		return nil
	case Dump:
		dumper.Fdump(w, r)
		return nil
	default:
		return fmt.Errorf("render: unknown format %q", format)
	}
}

// Table is a tab-aligned text table.
type Table struct {
	tw *tabwriter.Writer
}

func NewTable(w io.Writer) *Table {
	return &Table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

// Row writes one tab-separated row.
func (t *Table) Row(cells ...string) {
	for i, cell := range cells {
		if i > 0 {
			fmt.Fprint(t.tw, "\t")
		}
		fmt.Fprint(t.tw, cell)
	}
	fmt.Fprintln(t.tw)
}

// Flush aligns and writes the buffered rows.
func (t *Table) Flush() error {
	return t.tw.Flush()
}
