package pretty

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// TableWriter is a helper for writing tables
type TableWriter struct {
	*tabwriter.Writer
	indent string
}

// NewTableWriterPad returns a TableWriter with pad spaces between columns,
// and each line prefixed with indent.
func NewTableWriterPad(out io.Writer, pad int, indent string) *TableWriter {
	return &TableWriter{
		tabwriter.NewWriter(out, 0, 0, pad, ' ', 0),
		indent,
	}
}

// Row emits a row where each argument is a column.
func (w *TableWriter) Row(cols ...interface{}) {
	w.emitRow(false, cols...)
}

// URow calls Row and adds an underline row.
func (w *TableWriter) URow(cols ...interface{}) {
	w.emitRow(false, cols...)
	w.emitRow(true, cols...)
}

// Printf invokes Fprintf on the underlying writer, w/ indent and newline.
func (w *TableWriter) Printf(f string, a ...interface{}) {
	fmt.Fprint(w.Writer, w.indent)
	fmt.Fprintf(w.Writer, f, a...)
	if f == "" || f[len(f)-1] != '\n' {
		fmt.Fprintln(w.Writer)
	}
}

func (w *TableWriter) emitRow(underline bool, cols ...interface{}) {
	fmt.Fprint(w, w.indent)
	for i, c := range cols {
		if i != 0 {
			fmt.Fprint(w, "\t")
		}
		cs := fmt.Sprint(c)
		if underline {
			fmt.Fprint(w, strings.Repeat("-", len(cs)))
		} else {
			fmt.Fprint(w, cs)
		}
	}
	fmt.Fprintln(w)
}
