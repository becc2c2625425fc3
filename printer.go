package sievego

import (
	"bufio"
	"io"
	"strconv"
)

// PrinterOptions configures the column layout of printed primes.
type PrinterOptions struct {
	// LineWidth is the number of primes per output line.
	LineWidth int
	// Separator is written between primes on the same line.
	Separator string
}

// DefaultPrinterOptions is the layout used when no configurators are given.
var DefaultPrinterOptions = PrinterOptions{
	LineWidth: 10,
	Separator: "\t",
}

// Printer writes the primes of a finished table in ascending order,
// wrapping after a fixed number of values per line. The output always
// ends with a newline, even when the last line is partial; a table
// without primes produces no output at all.
type Printer struct {
	opts PrinterOptions
}

// NewPrinter creates a Printer with the given option configurators.
func NewPrinter(optFns ...func(o *PrinterOptions)) *Printer {
	opts := DefaultPrinterOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.LineWidth < 1 {
		opts.LineWidth = 1
	}

	return &Printer{opts: opts}
}

// Print writes the table's primes to w.
//
// The table is consumed read-only. Write errors are returned after the
// buffered writer surfaces them; partial output may already have been
// written at that point.
func (p *Printer) Print(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)

	inLine := 0
	for n := range t.All() {
		if inLine > 0 {
			bw.WriteString(p.opts.Separator) //nolint:errcheck // sticky error, surfaced by Flush
		}
		bw.WriteString(strconv.FormatUint(n, 10)) //nolint:errcheck

		inLine++
		if inLine == p.opts.LineWidth {
			bw.WriteByte('\n') //nolint:errcheck
			inLine = 0
		}
	}
	if inLine > 0 {
		bw.WriteByte('\n') //nolint:errcheck
	}

	return bw.Flush()
}
