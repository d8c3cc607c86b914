package bench

import (
	"fmt"
	"io"
	"os"
	"runtime"
)

// PREFIX for progress log lines
const PREFIX = "->> "

type logger struct {
	verbose bool
	out     io.Writer
}

// NewLogger returns a Logger writing to stderr so the rendered table
// keeps stdout to itself. Messages are dropped unless verbose is set;
// headers are always printed.
func NewLogger(verbose bool) Logger {
	return &logger{
		verbose: verbose,
		out:     os.Stderr,
	}
}

// NewLoggerTo is NewLogger with a caller-supplied destination.
func NewLoggerTo(verbose bool, out io.Writer) Logger {
	return &logger{
		verbose: verbose,
		out:     out,
	}
}

type Logger interface {
	PrintMessage(message string)
	PrintFormatted(format string, args ...interface{})
	PrintHeader(header string)
	PrintMemUsage(name string)
}

func (l logger) PrintMessage(message string) {
	if l.verbose {
		fmt.Fprint(l.out, PREFIX)
		fmt.Fprintf(l.out, "%s", message)
		fmt.Fprintln(l.out)
	}
}

func (l logger) PrintFormatted(format string, args ...interface{}) {
	if l.verbose {
		fmt.Fprint(l.out, PREFIX)
		fmt.Fprintf(l.out, format, args...)
		fmt.Fprintln(l.out)
	}
}

func (l logger) PrintHeader(header string) {
	fmt.Fprintln(l.out, fmt.Sprintf("=== ----\t %s \t---- ===", header))
}

// PrintMemUsage outputs the current, total and OS memory being used.
// See: https://golang.org/pkg/runtime/#MemStats
func (l logger) PrintMemUsage(name string) {
	if !l.verbose {
		return
	}
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	mb := 1e6
	fmt.Fprintf(l.out, "%s%s\tAlloc %.3f MB\tTotalAlloc %.3f MB\tSys %.3f MB\n",
		PREFIX, name,
		float64(m.Alloc)/mb, float64(m.TotalAlloc)/mb, float64(m.Sys)/mb)
}
