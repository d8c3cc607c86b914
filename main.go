package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"golang.org/x/sys/cpu"

	"cipherbench/bench"
	"cipherbench/ciphers"
	"cipherbench/timing"
)

func main() {
	var (
		iters     int
		sizeStr   string
		cipherStr string
		modeStr   string
		showTime  bool
		verbose   bool
		help      bool
	)

	fs := flag.NewFlagSet("cipherbench", flag.ExitOnError)
	fs.IntVarP(&iters, "iter", "n", bench.DefaultIterations, "Iterations per measurement")
	fs.StringVar(&sizeStr, "size", "", "Comma separated input sizes in bytes")
	fs.StringVar(&cipherStr, "cipher", "", "Comma separated cipher names")
	fs.StringVar(&modeStr, "mode", "", "Comma separated mode names (case insensitive)")
	fs.BoolVarP(&showTime, "time", "t", false, "Display mean time per call instead of throughput")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Log progress while measuring")
	fs.BoolVarP(&help, "help", "h", false, "Show help and exit")

	fs.Parse(os.Args[1:])

	if help {
		usage(fs)
	}
	if iters < 1 {
		Die("iterations must be positive, got %d", iters)
	}

	cfg, err := bench.Resolve(bench.Options{
		Iterations: iters,
		Sizes:      sizeStr,
		Ciphers:    cipherStr,
		Modes:      modeStr,
		ShowTime:   showTime,
	})
	if err != nil {
		Die("%s", err)
	}

	logger := bench.NewLogger(verbose)
	logger.PrintFormatted("aes hardware support: %v", hasAESSupport())

	handles, err := bench.NewCatalog(ciphers.All())
	if err != nil {
		Die("%s", err)
	}

	runner := bench.NewRunner(timing.NewEngine(), logger)
	reports, err := runner.Run(cfg, handles)
	if err != nil {
		Die("%s", err)
	}

	fmt.Print(bench.Render(cfg.Sizes, reports, cfg.Display))
}

func hasAESSupport() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `cipherbench - encryption throughput across {cipher, mode, input size}

Usage: cipherbench [options]

Measures mean encryption time per call for every cipher in the catalog
under every applicable mode of operation, and prints an aligned table
of throughput (or, with -t, time) figures on stdout.

Options:
%s`, fs.FlagUsages())
	os.Exit(1)
}

// Die prints an error message to stderr and exits.
func Die(f string, v ...interface{}) {
	Warn(f, v...)
	os.Exit(1)
}

// Warn prints a warning message to stderr.
func Warn(f string, v ...interface{}) {
	s := fmt.Sprintf("cipherbench: %s", fmt.Sprintf(f, v...))
	if n := len(s); n == 0 || s[n-1] != '\n' {
		s += "\n"
	}
	os.Stderr.WriteString(s)
}
