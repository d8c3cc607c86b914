package bench

import (
	"fmt"
	"strconv"
	"strings"
)

// DisplayMode selects which cell string the table shows.
type DisplayMode int

const (
	Speed DisplayMode = iota
	Time
)

// DefaultIterations per measurement.
const DefaultIterations = 100

// DefaultSizes benchmarked when --size is not given.
var DefaultSizes = []int{16, 32, 128, 512, 1024, 4096, 16384}

// Config is the resolved run configuration. Immutable for the run.
type Config struct {
	Sizes      []int
	Modes      []Mode
	Iterations int
	Display    DisplayMode

	// Ciphers holds the names given with --cipher.
	// TODO: apply it to filter the catalog; right now every supplied
	// cipher is benchmarked regardless.
	Ciphers []string
}

// Options is the raw command-line input Resolve consumes. List-valued
// options are the unparsed comma-separated argument strings; an empty
// string means "use the default".
type Options struct {
	Iterations int
	Sizes      string
	Ciphers    string
	Modes      string
	ShowTime   bool
}

// DefaultConfig returns the configuration of a flagless run.
func DefaultConfig() Config {
	cfg := Config{
		Sizes:      append([]int(nil), DefaultSizes...),
		Modes:      AllModes(),
		Iterations: DefaultIterations,
		Display:    Speed,
	}
	return cfg
}

// Resolve builds a Config from parsed options. It is a pure function;
// any malformed value is a configuration error and nothing has been
// measured yet.
func Resolve(opts Options) (Config, error) {
	cfg := DefaultConfig()

	if opts.Iterations != 0 {
		if opts.Iterations < 1 {
			return Config{}, fmt.Errorf("iterations must be positive, got %d", opts.Iterations)
		}
		cfg.Iterations = opts.Iterations
	}

	if opts.Sizes != "" {
		sizes, err := parseSizes(opts.Sizes)
		if err != nil {
			return Config{}, err
		}
		cfg.Sizes = sizes
	}

	if opts.Modes != "" {
		modes, err := parseModes(opts.Modes)
		if err != nil {
			return Config{}, err
		}
		cfg.Modes = modes
	}

	if opts.Ciphers != "" {
		cfg.Ciphers = splitList(opts.Ciphers)
	}

	if opts.ShowTime {
		cfg.Display = Time
	}
	return cfg, nil
}

func parseSizes(arg string) ([]int, error) {
	parts := splitList(arg)
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", p, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("invalid size %q: must be positive", p)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes in %q", arg)
	}
	return sizes, nil
}

// parseModes restricts the mode set. The requested names are matched
// case-insensitively and the result keeps catalog order, not input
// order.
func parseModes(arg string) ([]Mode, error) {
	parts := splitList(arg)
	requested := make(map[Mode]bool, len(parts))
	for _, p := range parts {
		m, ok := ParseMode(p)
		if !ok {
			return nil, fmt.Errorf("unknown mode %q", p)
		}
		requested[m] = true
	}
	var modes []Mode
	for _, m := range AllModes() {
		if requested[m] {
			modes = append(modes, m)
		}
	}
	if len(modes) == 0 {
		return nil, fmt.Errorf("no modes in %q", arg)
	}
	return modes, nil
}

func splitList(arg string) []string {
	var out []string
	for _, p := range strings.Split(arg, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
