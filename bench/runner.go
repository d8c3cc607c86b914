package bench

import "fmt"

// Measurer is the measurement engine the runner drives. It returns the
// mean wall time in seconds of one call to fn on input, averaged over
// the given number of iterations.
type Measurer interface {
	Measure(fn EncryptFunc, input Plaintext, iterations int) (float64, error)
}

// Runner walks the whole benchmark matrix sequentially: every size of
// one (cipher, mode) before the next mode, every mode before the next
// cipher. That ordering fixes the table row order. Nothing runs
// concurrently; overlapping work would skew the timings.
type Runner struct {
	engine Measurer
	log    Logger
}

func NewRunner(engine Measurer, log Logger) *Runner {
	return &Runner{engine: engine, log: log}
}

// Run measures every applicable (cipher, mode, size) triple and
// returns one report per (cipher, mode) pair. A mode that could not be
// constructed contributes no row. A measurement error aborts the run:
// a partial table is worse than none.
func (r *Runner) Run(cfg Config, handles []*Handle) ([]Report, error) {
	var reports []Report
	for _, h := range handles {
		for _, mf := range Applicable(h, cfg.Modes) {
			label := h.Name() + "-" + mf.Mode.String()
			r.log.PrintFormatted("benchmarking %s", label)
			entries := make([]Entry, 0, len(cfg.Sizes))
			for _, size := range cfg.Sizes {
				input := Plaintext(Zeros(size))
				seconds, err := r.engine.Measure(mf.Fn, input, cfg.Iterations)
				if err != nil {
					return nil, fmt.Errorf("measure %s size %d: %w", label, size, err)
				}
				entries = append(entries, BuildEntry(size, seconds))
			}
			reports = append(reports, Report{Label: label, Entries: entries})
		}
		r.log.PrintMemUsage(h.Name())
	}
	return reports, nil
}
