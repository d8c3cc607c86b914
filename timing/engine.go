// Package timing measures the mean wall time of an encryption closure.
package timing

import (
	"errors"
	"sync"
	"time"

	"cipherbench/bench"
)

const calibrationIters = 1 << 16

var (
	ErrNilClosure    = errors.New("timing: nil closure")
	ErrBadIterations = errors.New("timing: iterations must be positive")
)

// sink defeats dead-code elimination of the measured calls.
var sink bench.Ciphertext

// Engine times closures with a plain wall-clock loop. The per-call
// measurement overhead is calibrated once per process and subtracted
// from every subsequent measurement.
type Engine struct {
	once     sync.Once
	overhead float64
}

func NewEngine() *Engine {
	return &Engine{}
}

// Measure returns the mean time in seconds of one fn(input) call,
// averaged over iterations calls.
func (e *Engine) Measure(fn bench.EncryptFunc, input bench.Plaintext, iterations int) (float64, error) {
	if fn == nil {
		return 0, ErrNilClosure
	}
	if iterations < 1 {
		return 0, ErrBadIterations
	}
	e.once.Do(e.calibrate)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		sink = fn(input)
	}
	mean := time.Since(start).Seconds()/float64(iterations) - e.overhead
	if mean < 0 {
		mean = 0
	}
	return mean, nil
}

// calibrate times the loop and call machinery itself against a no-op
// closure.
func (e *Engine) calibrate() {
	noop := bench.EncryptFunc(func(bench.Plaintext) bench.Ciphertext { return nil })
	var empty bench.Plaintext
	start := time.Now()
	for i := 0; i < calibrationIters; i++ {
		sink = noop(empty)
	}
	e.overhead = time.Since(start).Seconds() / calibrationIters
}
