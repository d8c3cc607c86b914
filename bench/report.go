package bench

import "fmt"

// speedSplit is the throughput (in per-KiB units) at which the
// formatter switches from K/s to M/s.
const speedSplit = 10 * 1024

// Entry is one measured cell: a size, its mean time per call and the
// derived throughput, with both display strings precomputed.
type Entry struct {
	Size           int
	Seconds        float64
	FormattedTime  string
	Speed          float64
	FormattedSpeed string
}

// Report is one table row: every size measured for one (cipher, mode)
// pair, in config order.
type Report struct {
	Label   string
	Entries []Entry
}

// BuildEntry converts a raw (size, mean time) pair into a report entry.
func BuildEntry(size int, seconds float64) Entry {
	speed := Normalize(size, seconds)
	return Entry{
		Size:           size,
		Seconds:        seconds,
		FormattedTime:  FormatTime(seconds),
		Speed:          speed,
		FormattedSpeed: FormatSpeed(speed),
	}
}

// Normalize scales a mean time per call for the given input size to a
// per-KiB throughput, so sizes are comparable against a 1024-byte
// reference. The three branches are kept as written: callers depend on
// their exact floating-point behavior.
func Normalize(size int, seconds float64) float64 {
	switch {
	case size < 1024:
		return 1 / (seconds * (1024 / float64(size)))
	case size == 1024:
		return 1 / seconds
	default:
		return 1 / (seconds / (float64(size) / 1024))
	}
}

// FormatSpeed renders a per-KiB throughput with one decimal.
func FormatSpeed(speed float64) string {
	if speed >= speedSplit {
		return fmt.Sprintf("%.1f M/s", speed/1024)
	}
	return fmt.Sprintf("%.1f K/s", speed)
}

// FormatTime renders a mean time per call at a human scale.
func FormatTime(seconds float64) string {
	switch {
	case seconds >= 1:
		return fmt.Sprintf("%.2f s", seconds)
	case seconds >= 1e-3:
		return fmt.Sprintf("%.2f ms", seconds*1e3)
	case seconds >= 1e-6:
		return fmt.Sprintf("%.2f us", seconds*1e6)
	default:
		return fmt.Sprintf("%.2f ns", seconds*1e9)
	}
}
