package bench

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerVerboseGate(t *testing.T) {
	var buf strings.Builder
	quiet := NewLoggerTo(false, &buf)
	quiet.PrintMessage("hidden")
	quiet.PrintFormatted("hidden %d", 1)
	quiet.PrintMemUsage("hidden")
	assert.Empty(t, buf.String())

	quiet.PrintHeader("benchmark")
	assert.Contains(t, buf.String(), "benchmark")
}

func TestLoggerVerboseOutput(t *testing.T) {
	var buf strings.Builder
	log := NewLoggerTo(true, &buf)
	log.PrintMessage("starting")
	log.PrintFormatted("measuring %s", "AES128-ECB")

	out := buf.String()
	assert.Contains(t, out, PREFIX+"starting\n")
	assert.Contains(t, out, PREFIX+"measuring AES128-ECB\n")
}
