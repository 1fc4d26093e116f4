package bench

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/cwbudde/algo-alignbench/internal/kernel/registry"
)

// Report is the outcome of one timed strategy run.
type Report struct {
	Family    registry.Family
	Kernel    string
	Alignment int
	Elapsed   time.Duration
	Sum       float32
}

// String formats the report as one output line, e.g.
//
//	SIMD   addition (11b aligned): Time:    3ms, Sum: 1234
func (r Report) String() string {
	return fmt.Sprintf("%-6s addition (%2db aligned): Time: %6s, Sum: %s",
		r.Family, r.Alignment, formatMillis(r.Elapsed), formatSum(r.Sum))
}

// WriteHeader writes the line that opens a benchmark run.
func WriteHeader(w io.Writer, n int) error {
	_, err := fmt.Fprintf(w, "Running with vector size: %d\n", n)
	return err
}

func formatMillis(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}

// formatSum prints the shortest representation that round-trips as float32.
func formatSum(s float32) string {
	return strconv.FormatFloat(float64(s), 'g', -1, 32)
}
