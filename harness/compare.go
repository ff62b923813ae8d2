package harness

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Edouard127/ciede2000/vector"
)

// Report summarizes a comparison.
type Report struct {
	Lines      int // lines read, blank and malformed ones included
	Checked    int // records whose distance was recomputed
	Malformed  int
	Mismatches []Mismatch
	Aborted    bool // stopped after reaching the mismatch cap
}

func (r *Report) OK() bool {
	return r.Malformed == 0 && len(r.Mismatches) == 0
}

// Err combines the mismatches into one error, or returns nil when there are none.
func (r *Report) Err() error {
	var err error
	for _, m := range r.Mismatches {
		err = multierr.Append(err, m)
	}
	if r.Aborted {
		err = multierr.Append(err, ErrTooManyMismatches)
	}
	return err
}

// Comparator checks test vectors produced elsewhere against lab.DeltaWeighted.
type Comparator struct {
	*zap.Logger
	opts options
}

func NewComparator(logger *zap.Logger, opts ...Option) *Comparator {
	c := &Comparator{Logger: logger, opts: defaultOptions()}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c
}

// Compare reads records from r and recomputes each distance. Malformed lines
// and mismatches are logged and counted; only read errors are returned.
func (c *Comparator) Compare(r io.Reader) (*Report, error) {
	report := &Report{}
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		report.Lines++
		line := report.Lines

		v, err := vector.Parse(scanner.Text())
		if err != nil {
			report.Malformed++
			c.Warn("Skipping record", zap.Int("line", line), zap.Error(&RecordError{Line: line, Err: err}))
			continue
		}

		report.Checked++
		computed := v.Recompute(c.opts.weights)
		diff := math.Abs(computed - v.Delta)
		// A NaN stored value fails the comparison as well.
		if math.IsNaN(computed) || math.IsInf(computed, 0) || !(diff <= c.opts.tolerance) {
			report.Mismatches = append(report.Mismatches, Mismatch{Line: line, Expected: v.Delta, Computed: computed})
			c.Error("Distance mismatch",
				zap.Int("line", line),
				zap.Float64("expected", v.Delta),
				zap.Float64("computed", computed),
			)
			if len(report.Mismatches) >= c.opts.maxMismatches {
				report.Aborted = true
				c.Error("Too many mismatches, stopping", zap.Int("line", line))
				return report, nil
			}
		}
		c.opts.progress(line)
	}

	if err := scanner.Err(); err != nil {
		return report, fmt.Errorf("read line %d: %w", report.Lines+1, err)
	}
	return report, nil
}

// CompareFile opens path and compares its records.
func (c *Comparator) CompareFile(path string) (*Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	c.Info("Comparing records", zap.String("path", path))
	report, err := c.Compare(file)
	if err != nil {
		return report, fmt.Errorf("%s: %w", path, err)
	}

	c.Info("Comparison finished",
		zap.String("path", path),
		zap.String("checked", humanize.Comma(int64(report.Checked))),
		zap.Int("malformed", report.Malformed),
		zap.Int("mismatches", len(report.Mismatches)),
		zap.Bool("aborted", report.Aborted),
	)
	return report, nil
}
