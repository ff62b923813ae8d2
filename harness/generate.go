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

	"github.com/Edouard127/ciede2000/lab"
	"github.com/Edouard127/ciede2000/vector"
)

// Generator produces random test vectors. It is not safe for concurrent use.
type Generator struct {
	*zap.Logger
	rng  *Xorshift
	opts options
}

func NewGenerator(logger *zap.Logger, rng *Xorshift, opts ...Option) *Generator {
	g := &Generator{Logger: logger, rng: rng, opts: defaultOptions()}
	for _, opt := range opts {
		opt(&g.opts)
	}
	return g
}

// Next samples L in [0, 100) and a, b in [-128, 128) for both colors. Each of
// the six numbers is then rounded to an integer with probability one half.
func (g *Generator) Next() vector.Vector {
	values := [6]float64{
		g.rng.Uniform(0, 100), g.rng.Uniform(-128, 128), g.rng.Uniform(-128, 128),
		g.rng.Uniform(0, 100), g.rng.Uniform(-128, 128), g.rng.Uniform(-128, 128),
	}
	for i := range values {
		if g.rng.Bool() {
			values[i] = math.Round(values[i])
		}
	}

	return vector.New(
		lab.Color{L: values[0], A: values[1], B: values[2]},
		lab.Color{L: values[3], A: values[4], B: values[5]},
		g.opts.weights,
	)
}

// Generate writes count records to w, one per line.
func (g *Generator) Generate(w io.Writer, count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 192)
	for i := 1; i <= count; i++ {
		buf = g.Next().AppendText(buf[:0])
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
		g.opts.progress(i)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush records: %w", err)
	}
	return nil
}

// GenerateFile creates or truncates path and writes count records to it.
func (g *Generator) GenerateFile(path string, count int) (err error) {
	if count <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(file))

	g.Info("Generating records", zap.String("path", path), zap.String("count", humanize.Comma(int64(count))))
	if err = g.Generate(file, count); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	g.Info("Records written", zap.String("path", path))
	return nil
}
