// Package vector holds ΔE2000 test vectors and their comma-separated text form:
//
//	L1,a1,b1,L2,a2,b2,deltaE
//
// one record per line, without a header.
package vector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Edouard127/ciede2000/lab"
)

// Fields is the number of comma-separated numbers in a record.
const Fields = 7

var (
	ErrFieldCount = errors.New("invalid field count")
	ErrNumber     = errors.New("invalid number")
)

// Vector is a pair of colors and the reference ΔE2000 distance between them.
type Vector struct {
	First  lab.Color
	Second lab.Color
	Delta  float64
}

// New computes the reference distance of c1 and c2 with w and returns the vector.
func New(c1, c2 lab.Color, w lab.Weights) Vector {
	return Vector{First: c1, Second: c2, Delta: lab.DeltaWeighted(c1, c2, w)}
}

// Recompute returns the distance of the vector's colors, ignoring the stored Delta.
func (v Vector) Recompute(w lab.Weights) float64 {
	return lab.DeltaWeighted(v.First, v.Second, w)
}

// Values returns the seven record numbers in file order.
func (v Vector) Values() [Fields]float64 {
	return [Fields]float64{
		v.First.L, v.First.A, v.First.B,
		v.Second.L, v.Second.A, v.Second.B,
		v.Delta,
	}
}

// AppendText appends the record, without the newline, to dst.
// Numbers use the shortest form that parses back to the same float64.
func (v Vector) AppendText(dst []byte) []byte {
	for i, f := range v.Values() {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = strconv.AppendFloat(dst, f, 'g', -1, 64)
	}
	return dst
}

func (v Vector) String() string {
	return string(v.AppendText(nil))
}

// Parse reads one record. Surrounding whitespace of each field is ignored.
func Parse(line string) (Vector, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), ",")
	if len(fields) != Fields {
		return Vector{}, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), Fields)
	}

	var values [Fields]float64
	for i, field := range fields {
		f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return Vector{}, fmt.Errorf("%w: field %d %q", ErrNumber, i+1, field)
		}
		values[i] = f
	}

	return Vector{
		First:  lab.Color{L: values[0], A: values[1], B: values[2]},
		Second: lab.Color{L: values[3], A: values[4], B: values[5]},
		Delta:  values[6],
	}, nil
}
