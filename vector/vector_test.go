package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edouard127/ciede2000/lab"
)

func TestParse(t *testing.T) {
	v, err := Parse("95.9508,81.5,96,94.861,45.0969,89.163,13.50389100707")
	require.NoError(t, err)

	assert.Equal(t, lab.Color{L: 95.9508, A: 81.5, B: 96}, v.First)
	assert.Equal(t, lab.Color{L: 94.861, A: 45.0969, B: 89.163}, v.Second)
	assert.Equal(t, 13.50389100707, v.Delta)
	assert.InDelta(t, v.Delta, v.Recompute(lab.DefaultWeights), 1e-10)
}

func TestParseLenient(t *testing.T) {
	tests := []string{
		" 1, 2 ,3,4,5,6,7",
		"1,2,3,4,5,6,7\r\n",
		"1.0e0,2,3,4,5,6,7.00000000000000000",
		"+1,2,3,4,5,6,7",
	}
	for _, line := range tests {
		v, err := Parse(line)
		require.NoError(t, err, line)
		assert.Equal(t, [Fields]float64{1, 2, 3, 4, 5, 6, 7}, v.Values(), line)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		line string
		err  error
	}{
		{"", ErrFieldCount},
		{"1,2,3,4,5,6", ErrFieldCount},
		{"1,2,3,4,5,6,7,8", ErrFieldCount},
		{"1;2;3;4;5;6;7", ErrFieldCount},
		{"1,2,3,4,5,six,7", ErrNumber},
		{"1,2,3,4,5,,7", ErrNumber},
		{"0x,2,3,4,5,6,7", ErrNumber},
	}
	for _, tt := range tests {
		_, err := Parse(tt.line)
		assert.ErrorIs(t, err, tt.err, "%q", tt.line)
	}
}

func TestTextRoundTripIsExact(t *testing.T) {
	v := New(lab.Color{L: 1.0 / 3.0, A: -127.99999999999997, B: 0.1},
		lab.Color{L: 100, A: math.SmallestNonzeroFloat64, B: -0.0}, lab.DefaultWeights)

	parsed, err := Parse(v.String())
	require.NoError(t, err)
	assert.Equal(t, v.Values(), parsed.Values())
	assert.Equal(t, v.Delta, parsed.Recompute(lab.DefaultWeights))
}

func TestString(t *testing.T) {
	v := Vector{
		First:  lab.Color{L: 50, A: 2.5, B: 0},
		Second: lab.Color{L: 73, A: 25, B: -18},
		Delta:  27.1492,
	}
	assert.Equal(t, "50,2.5,0,73,25,-18,27.1492", v.String())
	assert.Equal(t, "x:50,2.5,0,73,25,-18,27.1492", string(v.AppendText([]byte("x:"))))
}
