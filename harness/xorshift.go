package harness

// seedMask is mixed into every seed so that small seeds, zero included, give a usable state.
const seedMask uint64 = 0x2236b69a7d223bd

// Xorshift is the 64-bit xorshift (13, 7, 17) generator shared by the peer
// harnesses, so a seed reproduces the same sequence on any platform.
// It implements math/rand/v2.Source.
type Xorshift struct {
	state uint64
}

func NewXorshift(seed uint64) *Xorshift {
	state := seed ^ seedMask
	if state == 0 {
		state = seedMask
	}
	return &Xorshift{state: state}
}

func (x *Xorshift) Uint64() uint64 {
	x.state ^= x.state << 13
	x.state ^= x.state >> 7
	x.state ^= x.state << 17
	return x.state
}

// Float64 returns a number in [0, 1).
func (x *Xorshift) Float64() float64 {
	// The top 53 bits keep the result strictly below 1.
	return float64(x.Uint64()>>11) / (1 << 53)
}

// Uniform returns a number in [min, max).
func (x *Xorshift) Uniform(min, max float64) float64 {
	return min + (max-min)*x.Float64()
}

func (x *Xorshift) Bool() bool {
	return x.Uint64()&1 == 1
}
