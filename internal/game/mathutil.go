package game

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampSpan keeps an extent of the given size inside [0, limit] by clamping its
// origin. Returns the centred origin when the extent does not fit at all.
func clampSpan(origin, size, limit float64) float64 {
	if size > limit {
		return (limit - size) * 0.5
	}
	return clampF(origin, 0, limit-size)
}

// clampCentre keeps a centre at least r away from both ends of [0, limit].
func clampCentre(v, r, limit float64) float64 {
	if 2*r > limit {
		return limit * 0.5
	}
	return clampF(v, r, limit-r)
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

// RangeF returns a value in [min, max).
func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}

// Read fills p with pseudo-random bytes so a Rand can back uuid generation.
func (r *Rand) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := r.NextU64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}

// Derive returns an independent generator for a sub-system, salted so streams
// from the same seed do not correlate.
func (r *Rand) Derive(salt uint64) *Rand {
	return NewRand(splitmix64(r.NextU64() ^ salt))
}
