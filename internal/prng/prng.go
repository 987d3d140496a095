package prng

import "math/rand/v2"

// Random owns a single deterministic draw stream. It is not safe for
// concurrent use, matching the single-threaded cooperative model: only
// the Generator or Mutator holding it draws from it, never both at once.
type Random struct {
	src *rand.Rand
}

// New returns a Random seeded deterministically from seed. Two Randoms
// built from the same seed, driven through the same sequence of calls,
// always produce the same results.
func New(seed uint64) *Random {
	return &Random{src: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a pseudo-random int in [0, n). Panics if n <= 0.
func (r *Random) Intn(n int) int {
	return r.src.IntN(n)
}

// IntRange returns a pseudo-random int in [lo, hi].
func (r *Random) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Float64 returns a pseudo-random float64 in [0, 1).
func (r *Random) Float64() float64 {
	return r.src.Float64()
}

// Bool returns a pseudo-random boolean.
func (r *Random) Bool() bool {
	return r.src.IntN(2) == 1
}

// Shuffle permutes n elements in place via swap, using the Fisher-Yates
// algorithm over this Random's stream (a thin wrapper so callers never
// reach for math/rand directly and break determinism).
func (r *Random) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

// Perm returns a pseudo-random permutation of [0, n).
func (r *Random) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	r.Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

// Stride visits every index in [0, n) exactly once, in a pseudo-random
// order, without allocating a permutation array: an alternative to Perm
// for callers that want a randomized visiting order with O(1) extra
// state. No package in this module calls it; the mutator shuffles
// argument order with Perm.
type Stride struct {
	n, start, step, i int
}

// NewStride builds a Stride over [0, n). n must be > 0.
func (r *Random) NewStride(n int) Stride {
	if n <= 1 {
		return Stride{n: n, start: 0, step: 1}
	}
	step := r.IntRange(1, n-1)
	for gcd(step, n) != 1 {
		step++
		if step >= n {
			step = 1
		}
	}
	return Stride{n: n, start: r.Intn(n), step: step}
}

// Next returns the next index and true, or (0, false) once every index
// has been visited.
func (s *Stride) Next() (int, bool) {
	if s.i >= s.n {
		return 0, false
	}
	idx := (s.start + s.i*s.step) % s.n
	s.i++
	return idx, true
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Reservoir implements single-pass, O(1)-memory reservoir sampling of k
// items from a stream of unknown length: call Offer for every candidate
// in order; Offer returns (slot, true) when slot should be overwritten
// with the current candidate, or (-1, false) when the candidate should be
// discarded. The stream-uniform guarantee requires that every Offer call
// fully consumes the Random draw it would have made even when discarding,
// which this type does internally.
type Reservoir struct {
	rnd *Random
	k   int
	n   int
}

// NewReservoir returns a Reservoir that will keep up to k items.
func NewReservoir(rnd *Random, k int) *Reservoir {
	return &Reservoir{rnd: rnd, k: k}
}

// Offer advances the stream counter by one and reports whether (and
// where) the new item should be stored.
func (res *Reservoir) Offer() (slot int, keep bool) {
	res.n++
	if res.n <= res.k {
		return res.n - 1, true
	}
	j := res.rnd.Intn(res.n)
	if j < res.k {
		return j, true
	}
	return -1, false
}

// Seen returns the total number of items offered so far.
func (res *Reservoir) Seen() int { return res.n }
