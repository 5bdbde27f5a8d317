package encoding

import "time"

// fixedRand always yields v (reduced mod n).
type fixedRand struct{ v int }

func (r fixedRand) IntN(n int) int { return r.v % n }

// seqRand yields the values in order, wrapping around.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) IntN(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }
