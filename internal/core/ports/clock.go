package ports

import "time"

// Clock supplies the current time to components that stamp dates.
type Clock interface {
	Now() time.Time
}

// Rand supplies uniformly distributed integers in [0, n).
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)
