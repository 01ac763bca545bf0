package clock

import "time"

// Clock is the single time source for every schedule-cutoff check. The
// create, reserve and cancel paths must all consume the same clock so the
// "class already started" rule is applied consistently.
type Clock interface {
	Now() time.Time
}

type studioClock struct {
	loc *time.Location
}

// NewStudio returns a clock that reports wall time in the studio's fixed
// timezone.
func NewStudio(loc *time.Location) Clock {
	return &studioClock{loc: loc}
}

func (c *studioClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed is a test clock frozen at a single instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}
