package scheduler

import "time"

// Clock supplies the current instant. Handlers pass SystemClock; tests pin
// a fixed time instead of mocking the global clock.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
