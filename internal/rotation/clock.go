package rotation

import "time"

// Timer is a cancellable pending callback. Stop reports whether the call was
// prevented; stopping an already-fired or already-stopped timer is a no-op.
type Timer interface {
	Stop() bool
}

// Clock abstracts wall time and delayed callbacks so tests can drive the
// controller deterministically
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

// NewClock returns the wall clock backed by time.AfterFunc
func NewClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
