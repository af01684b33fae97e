package dashboard

import "time"

type Timer interface {
	Stop() bool
}

// Clock schedules the debounce and message timers.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func (SystemClock) Now() time.Time {
	return time.Now()
}
