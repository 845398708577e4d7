package utils

import "time"

// Timer is the part of *time.Timer the client needs to cancel a scheduled callback.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. Components take it as a field so tests can drive time.
type AfterFunc func(d time.Duration, f func()) Timer

func RealAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
