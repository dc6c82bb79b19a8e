package service

import "time"

// Clock abstracts wall-clock reads so timing gates (assessment windows,
// entitlement expiry, session timestamps) are deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func NewSystemClock() Clock { return systemClock{} }
