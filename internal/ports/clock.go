package ports

import "time"

// Source of the current time; replaced in tests.
type Clock interface {
	Now() time.Time
}
