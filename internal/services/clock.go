package services

import "time"

// clock is the default service clock. Timestamps are cut to milliseconds,
// the precision clients see after a round trip through the store.
func clock() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
