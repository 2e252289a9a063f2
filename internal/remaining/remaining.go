// Package remaining derives how long an auction item has left to run.
package remaining

import "time"

// Seconds returns the whole seconds from now until end, floored at zero.
// ok is false when end is unset, meaning the item never expires.
func Seconds(end, now time.Time) (secs int64, ok bool) {
	if end.IsZero() {
		return 0, false
	}
	d := end.Sub(now)
	if d <= 0 {
		return 0, true
	}
	return int64(d / time.Second), true
}

// Expired reports whether an item ending at end has no whole seconds left at now
func Expired(end, now time.Time) bool {
	secs, ok := Seconds(end, now)
	return ok && secs == 0
}

// Cutoff returns the instant before which an end time counts as expired at now.
// Expired(end, now) == end.Before(Cutoff(now)) for any non-zero end.
func Cutoff(now time.Time) time.Time {
	return now.Add(time.Second)
}
