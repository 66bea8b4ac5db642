// Package clock provides the small timing helpers the containers' callers
// tend to want alongside them: filesystem-safe timestamps and one-shot
// elapsed-time measurement.
package clock

import (
	"fmt"
	"time"
)

// Layout is the timestamp layout Stamp uses. It contains no characters that
// need escaping in file names.
const Layout = "2006-01-02_15-04"

// Stamp renders t in UTC using Layout, with prefix prepended verbatim.
func Stamp(prefix string, t time.Time) string {
	return prefix + t.UTC().Format(Layout)
}

// Now is Stamp at the current time.
func Now(prefix string) string { return Stamp(prefix, time.Now()) }

// Elapsed runs fn once and reports how long it took.
func Elapsed(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

// FormatDuration renders d as h:mm:ss, dropping fractions of a second.
func FormatDuration(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
