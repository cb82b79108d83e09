// Package dates renders instants as day/month/year calendar dates.
package dates

import "time"

// Layout is day/month/year with no zero padding, e.g. "5/1/2022".
const Layout = "2/1/2006"

// FormatDate renders millis (milliseconds since the Unix epoch) in the local
// time zone.
func FormatDate(millis int64) string {
	return FormatDateIn(millis, time.Local)
}

func FormatDateIn(millis int64, loc *time.Location) string {
	return FormatTime(time.UnixMilli(millis).In(loc))
}

func FormatTime(t time.Time) string {
	return t.Format(Layout)
}
