package utils

import (
	"time"
)

// All submission timestamps are attributed to the event timezone so the
// audit trail sorts consistently no matter where the service runs.
const eventTimezone = "America/New_York"

var eventLocation = mustLoadLocation(eventTimezone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic("failed to load event timezone " + name + ": " + err.Error())
	}
	return loc
}

// EventTimestamp formats t in the event timezone as RFC 3339 with offset.
func EventTimestamp(t time.Time) string {
	return t.In(eventLocation).Format(time.RFC3339)
}

// NowEventTimestamp returns the current wall clock as an event timestamp.
func NowEventTimestamp() string {
	return EventTimestamp(time.Now())
}
