// Package db provides read-only SQLite access to the Voice Memos database.
package db

import "time"

// coreDataOffset is the distance in seconds between the Unix epoch and the
// Core Data reference date used by ZDATE, including the fractional skew the
// Voice Memos store carries.
const coreDataOffset = 978307200.825232

// Recording is one row of ZCLOUDRECORDING.
type Recording struct {
	Timestamp  float64 // seconds since 2001-01-01 UTC
	Duration   float64 // seconds
	Label      string
	StoredPath string // empty when the audio only exists in iCloud
}

// Time returns the recording's calendar time.
func (r Recording) Time() time.Time {
	return timeFromUnix(r.Timestamp + coreDataOffset)
}

// HasAudio reports whether the store references a local audio file.
func (r Recording) HasAudio() bool {
	return r.StoredPath != ""
}

func timeFromUnix(ts float64) time.Time {
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}
