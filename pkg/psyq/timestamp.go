package psyq

import (
	"fmt"
	"time"
)

// Timestamp is the packed 32-bit creation time stored in module metadata.
// It resembles the DOS directory-entry format but with its halves swapped:
//
//	low 16 bits (date):   bits 15-9 year-1980, 8-5 month, 4-0 day
//	high 16 bits (time):  bits 15-11 hour, 10-5 minute, 4-0 second/2
//
// Only even seconds are representable. The format carries no timezone; the
// original toolchain treated these as local wall-clock values.
type Timestamp uint32

// NewTimestamp packs a calendar time. Seconds round down to the nearest
// even value, a deliberate loss matching the on-disk resolution. Years
// outside 1980-2107 are not representable and wrap silently, as they did in
// the original tools.
func NewTimestamp(t time.Time) Timestamp {
	year := uint32(t.Year()-1980) & 0x7F
	month := uint32(t.Month()) & 0xF
	day := uint32(t.Day()) & 0x1F
	date := year<<9 | month<<5 | day

	hour := uint32(t.Hour()) & 0x1F
	minute := uint32(t.Minute()) & 0x3F
	second := (uint32(t.Second()) / 2) & 0x1F
	clock := hour<<11 | minute<<5 | second

	return Timestamp(clock<<16 | date)
}

// Time unpacks the timestamp. ok is false when the packed fields do not
// form a valid calendar date/time (month 13, day 32, hour 24, ...), an
// expected possibility for arbitrary 32-bit values.
//
// The result is produced in UTC by convention: the true zone is
// unrecoverable, so any conversion to an absolute instant is an assumption.
func (t Timestamp) Time() (time.Time, bool) {
	date := uint32(t) & 0xFFFF
	year := int(date>>9&0x7F) + 1980
	month := time.Month(date >> 5 & 0xF)
	day := int(date & 0x1F)

	clock := uint32(t) >> 16
	hour := int(clock >> 11 & 0x1F)
	minute := int(clock >> 5 & 0x3F)
	second := int(clock&0x1F) * 2

	if month < time.January || month > time.December {
		return time.Time{}, false
	}
	if day < 1 || day > daysIn(year, month) {
		return time.Time{}, false
	}
	if hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, false
	}
	return time.Date(year, month, day, hour, minute, second, 0, time.UTC), true
}

// String renders the timestamp the way the original library tool listed it:
// DD-MM-YY HH:MM:SS.
func (t Timestamp) String() string {
	tm, ok := t.Time()
	if !ok {
		return fmt.Sprintf("invalid timestamp %#010x", uint32(t))
	}
	return tm.Format("02-01-06 15:04:05")
}

func daysIn(year int, month time.Month) int {
	// day 0 of the following month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
