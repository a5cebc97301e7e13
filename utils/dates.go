// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" into minutes since midnight.
func ParseTimeOfDay(s string) (int, error) {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			return 0, fmt.Errorf("invalid time of day %q", s)
		}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	return h*60 + m, nil
}

// FormatTimeOfDay renders minutes since midnight as zero-padded HH:MM:SS.
func FormatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}

// AddMinutes shifts an HH:MM[:SS] time of day forward, capped at midnight.
func AddMinutes(start string, minutes int) (string, error) {
	m, err := ParseTimeOfDay(start)
	if err != nil {
		return "", err
	}
	m += minutes
	if m > 24*60 {
		m = 24 * 60
	}
	return FormatTimeOfDay(m), nil
}

// Overlaps reports whether two half-open [start, end) time-of-day intervals
// intersect. Zero-padded HH:MM:SS strings compare lexically in time order.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return !(aEnd <= bStart || bEnd <= aStart)
}

// GenerateSlots lists the slot start times of a working day, stepping by
// blockMinutes from start to end inclusive, as HH:MM:SS strings.
func GenerateSlots(blockMinutes int, start, end string) ([]string, error) {
	if blockMinutes <= 0 {
		return nil, fmt.Errorf("block minutes must be positive, got %d", blockMinutes)
	}
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return nil, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return nil, err
	}
	var slots []string
	for cur := s; cur <= e; cur += blockMinutes {
		slots = append(slots, FormatTimeOfDay(cur))
	}
	return slots, nil
}
