package config

import (
	"os"
	"strconv"

	"cian-agenda-backend/utils"
)

// Scheduling defaults; overridable via environment.
const (
	DefaultBlockMinutes = 30
	DefaultWorkdayStart = "09:00"
	DefaultWorkdayEnd   = "18:30"
)

// BlockMinutes returns the configured appointment block length.
func BlockMinutes() int {
	if env := os.Getenv("BLOCK_MINUTES"); env != "" {
		if v, err := strconv.Atoi(env); err == nil && v > 0 {
			return v
		}
	}
	return DefaultBlockMinutes
}

// WorkdayWindow returns the configured working-hours window as
// HH:MM strings.
func WorkdayWindow() (start, end string) {
	start = os.Getenv("WORKDAY_START")
	if !utils.ValidateTimeOfDay(start) {
		start = DefaultWorkdayStart
	}
	end = os.Getenv("WORKDAY_END")
	if !utils.ValidateTimeOfDay(end) {
		end = DefaultWorkdayEnd
	}
	return start, end
}

// SlotsPerDay derives how many blocks fit in the working-hours window,
// counting the closing slot like the agenda grid does.
func SlotsPerDay(blockMinutes int) int {
	start, end := WorkdayWindow()
	s, _ := utils.ParseTimeOfDay(start)
	e, _ := utils.ParseTimeOfDay(end)
	window := e - s + blockMinutes
	if window < blockMinutes {
		return 1
	}
	n := window / blockMinutes
	if n < 1 {
		return 1
	}
	return n
}
