// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Regular expression for international phone numbers
	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

var timeOfDayRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)

// ValidateTimeOfDay checks an HH:MM or HH:MM:SS time-of-day string.
func ValidateTimeOfDay(t string) bool {
	return timeOfDayRegex.MatchString(t)
}

// NormalizeTimeOfDay pads a valid HH:MM value to HH:MM:SS so stored times
// compare lexically.
func NormalizeTimeOfDay(t string) string {
	if len(t) == 5 {
		return t + ":00"
	}
	return t
}
