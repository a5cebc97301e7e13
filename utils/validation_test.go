package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{"+56912345678", "56912345678", "+1 (555) 123-4567"}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), phone)
	}

	invalid := []string{"", "abc", "+", "0123"}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), phone)
	}
}

func TestValidateTimeOfDay(t *testing.T) {
	valid := []string{"09:00", "09:00:00", "23:59", "00:00:59"}
	for _, tod := range valid {
		assert.True(t, ValidateTimeOfDay(tod), tod)
	}

	invalid := []string{"", "24:00", "9:00", "09:60", "09:00:60", "mediodía"}
	for _, tod := range invalid {
		assert.False(t, ValidateTimeOfDay(tod), tod)
	}
}

func TestNormalizeTimeOfDay(t *testing.T) {
	assert.Equal(t, "09:00:00", NormalizeTimeOfDay("09:00"))
	assert.Equal(t, "09:00:30", NormalizeTimeOfDay("09:00:30"))
}
