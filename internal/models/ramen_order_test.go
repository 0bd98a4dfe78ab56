package models_test

import (
	"testing"
	"time"

	"github.com/DKessler95/limonade-webshop/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDayStart(t *testing.T) {
	// Late evening in a non-UTC zone still maps to the same calendar day.
	amsterdam := time.FixedZone("CEST", 2*60*60)
	late := time.Date(2025, 9, 5, 23, 30, 0, 0, amsterdam)

	day := models.DayStart(late)
	assert.Equal(t, time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC), day)
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2025, 9, 5, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 9, 5, 22, 0, 0, 0, time.UTC)
	nextDay := time.Date(2025, 9, 6, 0, 0, 0, 0, time.UTC)

	assert.True(t, models.SameDay(morning, evening))
	assert.False(t, models.SameDay(evening, nextDay))
}

func TestIsFriday(t *testing.T) {
	assert.True(t, models.IsFriday(time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC)))
	assert.False(t, models.IsFriday(time.Date(2025, 9, 6, 0, 0, 0, 0, time.UTC)))
}

func TestValidRamenStatus(t *testing.T) {
	assert.True(t, models.ValidRamenStatus("pending"))
	assert.True(t, models.ValidRamenStatus("confirmed"))
	assert.True(t, models.ValidRamenStatus("cancelled"))
	assert.False(t, models.ValidRamenStatus("done"))
	assert.False(t, models.ValidRamenStatus(""))
}
