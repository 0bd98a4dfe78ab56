package models

import (
	"time"
)

// RamenOrder is a single person's reservation for a ramen evening on a
// specific Friday. PreferredDate is a calendar date, stored as midnight
// UTC; compare days with SameDay, never with raw time equality.
type RamenOrder struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CustomerName  string    `json:"customerName" gorm:"not null"`
	CustomerEmail string    `json:"customerEmail" gorm:"not null"`
	CustomerPhone string    `json:"customerPhone"`
	PreferredDate time.Time `json:"preferredDate" gorm:"not null"`
	Servings      int       `json:"servings" gorm:"not null;default:1"` // per-person booking
	Status        string    `json:"status" gorm:"not null;default:'pending'"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type RamenStatus string

const (
	RamenPending   RamenStatus = "pending"
	RamenConfirmed RamenStatus = "confirmed"
	RamenCancelled RamenStatus = "cancelled"
)

// ValidRamenStatus reports whether s is one of the known reservation statuses.
func ValidRamenStatus(s string) bool {
	switch RamenStatus(s) {
	case RamenPending, RamenConfirmed, RamenCancelled:
		return true
	}
	return false
}

// DayStart truncates t to midnight UTC. Preferred dates are
// timezone-naive calendar days, not instants.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayStart(a).Equal(DayStart(b))
}

// IsFriday reports whether t falls on a Friday. Ramen evenings only
// run on Fridays.
func IsFriday(t time.Time) bool {
	return t.Weekday() == time.Friday
}
