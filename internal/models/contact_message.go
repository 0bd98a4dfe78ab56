package models

import (
	"time"
)

type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"firstName" gorm:"not null"`
	LastName  string    `json:"lastName" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Subject   string    `json:"subject" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	Status    string    `json:"status" gorm:"not null;default:'new'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type MessageStatus string

const (
	MessageNew     MessageStatus = "new"
	MessageRead    MessageStatus = "read"
	MessageReplied MessageStatus = "replied"
)

// ValidMessageStatus reports whether s is one of the known message statuses.
func ValidMessageStatus(s string) bool {
	switch MessageStatus(s) {
	case MessageNew, MessageRead, MessageReplied:
		return true
	}
	return false
}
