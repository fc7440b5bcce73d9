package models

import (
	"time"
)

const DefaultCategory = "general"

type Notice struct {
	ID         uint       `gorm:"primaryKey"`
	Title      string     `gorm:"type:varchar(255);not null"`
	Content    string     `gorm:"type:text;not null"`
	Category   string     `gorm:"type:varchar(50);not null;default:general"`
	ExpiryDate *time.Time `gorm:"type:date;index"`
	UserID     uint       `gorm:"not null;index"`
	User       User       `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt  time.Time  `gorm:"not null;index"`
}

// Active reports whether the notice is still visible on the given day.
func (n Notice) Active(asOf time.Time) bool {
	return n.ExpiryDate == nil || !n.ExpiryDate.Before(asOf)
}

// NoticeWithOwner is a notice joined with the username of the admin who published it.
type NoticeWithOwner struct {
	Notice
	Username string
}
