package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string    `gorm:"type:varchar(255); not null"`
	Role      Role      `gorm:"type:varchar(20); not null"`
	CreatedAt time.Time `gorm:"not null"`
}
