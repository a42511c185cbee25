package repository

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Date      string    `gorm:"size:10;not null" json:"date"` // YYYY-MM-DD
	Label     string    `gorm:"column:event;size:16;not null" json:"event"`
	StartTime string    `gorm:"size:5;not null" json:"start_time"` // HH:MM
	EndTime   *string   `gorm:"size:5" json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}
