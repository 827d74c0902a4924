package model

import "time"

// User — учётная запись владельца сохранённого контента.
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	UserName string `gorm:"uniqueIndex;size:10;not null"`
	Password string `gorm:"not null"` // bcrypt-хеш

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
