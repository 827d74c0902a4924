package model

import "time"

// ShareLink открывает публичный доступ на чтение ко всему контенту владельца.
type ShareLink struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Hash   string `gorm:"uniqueIndex;size:64;not null"`
	UserID int64  `gorm:"not null;index"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
