package model

import "time"

// ContentType — фиксированный набор типов контента.
type ContentType string

const (
	ContentYoutube  ContentType = "Youtube"
	ContentDocument ContentType = "Document"
	ContentImage    ContentType = "image"
	ContentAudio    ContentType = "audio"
)

// ContentTypes перечисляет допустимые значения в порядке объявления.
var ContentTypes = []ContentType{ContentYoutube, ContentDocument, ContentImage, ContentAudio}

// Valid сообщает, входит ли значение в перечисление (сравнение чувствительно к регистру).
func (t ContentType) Valid() bool {
	for _, v := range ContentTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Content — сохранённая ссылка пользователя с одним тегом.
type Content struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	UserID int64  `gorm:"not null;index"` // ссылка на users.id

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Tag  *Tag  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	Link  string      `gorm:"not null"`
	Type  ContentType `gorm:"size:16;not null"`
	Title string      `gorm:"size:250;not null"`
	TagID int64       `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
