package model

// Tag создаётся лениво при первом использовании и никогда не удаляется.
type Tag struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Title string `gorm:"uniqueIndex;not null"`
}
