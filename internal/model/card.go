package model

// MaxMessageLength is the longest card message accepted, in characters.
const MaxMessageLength = 500

type Card struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Message    string `gorm:"not null"`
	LikesCount int    `gorm:"not null;default:0"`
	BoardID    uint   `gorm:"not null;index"`
}
