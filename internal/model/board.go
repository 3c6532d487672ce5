package model

type Board struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	Title string `gorm:"not null"`
	Owner string `gorm:"not null"`

	Cards []Card `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
}
