package model

import "time"

// QuoteModel mirrors the 'quotes' table. UserID references users.id with
// ON DELETE CASCADE: removing a user removes their quotes.
type QuoteModel struct {
	ID        int64  `gorm:"primaryKey"`
	UserID    int64  `gorm:"index;not null"`
	Quote     string `gorm:"type:text;not null"`
	Anime     string `gorm:"type:varchar(255);not null"`
	Character string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuoteModel) TableName() string {
	return "quotes"
}
