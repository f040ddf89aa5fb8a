// Package model defines the GORM persistence models mirroring the schema.
package model

import "time"

// UserModel mirrors the 'users' table. IDs come from the table's identity
// column; usernames carry a unique constraint.
type UserModel struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Quotes []QuoteModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
