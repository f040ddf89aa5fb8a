package entity

import "time"

// Quote is a short attributed text snippet owned by exactly one user.
// UserID must reference an existing User at creation time.
type Quote struct {
	ID        int64  // Store-assigned identifier.
	UserID    int64  // Owning user. Ownership gates every read and write.
	Quote     string // The quoted text itself.
	Anime     string // The show the quote is from.
	Character string // The character who said it.
	CreatedAt time.Time
	UpdatedAt time.Time
}
