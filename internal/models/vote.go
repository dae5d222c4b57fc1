package models

import (
	"time"
)

type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	PostID    *uint     `gorm:"index" json:"post_id"`
	CommentID *uint     `gorm:"index" json:"comment_id"`
	Value     int       `gorm:"not null" json:"value"` // 1 or -1
	CreatedAt time.Time `json:"created_at"`
}

// One vote per user per item is enforced in the handler (check then
// insert inside a transaction); Postgres partial unique indexes would
// also work but GORM tags cannot express them with nullable columns.
