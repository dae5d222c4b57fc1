package models

import (
	"time"
)

type Bookmark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_post,priority:1" json:"user_id"`
	PostID    uint      `gorm:"not null;index;uniqueIndex:idx_user_post,priority:2" json:"post_id"`
	Post      Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	CreatedAt time.Time `json:"created_at"`
}
