package models

import (
	"time"
)

// Post kinds. Forum threads and blog entries share the table; blogs have
// no category and never appear in the forum ranking.
const (
	PostKindThread = "thread"
	PostKindBlog   = "blog"
)

type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Pid        string    `gorm:"uniqueIndex;size:8;not null" json:"pid"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	CategoryID *uint     `gorm:"index" json:"category_id"` // nil for blog entries
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`
	Kind       string    `gorm:"size:10;not null;index;default:'thread'" json:"kind"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `gorm:"type:text" json:"content"` // markdown source
	Score      int       `gorm:"default:0" json:"score"`
	Views      int       `gorm:"default:0" json:"views"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Filled by queries, not a table column
	CommentCount int `gorm:"-" json:"comment_count"`
}
