package models

import (
	"time"
)

// Challenge statuses.
const (
	ChallengeUpcoming = "upcoming"
	ChallengeActive   = "active"
	ChallengeClosed   = "closed"
)

type Challenge struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Slug      string    `gorm:"uniqueIndex;size:60;not null" json:"slug"`
	Title     string    `gorm:"not null" json:"title"`
	Brief     string    `gorm:"type:text" json:"brief"` // markdown source
	Status    string    `gorm:"size:10;not null;index;default:'upcoming'" json:"status"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Filled by queries, not a table column
	EntryCount int `gorm:"-" json:"entry_count"`
}
