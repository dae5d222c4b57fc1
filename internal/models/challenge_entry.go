package models

import (
	"time"
)

// ChallengeEntry records a user joining a challenge and, later, their
// submission. Receipt is handed back to the client on join so the SPA
// can reference the entry without exposing row ids.
type ChallengeEntry struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Receipt       string     `gorm:"uniqueIndex;size:36;not null" json:"receipt"` // uuid
	ChallengeID   uint       `gorm:"not null;index;uniqueIndex:idx_challenge_user,priority:1" json:"challenge_id"`
	Challenge     Challenge  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"challenge"`
	UserID        uint       `gorm:"not null;index;uniqueIndex:idx_challenge_user,priority:2" json:"user_id"`
	User          User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	SubmissionURL string     `gorm:"size:500" json:"submission_url"`
	Notes         string     `gorm:"type:text" json:"notes"`
	SubmittedAt   *time.Time `json:"submitted_at"` // nil until a submission lands
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
