package models

import (
	"time"
)

// MentorProfile marks a user as a mentor. The four *Flags columns are
// packed bit-flag integers decoded through internal/flags; storing them
// as plain ints keeps old rows valid when a family grows a new member.
type MentorProfile struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	UserID                uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User                  User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Headline              string    `gorm:"size:120" json:"headline"`
	Availability          string    `gorm:"size:120" json:"availability"` // free text, e.g. "2 evenings / week"
	HourlyRate            int       `gorm:"default:0" json:"hourly_rate"` // 0 when only free arrangements offered
	MentoringLevels       uint32    `gorm:"default:0" json:"mentoring_levels"`
	PaymentTypes          uint32    `gorm:"default:0" json:"payment_types"`
	ExpertiseDomains      uint32    `gorm:"default:0" json:"expertise_domains"`
	ExpertiseTopicsPreset uint32    `gorm:"default:0" json:"expertise_topics_preset"`
	ExpertiseTopicsCustom string    `gorm:"size:300" json:"expertise_topics_custom"` // comma separated free text
	Accepting             bool      `gorm:"default:true" json:"accepting"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
