package models

import (
	"time"
)

// PointLog is the append-only point ledger. The anti-spam window count
// in services.AwardPoints is a query over (user_id, action, created_at),
// hence the composite index.
type PointLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_user_action_time,priority:1" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Action    string    `gorm:"size:50;not null;index:idx_user_action_time,priority:2" json:"action"`
	Amount    int       `gorm:"not null" json:"amount"` // positive: earned, negative: deducted
	CreatedAt time.Time `gorm:"index:idx_user_action_time,priority:3" json:"created_at"`
}
