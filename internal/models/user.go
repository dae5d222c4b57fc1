package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash
	Avatar    string    `gorm:"default:🌱" json:"avatar"`
	Bio       string    `gorm:"size:200" json:"bio"`
	Points    int       `gorm:"default:0" json:"points"`
	Role      string    `gorm:"size:20;default:'user';not null" json:"role"` // user, admin
	Status    int       `gorm:"default:0" json:"status"`                     // 0: active, 1: muted, 2: banned
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// No DeletedAt for hard delete
}
