package utils

import (
	"math/rand"
	"time"
)

// GetUserLevel maps a point balance to a community level.
func GetUserLevel(points int) (name string, icon string) {
	switch {
	case points >= 1000:
		return "Luminary", "🌟"
	case points >= 201:
		return "Guide", "🧭"
	case points >= 51:
		return "Contributor", "🔥"
	case points >= 11:
		return "Explorer", "🧗"
	default:
		return "Newcomer", "🌱"
	}
}

// GetDaysSinceJoined returns whole days since the account was created.
func GetDaysSinceJoined(createdAt time.Time) int {
	return int(time.Since(createdAt).Hours() / 24)
}

// GetRandomEmoji returns a random emoji used as the default avatar.
func GetRandomEmoji() string {
	emojis := []string{"🌱", "🌿", "🍀", "🌊", "⚡", "🦊", "🐙", "🦉", "🐢", "🚀", "🎯", "🧩"}
	return emojis[rand.Intn(len(emojis))]
}
