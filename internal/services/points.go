package services

import (
	"errors"
	"time"

	"mentorlink/internal/db"
	"mentorlink/internal/models"

	"gorm.io/gorm"
)

// Point action types. These are the ledger's action column values and
// the keys of the tier tables below.
const (
	ActionThreadCreate    = "thread_create"
	ActionForumReply      = "forum_reply"
	ActionChallengeJoin   = "challenge_join"
	ActionChallengeSubmit = "challenge_submit"
	ActionUpvoteReceived  = "upvote_received"
)

// pointsWindow is the trailing window the diminishing-returns tiers are
// counted over.
const pointsWindow = time.Hour

var (
	ErrUnknownAction = errors.New("unknown point action type")
	ErrNegativeCount = errors.New("prior action count must be non-negative")
)

// PointTier: the first Count same-type actions inside the window earn
// Points each. Tiers apply in order; actions past the last tier earn 0.
type PointTier struct {
	Count  int
	Points int
}

// Tier tables from the community rules dialog. Repeating an action
// inside one hour pays less and less, then nothing.
var pointSchedules = map[string][]PointTier{
	ActionThreadCreate:    {{3, 10}, {2, 5}},
	ActionForumReply:      {{5, 5}},
	ActionChallengeJoin:   {{5, 5}},
	ActionChallengeSubmit: {{2, 25}, {3, 10}},
	ActionUpvoteReceived:  {{10, 2}},
}

// PointsForAction returns the point value of the (priorCount+1)th
// same-type action by one user within the window. Pure lookup: the
// caller supplies the prior count (see countRecentPointLogs).
func PointsForAction(action string, priorCount int) (int, error) {
	if priorCount < 0 {
		return 0, ErrNegativeCount
	}
	tiers, ok := pointSchedules[action]
	if !ok {
		return 0, ErrUnknownAction
	}

	remaining := priorCount
	for _, tier := range tiers {
		if remaining < tier.Count {
			return tier.Points, nil
		}
		remaining -= tier.Count
	}
	return 0, nil
}

// countRecentPointLogs counts ledger entries for one user/action inside
// the trailing window.
func countRecentPointLogs(userID uint, action string) int64 {
	cutoff := time.Now().Add(-pointsWindow)
	var count int64
	db.DB.Model(&models.PointLog{}).
		Where("user_id = ? AND action = ? AND created_at >= ?", userID, action, cutoff).
		Count(&count)
	return count
}

// AddPoints appends a ledger entry and bumps the user balance in one
// transaction. Amount may be negative.
func AddPoints(userID uint, amount int, action string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		entry := models.PointLog{
			UserID: userID,
			Amount: amount,
			Action: action,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("points", gorm.Expr("points + ?", amount)).
			Error; err != nil {
			return err
		}

		return nil
	})
}

// AwardPoints applies the diminishing-returns schedule for one
// qualifying action: count prior same-type awards in the window, look
// up the tier value, record it. A zero-value action writes nothing so
// it keeps not counting against the window. Returns the points awarded.
func AwardPoints(userID uint, action string) (int, error) {
	prior := countRecentPointLogs(userID, action)
	points, err := PointsForAction(action, int(prior))
	if err != nil {
		return 0, err
	}
	if points == 0 {
		return 0, nil
	}
	if err := AddPoints(userID, points, action); err != nil {
		return 0, err
	}
	return points, nil
}
