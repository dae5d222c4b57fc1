package handlers

import (
	"net/http"
	"strconv"

	"mentorlink/internal/db"
	"mentorlink/internal/models"
	"mentorlink/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VoteHandler struct{}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{}
}

// Vote handles upvotes on posts and comments.
func (h *VoteHandler) Vote(c *gin.Context) {
	h.vote(c, 1)
}

// Downvote handles downvotes.
func (h *VoteHandler) Downvote(c *gin.Context) {
	h.vote(c, -1)
}

func (h *VoteHandler) vote(c *gin.Context, value int) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}

	itemType := c.Param("type") // "post" or "comment"
	id, _ := strconv.Atoi(c.Param("id"))
	uID := uint(id)

	if itemType != "post" && itemType != "comment" {
		JSONError(c, http.StatusBadRequest, "unknown item type")
		return
	}

	tx := db.DB.Begin()

	query := tx.Where("user_id = ?", user.ID)
	if itemType == "post" {
		query = query.Where("post_id = ?", uID)
	} else {
		query = query.Where("comment_id = ?", uID)
	}

	// One vote per item per user; a repeat is a no-op
	var existingVote models.Vote
	if err := query.First(&existingVote).Error; err == nil {
		tx.Rollback()
		c.JSON(http.StatusOK, gin.H{"votes": h.countVotes(itemType, uID, value), "already_voted": true})
		return
	}

	newVote := models.Vote{
		UserID: user.ID,
		Value:  value,
	}
	if itemType == "post" {
		newVote.PostID = &uID
	} else {
		newVote.CommentID = &uID
	}

	if err := tx.Create(&newVote).Error; err != nil {
		tx.Rollback()
		JSONError(c, http.StatusInternalServerError, "failed to record vote")
		return
	}

	// Keep the raw score in step for ordering
	var model interface{} = &models.Post{}
	if itemType == "comment" {
		model = &models.Comment{}
	}
	if err := tx.Model(model).Where("id = ?", uID).
		UpdateColumn("score", gorm.Expr("score + ?", value)).Error; err != nil {
		tx.Rollback()
		JSONError(c, http.StatusInternalServerError, "failed to update score")
		return
	}

	tx.Commit()

	if itemType == "post" {
		services.GetRankingService().ScheduleUpdate(uID)
	}

	// Upvotes pay the author on the upvote_received schedule; self-votes
	// never pay.
	if value == 1 {
		voterID := user.ID
		go func() {
			var authorID uint
			if itemType == "post" {
				var post models.Post
				if err := db.DB.First(&post, uID).Error; err == nil {
					authorID = post.UserID
				}
			} else {
				var comment models.Comment
				if err := db.DB.First(&comment, uID).Error; err == nil {
					authorID = comment.UserID
				}
			}
			if authorID != 0 && authorID != voterID {
				_, _ = services.AwardPoints(authorID, services.ActionUpvoteReceived)
			}
		}()
	}

	c.JSON(http.StatusOK, gin.H{"votes": h.countVotes(itemType, uID, value)})
}

func (h *VoteHandler) countVotes(itemType string, id uint, value int) int64 {
	var count int64
	q := db.DB.Model(&models.Vote{}).Where("value = ?", value)
	if itemType == "post" {
		q = q.Where("post_id = ?", id)
	} else {
		q = q.Where("comment_id = ?", id)
	}
	q.Count(&count)
	return count
}
