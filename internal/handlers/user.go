package handlers

import (
	"net/http"
	"time"

	"mentorlink/internal/db"
	"mentorlink/internal/models"
	"mentorlink/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile returns a public user page: level, tenure and one tab of
// activity (posts, comments or bookmarks).
func (h *UserHandler) Profile(c *gin.Context) {
	var user models.User
	if err := db.DB.First(&user, c.Param("id")).Error; err != nil {
		JSONError(c, http.StatusNotFound, "user not found")
		return
	}

	levelName, levelIcon := utils.GetUserLevel(user.Points)
	daysSince := utils.GetDaysSinceJoined(user.CreatedAt)

	tab := c.DefaultQuery("tab", "posts")

	payload := gin.H{
		"user":       user,
		"level_name": levelName,
		"level_icon": levelIcon,
		"days_since": daysSince,
		"active_tab": tab,
	}

	// A mentor profile is public when present
	var profile models.MentorProfile
	if err := db.DB.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
		payload["mentor"] = newMentorView(profile)
	}

	switch tab {
	case "comments":
		var comments []models.Comment
		db.DB.Preload("Post").
			Where("user_id = ?", user.ID).
			Order("created_at DESC").
			Limit(50).
			Find(&comments)
		payload["comments"] = comments
	case "bookmarks":
		var bookmarks []models.Bookmark
		db.DB.Preload("Post").Preload("Post.User").
			Where("user_id = ?", user.ID).
			Order("created_at DESC").
			Limit(50).
			Find(&bookmarks)
		posts := make([]models.Post, 0, len(bookmarks))
		for _, b := range bookmarks {
			posts = append(posts, b.Post)
		}
		fillCommentCounts(posts)
		payload["bookmarked_posts"] = posts
	default:
		var posts []models.Post
		db.DB.Preload("Category").Preload("User").
			Where("user_id = ?", user.ID).
			Order("created_at DESC").
			Limit(50).
			Find(&posts)
		fillCommentCounts(posts)
		payload["posts"] = posts
	}

	c.JSON(http.StatusOK, payload)
}

// Dashboard returns the caller's own overview stats.
func (h *UserHandler) Dashboard(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}

	var postCount, commentCount, entryCount int64
	db.DB.Model(&models.Post{}).Where("user_id = ?", user.ID).Count(&postCount)
	db.DB.Model(&models.Comment{}).Where("user_id = ?", user.ID).Count(&commentCount)
	db.DB.Model(&models.ChallengeEntry{}).Where("user_id = ?", user.ID).Count(&entryCount)

	levelName, levelIcon := utils.GetUserLevel(user.Points)

	c.JSON(http.StatusOK, gin.H{
		"user":          user,
		"level_name":    levelName,
		"level_icon":    levelIcon,
		"days_since":    utils.GetDaysSinceJoined(user.CreatedAt),
		"post_count":    postCount,
		"comment_count": commentCount,
		"entry_count":   entryCount,
	})
}

// PointLogs lists the caller's ledger entries, newest first.
func (h *UserHandler) PointLogs(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}

	page, perPage := Pagination(c, 30, 100)

	var total int64
	db.DB.Model(&models.PointLog{}).Where("user_id = ?", user.ID).Count(&total)

	var logs []models.PointLog
	db.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&logs)

	c.JSON(http.StatusOK, gin.H{
		"logs":     logs,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	})
}

type settingsRequest struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
}

// UpdateSettings edits the caller's display fields.
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}

	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	user.Bio = req.Bio

	if err := db.DB.Save(user).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to update settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Leaderboard returns the top point earners, cached briefly.
func (h *UserHandler) Leaderboard(c *gin.Context) {
	const cacheKey = "users:leaderboard"
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if payload, ok := cached.(gin.H); ok {
			c.JSON(http.StatusOK, payload)
			return
		}
	}

	var users []models.User
	db.DB.Where("points > 0").Order("points DESC").Limit(20).Find(&users)

	type entry struct {
		models.User
		LevelName string `json:"level_name"`
		LevelIcon string `json:"level_icon"`
	}
	entries := make([]entry, len(users))
	for i, u := range users {
		name, icon := utils.GetUserLevel(u.Points)
		entries[i] = entry{User: u, LevelName: name, LevelIcon: icon}
	}

	payload := gin.H{"leaderboard": entries}
	utils.GetCache().Set(cacheKey, payload, 5*time.Minute)
	c.JSON(http.StatusOK, payload)
}
