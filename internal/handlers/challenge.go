package handlers

import (
	"net/http"
	"strings"
	"time"

	"mentorlink/internal/db"
	"mentorlink/internal/models"
	"mentorlink/internal/services"
	"mentorlink/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChallengeHandler struct{}

func NewChallengeHandler() *ChallengeHandler {
	return &ChallengeHandler{}
}

// fillEntryCounts batch-fills EntryCount for a page of challenges.
func fillEntryCounts(challenges []models.Challenge) {
	if len(challenges) == 0 {
		return
	}

	ids := make([]uint, len(challenges))
	for i, ch := range challenges {
		ids[i] = ch.ID
	}

	type CountResult struct {
		ChallengeID uint
		Count       int
	}
	var results []CountResult
	db.DB.Model(&models.ChallengeEntry{}).
		Select("challenge_id, COUNT(*) as count").
		Where("challenge_id IN ?", ids).
		Group("challenge_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.ChallengeID] = r.Count
	}

	for i := range challenges {
		challenges[i].EntryCount = countMap[challenges[i].ID]
	}
}

func (h *ChallengeHandler) List(c *gin.Context) {
	query := db.DB.Model(&models.Challenge{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var challenges []models.Challenge
	query.Order("starts_at DESC").Limit(50).Find(&challenges)
	fillEntryCounts(challenges)

	c.JSON(http.StatusOK, gin.H{"challenges": challenges})
}

func (h *ChallengeHandler) Detail(c *gin.Context) {
	var challenge models.Challenge
	if err := db.DB.Where("slug = ?", c.Param("slug")).First(&challenge).Error; err != nil {
		JSONError(c, http.StatusNotFound, "challenge not found")
		return
	}

	var entryCount int64
	db.DB.Model(&models.ChallengeEntry{}).Where("challenge_id = ?", challenge.ID).Count(&entryCount)
	challenge.EntryCount = int(entryCount)

	payload := gin.H{
		"challenge":  challenge,
		"brief_html": utils.RenderMarkdown(challenge.Brief),
	}

	// Include the caller's own entry when logged in
	if user := CurrentUser(c); user != nil {
		var entry models.ChallengeEntry
		if err := db.DB.Where("challenge_id = ? AND user_id = ?", challenge.ID, user.ID).First(&entry).Error; err == nil {
			payload["entry"] = entry
		}
	}

	c.JSON(http.StatusOK, payload)
}

type challengeRequest struct {
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Brief    string    `json:"brief"`
	Status   string    `json:"status"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

// Create publishes a new challenge. Admin only.
func (h *ChallengeHandler) Create(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}
	if user.Role != "admin" {
		JSONError(c, http.StatusForbidden, "admin only")
		return
	}

	var req challengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Slug = strings.TrimSpace(strings.ToLower(req.Slug))
	if req.Slug == "" || strings.TrimSpace(req.Title) == "" {
		JSONError(c, http.StatusBadRequest, "slug and title are required")
		return
	}
	if req.Status == "" {
		req.Status = models.ChallengeUpcoming
	}

	challenge := models.Challenge{
		Slug:     req.Slug,
		Title:    req.Title,
		Brief:    req.Brief,
		Status:   req.Status,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	}
	if err := db.DB.Create(&challenge).Error; err != nil {
		JSONError(c, http.StatusConflict, "slug already in use")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"challenge": challenge})
}

// UpdateStatus moves a challenge through its lifecycle. Admin only.
func (h *ChallengeHandler) UpdateStatus(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}
	if user.Role != "admin" {
		JSONError(c, http.StatusForbidden, "admin only")
		return
	}

	var challenge models.Challenge
	if err := db.DB.Where("slug = ?", c.Param("slug")).First(&challenge).Error; err != nil {
		JSONError(c, http.StatusNotFound, "challenge not found")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	switch req.Status {
	case models.ChallengeUpcoming, models.ChallengeActive, models.ChallengeClosed:
	default:
		JSONError(c, http.StatusBadRequest, "unknown status")
		return
	}

	challenge.Status = req.Status
	if err := db.DB.Model(&challenge).UpdateColumn("status", req.Status).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to update challenge")
		return
	}

	c.JSON(http.StatusOK, gin.H{"challenge": challenge})
}

// Join enters the caller into a challenge. Joining again returns the
// existing entry; join points follow the diminishing-returns schedule.
func (h *ChallengeHandler) Join(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}

	var challenge models.Challenge
	if err := db.DB.Where("slug = ?", c.Param("slug")).First(&challenge).Error; err != nil {
		JSONError(c, http.StatusNotFound, "challenge not found")
		return
	}
	if challenge.Status != models.ChallengeActive {
		JSONError(c, http.StatusConflict, "challenge is not open for entries")
		return
	}

	var existing models.ChallengeEntry
	if err := db.DB.Where("challenge_id = ? AND user_id = ?", challenge.ID, user.ID).First(&existing).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{"entry": existing, "points_awarded": 0})
		return
	}

	entry := models.ChallengeEntry{
		Receipt:     uuid.NewString(),
		ChallengeID: challenge.ID,
		UserID:      user.ID,
	}
	if err := db.DB.Create(&entry).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to join challenge")
		return
	}

	awarded, _ := services.AwardPoints(user.ID, services.ActionChallengeJoin)

	c.JSON(http.StatusCreated, gin.H{"entry": entry, "points_awarded": awarded})
}

type submitRequest struct {
	SubmissionURL string `json:"submission_url"`
	Notes         string `json:"notes"`
}

// Submit records the caller's solution on their entry. Resubmitting
// replaces the previous submission; only the first submission per entry
// can pay out points.
func (h *ChallengeHandler) Submit(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}

	var challenge models.Challenge
	if err := db.DB.Where("slug = ?", c.Param("slug")).First(&challenge).Error; err != nil {
		JSONError(c, http.StatusNotFound, "challenge not found")
		return
	}
	if challenge.Status == models.ChallengeClosed {
		JSONError(c, http.StatusConflict, "challenge is closed")
		return
	}

	var entry models.ChallengeEntry
	if err := db.DB.Where("challenge_id = ? AND user_id = ?", challenge.ID, user.ID).First(&entry).Error; err != nil {
		JSONError(c, http.StatusConflict, "join the challenge before submitting")
		return
	}

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.SubmissionURL) == "" {
		JSONError(c, http.StatusBadRequest, "submission_url is required")
		return
	}

	firstSubmission := entry.SubmittedAt == nil

	now := time.Now()
	entry.SubmissionURL = req.SubmissionURL
	entry.Notes = req.Notes
	entry.SubmittedAt = &now
	if err := db.DB.Save(&entry).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to record submission")
		return
	}

	awarded := 0
	if firstSubmission {
		awarded, _ = services.AwardPoints(user.ID, services.ActionChallengeSubmit)
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry, "points_awarded": awarded})
}
