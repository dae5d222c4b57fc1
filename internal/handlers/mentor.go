package handlers

import (
	"net/http"

	"mentorlink/internal/db"
	"mentorlink/internal/flags"
	"mentorlink/internal/models"
	"mentorlink/internal/utils"

	"github.com/gin-gonic/gin"
)

type MentorHandler struct{}

func NewMentorHandler() *MentorHandler {
	return &MentorHandler{}
}

// mentorView is a MentorProfile with its packed flag columns expanded
// into display-name lists for the SPA.
type mentorView struct {
	models.MentorProfile
	MentoringLevelNames  []string `json:"mentoring_level_names"`
	PaymentTypeNames     []string `json:"payment_type_names"`
	ExpertiseDomainNames []string `json:"expertise_domain_names"`
	ExpertiseTopicNames  []string `json:"expertise_topic_names"`
}

func newMentorView(p models.MentorProfile) mentorView {
	return mentorView{
		MentorProfile:        p,
		MentoringLevelNames:  flags.MentorLevels.Names(flags.Flags(p.MentoringLevels)),
		PaymentTypeNames:     flags.PaymentTypes.Names(flags.Flags(p.PaymentTypes)),
		ExpertiseDomainNames: flags.ExpertiseDomains.Names(flags.Flags(p.ExpertiseDomains)),
		ExpertiseTopicNames:  flags.ExpertiseTopics.Names(flags.Flags(p.ExpertiseTopicsPreset)),
	}
}

// List searches mentor profiles. Multi-select filters arrive as comma
// separated names (?levels=junior,mid-level&domains=backend) and are
// packed back into flag masks; a profile matches a family filter when
// it shares at least one bit with the mask.
func (h *MentorHandler) List(c *gin.Context) {
	page, perPage := Pagination(c, 20, 50)

	query := db.DB.Model(&models.MentorProfile{}).Preload("User").Where("accepting = ?", true)

	if mask := flags.MentorLevels.FromNames(utils.SplitNames(c.Query("levels"))); mask != 0 {
		query = query.Where("mentoring_levels & ? <> 0", uint32(mask))
	}
	if mask := flags.PaymentTypes.FromNames(utils.SplitNames(c.Query("payment"))); mask != 0 {
		query = query.Where("payment_types & ? <> 0", uint32(mask))
	}
	if mask := flags.ExpertiseDomains.FromNames(utils.SplitNames(c.Query("domains"))); mask != 0 {
		query = query.Where("expertise_domains & ? <> 0", uint32(mask))
	}
	if mask := flags.ExpertiseTopics.FromNames(utils.SplitNames(c.Query("topics"))); mask != 0 {
		query = query.Where("expertise_topics_preset & ? <> 0", uint32(mask))
	}

	var total int64
	query.Count(&total)

	var profiles []models.MentorProfile
	query.Order("updated_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&profiles)

	views := make([]mentorView, len(profiles))
	for i, p := range profiles {
		views[i] = newMentorView(p)
	}

	c.JSON(http.StatusOK, gin.H{
		"mentors":  views,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	})
}

// Detail returns one mentor profile by user id.
func (h *MentorHandler) Detail(c *gin.Context) {
	var profile models.MentorProfile
	if err := db.DB.Preload("User").Where("user_id = ?", c.Param("id")).First(&profile).Error; err != nil {
		JSONError(c, http.StatusNotFound, "mentor not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"mentor": newMentorView(profile)})
}

type mentorProfileRequest struct {
	Headline              string   `json:"headline"`
	Availability          string   `json:"availability"`
	HourlyRate            int      `json:"hourly_rate"`
	MentoringLevels       []string `json:"mentoring_levels"`
	PaymentTypes          []string `json:"payment_types"`
	ExpertiseDomains      []string `json:"expertise_domains"`
	ExpertiseTopics       []string `json:"expertise_topics"`
	ExpertiseTopicsCustom string   `json:"expertise_topics_custom"`
	Accepting             *bool    `json:"accepting"`
}

// Upsert creates or updates the caller's mentor profile. Selections are
// submitted as name lists; unknown names are dropped silently, so an
// SPA shipping a newer enum revision degrades instead of failing.
func (h *MentorHandler) Upsert(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}

	var req mentorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	accepting := true
	if req.Accepting != nil {
		accepting = *req.Accepting
	}

	profile := models.MentorProfile{
		UserID:                user.ID,
		Headline:              req.Headline,
		Availability:          req.Availability,
		HourlyRate:            req.HourlyRate,
		MentoringLevels:       uint32(flags.MentorLevels.FromNames(req.MentoringLevels)),
		PaymentTypes:          uint32(flags.PaymentTypes.FromNames(req.PaymentTypes)),
		ExpertiseDomains:      uint32(flags.ExpertiseDomains.FromNames(req.ExpertiseDomains)),
		ExpertiseTopicsPreset: uint32(flags.ExpertiseTopics.FromNames(req.ExpertiseTopics)),
		ExpertiseTopicsCustom: req.ExpertiseTopicsCustom,
		Accepting:             accepting,
	}

	var existing models.MentorProfile
	if err := db.DB.Where("user_id = ?", user.ID).First(&existing).Error; err == nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		if err := db.DB.Save(&profile).Error; err != nil {
			JSONError(c, http.StatusInternalServerError, "failed to update profile")
			return
		}
	} else {
		if err := db.DB.Create(&profile).Error; err != nil {
			JSONError(c, http.StatusInternalServerError, "failed to create profile")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"mentor": newMentorView(profile)})
}

// ToggleTopic flips one preset topic bit on the caller's profile.
// The SPA uses this for its topic chips without resending the full set.
func (h *MentorHandler) ToggleTopic(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}

	var profile models.MentorProfile
	if err := db.DB.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		JSONError(c, http.StatusNotFound, "mentor profile not found")
		return
	}

	var req struct {
		Topic string `json:"topic"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	mask := flags.ExpertiseTopics.FromNames([]string{req.Topic})
	if mask == 0 {
		JSONError(c, http.StatusBadRequest, "unknown topic")
		return
	}

	profile.ExpertiseTopicsPreset = uint32(flags.Toggle(flags.Flags(profile.ExpertiseTopicsPreset), mask))
	if err := db.DB.Model(&profile).UpdateColumn("expertise_topics_preset", profile.ExpertiseTopicsPreset).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"mentor": newMentorView(profile)})
}

// Options lists every selectable name per family so the SPA renders its
// filter controls from the backend's enum tables.
func (h *MentorHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"mentoring_levels":  flags.MentorLevels.Names(flags.MentorLevels.All()),
		"payment_types":     flags.PaymentTypes.Names(flags.PaymentTypes.All()),
		"expertise_domains": flags.ExpertiseDomains.Names(flags.ExpertiseDomains.All()),
		"expertise_topics":  flags.ExpertiseTopics.Names(flags.ExpertiseTopics.All()),
	})
}
