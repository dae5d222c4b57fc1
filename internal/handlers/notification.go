package handlers

import (
	"net/http"

	"mentorlink/internal/db"
	"mentorlink/internal/models"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct{}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

func (h *NotificationHandler) List(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}

	var notifications []models.Notification
	db.DB.Preload("Actor").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications)

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *NotificationHandler) Read(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}

	var notification models.Notification
	if err := db.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&notification).Error; err != nil {
		JSONError(c, http.StatusNotFound, "notification not found")
		return
	}

	notification.IsRead = true
	db.DB.Save(&notification)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *NotificationHandler) ReadAll(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}

	db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.ID, false).
		Update("is_read", true)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}

	var notification models.Notification
	if err := db.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&notification).Error; err != nil {
		JSONError(c, http.StatusNotFound, "notification not found")
		return
	}

	db.DB.Delete(&notification)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
