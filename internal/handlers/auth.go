package handlers

import (
	"net/http"
	"strings"

	"mentorlink/internal/db"
	"mentorlink/internal/middleware"
	"mentorlink/internal/models"
	"mentorlink/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Username = strings.TrimSpace(req.Username)

	if !strings.Contains(req.Email, "@") {
		JSONError(c, http.StatusBadRequest, "invalid email address")
		return
	}
	if req.Username == "" {
		// Default username from the email local part
		req.Username = strings.SplitN(req.Email, "@", 2)[0]
	}
	if len(req.Password) < 6 {
		JSONError(c, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to create account")
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
		Avatar:   utils.GetRandomEmoji(),
		Points:   0,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		JSONError(c, http.StatusConflict, "email already registered")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", strings.TrimSpace(strings.ToLower(req.Email))).First(&user).Error; err != nil {
		JSONError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		JSONError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if user.Status == 2 {
		JSONError(c, http.StatusForbidden, "account is banned")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me returns the current session's user, with the unread notification
// count LoadUser already fetched.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}

	var unread int64
	if v, exists := c.Get(middleware.UnreadCountKey); exists {
		unread = v.(int64)
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "unread_count": unread})
}
