package handlers

import (
	"net/http"
	"strconv"

	"mentorlink/internal/middleware"
	"mentorlink/internal/models"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the logged-in user from the context, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		return user.(*models.User)
	}
	return nil
}

// JSONError writes the standard error payload.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// RequireUser returns the current user or writes a 401. Routes behind
// AuthRequired never hit the nil branch; this keeps handlers safe when
// called outside it.
func RequireUser(c *gin.Context) (*models.User, bool) {
	user := CurrentUser(c)
	if user == nil {
		JSONError(c, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	return user, true
}

// Pagination pulls page/per_page query params with sane bounds.
func Pagination(c *gin.Context, defaultPerPage, maxPerPage int) (page, perPage int) {
	page = 1
	if p := c.Query("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}
	perPage = defaultPerPage
	if p := c.Query("per_page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			perPage = n
		}
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}
