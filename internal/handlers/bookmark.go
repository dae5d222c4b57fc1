package handlers

import (
	"net/http"
	"strconv"

	"mentorlink/internal/db"
	"mentorlink/internal/models"
	"mentorlink/internal/services"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct{}

func NewBookmarkHandler() *BookmarkHandler {
	return &BookmarkHandler{}
}

// Toggle bookmarks or un-bookmarks a post. No point side effects either
// way; bookmarks only feed the ranking weights.
func (h *BookmarkHandler) Toggle(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		JSONError(c, http.StatusBadRequest, "invalid post id")
		return
	}
	postID := uint(id)

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		JSONError(c, http.StatusNotFound, "post not found")
		return
	}

	bookmarked := false
	var existing models.Bookmark
	if err := db.DB.Where("user_id = ? AND post_id = ?", user.ID, postID).First(&existing).Error; err == nil {
		db.DB.Delete(&existing)
	} else {
		db.DB.Create(&models.Bookmark{
			UserID: user.ID,
			PostID: postID,
		})
		bookmarked = true
	}

	services.GetRankingService().ScheduleUpdate(postID)

	var count int64
	db.DB.Model(&models.Bookmark{}).Where("post_id = ?", postID).Count(&count)

	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked, "count": count})
}
