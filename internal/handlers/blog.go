package handlers

import (
	"net/http"
	"strings"

	"mentorlink/internal/db"
	"mentorlink/internal/models"
	"mentorlink/internal/services"
	"mentorlink/internal/utils"

	"github.com/gin-gonic/gin"
)

// BlogHandler serves member blogs. Blogs share the posts table with
// forum threads (kind = blog) and reuse the comment machinery, but are
// listed chronologically and never ranked.
type BlogHandler struct{}

func NewBlogHandler() *BlogHandler {
	return &BlogHandler{}
}

func (h *BlogHandler) List(c *gin.Context) {
	page, perPage := Pagination(c, 20, 50)

	query := db.DB.Model(&models.Post{}).
		Preload("User").
		Where("kind = ?", models.PostKindBlog)

	if author := c.Query("author"); author != "" {
		query = query.Where("user_id = ?", utils.StringToInt(author))
	}

	var total int64
	query.Count(&total)

	var posts []models.Post
	query.Order("created_at DESC").Offset((page - 1) * perPage).Limit(perPage).Find(&posts)
	fillCommentCounts(posts)

	c.JSON(http.StatusOK, gin.H{
		"posts":    posts,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	})
}

func (h *BlogHandler) Detail(c *gin.Context) {
	var post models.Post
	if err := db.DB.Preload("User").
		Where("pid = ? AND kind = ?", c.Param("pid"), models.PostKindBlog).
		First(&post).Error; err != nil {
		JSONError(c, http.StatusNotFound, "blog post not found")
		return
	}

	db.DB.Model(&post).UpdateColumn("views", post.Views+1)
	post.Views++

	var comments []models.Comment
	db.DB.Preload("User").Where("post_id = ?", post.ID).Order("created_at ASC").Find(&comments)
	tree := services.BuildCommentTree(comments, commentDepth())

	c.JSON(http.StatusOK, gin.H{
		"post":          post,
		"content_html":  utils.RenderMarkdown(post.Content),
		"comments":      tree,
		"comment_count": len(comments),
	})
}

type blogRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Create publishes a blog post. Blogs earn no points.
func (h *BlogHandler) Create(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}
	if user.Status != 0 {
		JSONError(c, http.StatusForbidden, "account is not allowed to post")
		return
	}

	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || strings.TrimSpace(req.Content) == "" {
		JSONError(c, http.StatusBadRequest, "title and content are required")
		return
	}

	post := models.Post{
		Pid:     utils.GenerateID(8),
		UserID:  user.ID,
		Kind:    models.PostKindBlog,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to create blog post")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

func (h *BlogHandler) Update(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}

	var post models.Post
	if err := db.DB.Where("pid = ? AND kind = ?", c.Param("pid"), models.PostKindBlog).First(&post).Error; err != nil {
		JSONError(c, http.StatusNotFound, "blog post not found")
		return
	}
	if post.UserID != user.ID && user.Role != "admin" {
		JSONError(c, http.StatusForbidden, "not your post")
		return
	}

	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if title := strings.TrimSpace(req.Title); title != "" {
		post.Title = title
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	if err := db.DB.Save(&post).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to update blog post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

func (h *BlogHandler) Delete(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}

	var post models.Post
	if err := db.DB.Where("pid = ? AND kind = ?", c.Param("pid"), models.PostKindBlog).First(&post).Error; err != nil {
		JSONError(c, http.StatusNotFound, "blog post not found")
		return
	}
	if post.UserID != user.ID && user.Role != "admin" {
		JSONError(c, http.StatusForbidden, "not your post")
		return
	}

	if err := db.DB.Delete(&post).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to delete blog post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
