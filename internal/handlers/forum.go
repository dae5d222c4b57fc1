package handlers

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"mentorlink/internal/db"
	"mentorlink/internal/models"
	"mentorlink/internal/services"
	"mentorlink/internal/utils"

	"github.com/gin-gonic/gin"
)

// Reply nesting shown by the thread view; deeper replies surface at the
// top level (see services.BuildCommentTree).
const defaultCommentDepth = 5

type ForumHandler struct{}

func NewForumHandler() *ForumHandler {
	return &ForumHandler{}
}

// commentDepth reads COMMENT_MAX_DEPTH, falling back to the default.
func commentDepth() int {
	if v := os.Getenv("COMMENT_MAX_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultCommentDepth
}

// fillCommentCounts batch-fills CommentCount for a page of posts.
func fillCommentCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type CountResult struct {
		PostID uint
		Count  int
	}
	var results []CountResult
	db.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].CommentCount = countMap[posts[i].ID]
	}
}

// ListTop returns threads ranked by score (hot first).
func (h *ForumHandler) ListTop(c *gin.Context) {
	h.list(c, "top")
}

// ListNew returns threads by creation time.
func (h *ForumHandler) ListNew(c *gin.Context) {
	h.list(c, "new")
}

func (h *ForumHandler) list(c *gin.Context, order string) {
	page, perPage := Pagination(c, 30, 100)
	category := c.Query("category")

	cacheKey := fmt.Sprintf("forum:%s:cat:%s:page:%d:per:%d", order, category, page, perPage)
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if payload, ok := cached.(gin.H); ok {
			c.JSON(http.StatusOK, payload)
			return
		}
	}

	query := db.DB.Model(&models.Post{}).
		Preload("User").Preload("Category").
		Where("kind = ?", models.PostKindThread)

	if category != "" {
		query = query.Joins("JOIN categories ON categories.id = posts.category_id").
			Where("categories.name = ?", category)
	}

	var total int64
	query.Count(&total)

	if order == "top" {
		query = query.Order("score DESC, created_at DESC")
	} else {
		query = query.Order("created_at DESC")
	}

	var posts []models.Post
	query.Offset((page - 1) * perPage).Limit(perPage).Find(&posts)
	fillCommentCounts(posts)

	payload := gin.H{
		"threads":  posts,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	}
	utils.GetCache().Set(cacheKey, payload, 1*time.Minute)
	c.JSON(http.StatusOK, payload)
}

// Detail returns one thread with its nested comment tree.
func (h *ForumHandler) Detail(c *gin.Context) {
	pid := c.Param("pid")

	var post models.Post
	if err := db.DB.Preload("User").Preload("Category").Where("pid = ?", pid).First(&post).Error; err != nil {
		JSONError(c, http.StatusNotFound, "thread not found")
		return
	}

	// Count the view and keep the score fresh
	db.DB.Model(&post).UpdateColumn("views", post.Views+1)
	post.Views++
	services.GetRankingService().ScheduleUpdate(post.ID)

	var comments []models.Comment
	db.DB.Preload("User").Where("post_id = ?", post.ID).Order("created_at ASC").Find(&comments)
	tree := services.BuildCommentTree(comments, commentDepth())

	var bookmarkCount int64
	db.DB.Model(&models.Bookmark{}).Where("post_id = ?", post.ID).Count(&bookmarkCount)

	var upvoteCount int64
	db.DB.Model(&models.Vote{}).Where("post_id = ? AND value = 1", post.ID).Count(&upvoteCount)

	var downvoteCount int64
	db.DB.Model(&models.Vote{}).Where("post_id = ? AND value = -1", post.ID).Count(&downvoteCount)

	c.JSON(http.StatusOK, gin.H{
		"thread":         post,
		"content_html":   utils.RenderMarkdown(post.Content),
		"comments":       tree,
		"comment_count":  len(comments),
		"bookmark_count": bookmarkCount,
		"upvote_count":   upvoteCount,
		"downvote_count": downvoteCount,
	})
}

type createThreadRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID uint   `json:"category_id"`
}

// Create posts a new thread and awards creation points on the
// diminishing-returns schedule.
func (h *ForumHandler) Create(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}
	if user.Status != 0 {
		JSONError(c, http.StatusForbidden, "account is not allowed to post")
		return
	}

	var req createThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		JSONError(c, http.StatusBadRequest, "title is required")
		return
	}

	var category models.Category
	if err := db.DB.First(&category, req.CategoryID).Error; err != nil {
		JSONError(c, http.StatusBadRequest, "unknown category")
		return
	}

	post := models.Post{
		Pid:        utils.GenerateID(8),
		UserID:     user.ID,
		CategoryID: &category.ID,
		Kind:       models.PostKindThread,
		Title:      req.Title,
		Content:    req.Content,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to create thread")
		return
	}

	awarded, _ := services.AwardPoints(user.ID, services.ActionThreadCreate)

	c.JSON(http.StatusCreated, gin.H{"thread": post, "points_awarded": awarded})
}

type updateThreadRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *ForumHandler) Update(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}

	var post models.Post
	if err := db.DB.Where("pid = ?", c.Param("pid")).First(&post).Error; err != nil {
		JSONError(c, http.StatusNotFound, "thread not found")
		return
	}
	if post.UserID != user.ID && user.Role != "admin" {
		JSONError(c, http.StatusForbidden, "not your thread")
		return
	}

	var req updateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if title := strings.TrimSpace(req.Title); title != "" {
		post.Title = title
	}
	post.Content = req.Content
	if err := db.DB.Save(&post).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to update thread")
		return
	}

	c.JSON(http.StatusOK, gin.H{"thread": post})
}

func (h *ForumHandler) Delete(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}

	var post models.Post
	if err := db.DB.Where("pid = ?", c.Param("pid")).First(&post).Error; err != nil {
		JSONError(c, http.StatusNotFound, "thread not found")
		return
	}
	if post.UserID != user.ID && user.Role != "admin" {
		JSONError(c, http.StatusForbidden, "not your thread")
		return
	}

	if err := db.DB.Delete(&post).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to delete thread")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type createCommentRequest struct {
	Content  string `json:"content"`
	ParentID *uint  `json:"parent_id"`
}

// CreateComment adds a reply to a thread (or blog entry), awards reply
// points and notifies the parent author.
func (h *ForumHandler) CreateComment(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}
	if user.Status != 0 {
		JSONError(c, http.StatusForbidden, "account is not allowed to comment")
		return
	}

	var post models.Post
	if err := db.DB.Where("pid = ?", c.Param("pid")).First(&post).Error; err != nil {
		JSONError(c, http.StatusNotFound, "thread not found")
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		JSONError(c, http.StatusBadRequest, "content is required")
		return
	}

	// A parent from another post would corrupt the tree; silently
	// treating it as top-level hides client bugs, so reject it.
	if req.ParentID != nil {
		var parent models.Comment
		if err := db.DB.First(&parent, *req.ParentID).Error; err != nil || parent.PostID != post.ID {
			JSONError(c, http.StatusBadRequest, "parent comment not found on this thread")
			return
		}
	}

	comment := models.Comment{
		Cid:      utils.GenerateID(8),
		PostID:   post.ID,
		UserID:   user.ID,
		ParentID: req.ParentID,
		Content:  req.Content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to create comment")
		return
	}

	awarded, _ := services.AwardPoints(user.ID, services.ActionForumReply)
	services.GetRankingService().ScheduleUpdate(post.ID)

	// Notify the parent comment author, or the thread author
	go func() {
		actorID := user.ID
		if req.ParentID != nil {
			var parent models.Comment
			if err := db.DB.First(&parent, *req.ParentID).Error; err == nil && parent.UserID != actorID {
				db.DB.Create(&models.Notification{
					UserID:  parent.UserID,
					ActorID: &actorID,
					Type:    models.NotificationTypeReplyComment,
					Reason:  fmt.Sprintf("%s replied to your comment on \"%s\"", user.Username, post.Title),
				})
			}
		} else if post.UserID != actorID {
			db.DB.Create(&models.Notification{
				UserID:  post.UserID,
				ActorID: &actorID,
				Type:    models.NotificationTypeCommentPost,
				Reason:  fmt.Sprintf("%s commented on \"%s\"", user.Username, post.Title),
			})
		}
	}()

	comment.User = *user
	c.JSON(http.StatusCreated, gin.H{"comment": comment, "points_awarded": awarded})
}

// DeleteComment blanks a comment but keeps its place in the tree so
// replies under it stay attached.
func (h *ForumHandler) DeleteComment(c *gin.Context) {
	user, ok := RequireUser(c)
	if !ok {
		return
	}

	var comment models.Comment
	if err := db.DB.Where("cid = ?", c.Param("cid")).First(&comment).Error; err != nil {
		JSONError(c, http.StatusNotFound, "comment not found")
		return
	}
	if comment.UserID != user.ID && user.Role != "admin" {
		JSONError(c, http.StatusForbidden, "not your comment")
		return
	}

	comment.Content = "[deleted]"
	if err := db.DB.Model(&comment).UpdateColumn("content", comment.Content).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to delete comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
