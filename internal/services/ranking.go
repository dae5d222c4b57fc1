package services

import (
	"log"
	"sync"
	"time"

	"mentorlink/internal/db"
	"mentorlink/internal/models"
	"mentorlink/internal/utils"
)

// RankingService recomputes thread scores off the request path.
type RankingService struct {
	queue   chan uint // post ids waiting for recompute
	pending map[uint]bool
	mu      sync.Mutex
}

var (
	rankingService *RankingService
	once           sync.Once
)

// GetRankingService returns the singleton, starting the worker on first use.
func GetRankingService() *RankingService {
	once.Do(func() {
		rankingService = &RankingService{
			queue:   make(chan uint, 1000), // buffered so callers never block
			pending: make(map[uint]bool),
		}
		go rankingService.worker()
	})
	return rankingService
}

// ScheduleUpdate queues a post for score recompute, deduplicating
// requests that arrive while one is already pending.
func (s *RankingService) ScheduleUpdate(postID uint) {
	s.mu.Lock()
	if s.pending[postID] {
		s.mu.Unlock()
		return
	}
	s.pending[postID] = true
	s.mu.Unlock()

	select {
	case s.queue <- postID:
	default:
		// Queue full, drop the request and its pending mark
		s.mu.Lock()
		delete(s.pending, postID)
		s.mu.Unlock()
		log.Printf("Ranking queue full, skipping post %d", postID)
	}
}

func (s *RankingService) worker() {
	batch := make([]uint, 0, 50)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case postID := <-s.queue:
			batch = append(batch, postID)
			if len(batch) >= 50 {
				s.processBatch(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				s.processBatch(batch)
				batch = batch[:0]
			}
		}
	}
}

func (s *RankingService) processBatch(postIDs []uint) {
	for _, postID := range postIDs {
		s.updatePostScore(postID)

		s.mu.Lock()
		delete(s.pending, postID)
		s.mu.Unlock()
	}
}

// updatePostScore recomputes and stores one thread score.
func (s *RankingService) updatePostScore(postID uint) {
	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		log.Printf("Score update failed: post %d not found", postID)
		return
	}

	var upvotes int64
	db.DB.Model(&models.Vote{}).Where("post_id = ? AND value = 1", postID).Count(&upvotes)

	var downvotes int64
	db.DB.Model(&models.Vote{}).Where("post_id = ? AND value = -1", postID).Count(&downvotes)

	var bookmarks int64
	db.DB.Model(&models.Bookmark{}).Where("post_id = ?", postID).Count(&bookmarks)

	var comments int64
	db.DB.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&comments)

	newScore := utils.CalculateScore(
		post.CreatedAt,
		int(upvotes),
		int(downvotes),
		int(bookmarks),
		int(comments),
	)

	if err := db.DB.Model(&post).UpdateColumn("score", int(newScore)).Error; err != nil {
		log.Printf("Failed to update score for post %d: %v", postID, err)
	}
}

// StartScheduledScoreUpdate refreshes hot thread scores nightly at 3am
// so time decay keeps applying to posts nobody touches.
func (s *RankingService) StartScheduledScoreUpdate() {
	go func() {
		for {
			now := time.Now()
			next := time.Date(now.Year(), now.Month(), now.Day(), 3, 0, 0, 0, now.Location())
			if now.After(next) {
				next = next.Add(24 * time.Hour)
			}
			time.Sleep(time.Until(next))

			log.Println("Starting scheduled score refresh...")
			s.updateHotPosts()
			log.Println("Scheduled score refresh done")
		}
	}()
}

// updateHotPosts refreshes the last 7 days of threads plus the current
// top 30, deduplicating as it goes.
func (s *RankingService) updateHotPosts() {
	processed := make(map[uint]bool)
	count := 0

	sevenDaysAgo := time.Now().AddDate(0, 0, -7)
	var recentPosts []models.Post
	db.DB.Where("kind = ? AND created_at >= ?", models.PostKindThread, sevenDaysAgo).Select("id").Find(&recentPosts)
	for _, p := range recentPosts {
		s.updatePostScore(p.ID)
		processed[p.ID] = true
		count++
	}

	var topPosts []models.Post
	db.DB.Where("kind = ?", models.PostKindThread).Order("score DESC").Limit(30).Select("id").Find(&topPosts)
	for _, p := range topPosts {
		if !processed[p.ID] {
			s.updatePostScore(p.ID)
			count++
		}
	}

	log.Printf("Refreshed scores for %d posts", count)
}
