package router

import (
	"mentorlink/internal/handlers"
	"mentorlink/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	authHandler := handlers.NewAuthHandler()
	mentorHandler := handlers.NewMentorHandler()
	forumHandler := handlers.NewForumHandler()
	blogHandler := handlers.NewBlogHandler()
	challengeHandler := handlers.NewChallengeHandler()
	voteHandler := handlers.NewVoteHandler()
	userHandler := handlers.NewUserHandler()
	categoryHandler := handlers.NewCategoryHandler()
	bookmarkHandler := handlers.NewBookmarkHandler()
	notificationHandler := handlers.NewNotificationHandler()

	api := r.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/forum", forumHandler.ListTop)          // hot threads
	api.GET("/forum/new", forumHandler.ListNew)      // latest threads
	api.GET("/forum/t/:pid", forumHandler.Detail)    // thread + comment tree
	api.GET("/categories", categoryHandler.List)     // forum sections
	api.GET("/blogs", blogHandler.List)              // member blogs
	api.GET("/blogs/:pid", blogHandler.Detail)       // blog post + comments
	api.GET("/challenges", challengeHandler.List)    // challenge list
	api.GET("/mentors", mentorHandler.List)          // mentor search
	api.GET("/mentors/options", mentorHandler.Options)
	api.GET("/mentors/:id", mentorHandler.Detail)
	api.GET("/users/:id", userHandler.Profile)
	api.GET("/leaderboard", userHandler.Leaderboard)

	// Challenge detail needs the optional session user for "my entry"
	api.GET("/challenges/:slug", challengeHandler.Detail)

	// Protected routes
	authorized := api.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/auth/me", authHandler.Me)

		authorized.POST("/forum", forumHandler.Create)
		authorized.PUT("/forum/t/:pid", forumHandler.Update)
		authorized.DELETE("/forum/t/:pid", forumHandler.Delete)
		authorized.POST("/forum/t/:pid/comments", forumHandler.CreateComment)
		authorized.DELETE("/comments/:cid", forumHandler.DeleteComment)

		authorized.POST("/blogs", blogHandler.Create)
		authorized.PUT("/blogs/:pid", blogHandler.Update)
		authorized.DELETE("/blogs/:pid", blogHandler.Delete)

		authorized.POST("/challenges", challengeHandler.Create)
		authorized.PUT("/challenges/:slug/status", challengeHandler.UpdateStatus)
		authorized.POST("/challenges/:slug/join", challengeHandler.Join)
		authorized.POST("/challenges/:slug/submit", challengeHandler.Submit)

		authorized.PUT("/mentors/me", mentorHandler.Upsert)
		authorized.POST("/mentors/me/topics", mentorHandler.ToggleTopic)

		authorized.POST("/vote/:type/:id", voteHandler.Vote)
		authorized.POST("/vote/:type/:id/down", voteHandler.Downvote)
		authorized.POST("/bookmarks/:id", bookmarkHandler.Toggle)

		authorized.GET("/dashboard", userHandler.Dashboard)
		authorized.GET("/dashboard/points", userHandler.PointLogs)
		authorized.PUT("/dashboard/settings", userHandler.UpdateSettings)

		authorized.GET("/notifications", notificationHandler.List)
		authorized.POST("/notifications/:id/read", notificationHandler.Read)
		authorized.POST("/notifications/read-all", notificationHandler.ReadAll)
		authorized.DELETE("/notifications/:id", notificationHandler.Delete)
	}
}
