package routes

import (
	"net/http"

	"failfund/controllers"
	middlewares "failfund/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Server is running"})
	})

	api.POST("/auth/register", controllers.RegisterUser)
	api.POST("/auth/login", controllers.Login)
	api.POST("/auth/google", controllers.AuthGoogle)

	api.GET("/startups", controllers.GetAllStartups)
	api.GET("/startups/my", middlewares.AuthMiddleware(), controllers.GetMyStartups)
	api.GET("/startups/:id", controllers.GetStartupDetail)
	api.POST("/startups", middlewares.AuthMiddleware(), controllers.CreateStartup)
	api.PUT("/startups/:id", middlewares.AuthMiddleware(), controllers.UpdateStartup)
	api.DELETE("/startups/:id", middlewares.AuthMiddleware(), controllers.DeleteStartup)

	api.GET("/discussions", controllers.GetAllDiscussions)
	api.GET("/discussions/:id", controllers.GetDiscussionDetail)
	api.POST("/discussions", middlewares.AuthMiddleware(), controllers.CreateDiscussion)
	api.POST("/discussions/:id/replies", middlewares.AuthMiddleware(), controllers.AddReply)

	api.GET("/notifications", middlewares.AuthMiddleware(), controllers.GetMyNotifications)
	api.PUT("/notifications/:id/read", middlewares.AuthMiddleware(), controllers.MarkNotificationRead)
}
