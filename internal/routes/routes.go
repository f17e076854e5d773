package routes

import (
	"net/http"

	"quicktweet_backend/internal/handlers"
	"quicktweet_backend/internal/middleware"
	"quicktweet_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes собирает все маршруты приложения под /api/v1
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	// Публичные маршруты
	api.POST("/register", h.User.Register)
	api.POST("/login", h.User.Login)

	// Требуют валидного токена
	authorized := api.Group("")
	authorized.Use(middleware.AuthMiddleware())
	{
		authorized.GET("/profile", h.User.GetProfile)
		authorized.PUT("/profile", h.User.UpdateProfile)
		authorized.PUT("/profile/status", h.User.UpdateStatus)

		authorized.GET("/users", h.User.ListUsers)
		authorized.GET("/users/search", h.User.SearchUsers)
		authorized.GET("/users/interests", h.User.GetByInterests)
		authorized.GET("/users/:username", h.User.GetUser)
		authorized.GET("/users/:username/status", h.User.GetStatus)

		authorized.POST("/friends/requests", h.Friend.SendRequest)
		authorized.GET("/friends/requests", h.Friend.ListFriendRequests)
		authorized.POST("/friends", h.Friend.AddFriend)
		authorized.GET("/friends", h.Friend.ListFriends)
		authorized.DELETE("/friends/:username", h.Friend.RemoveFriend)
	}

	// Только для администраторов
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("/registrations", h.Admin.ListPendingRequests)
		admin.POST("/registrations/:username/approve", h.Admin.ApproveRegistration)
		admin.POST("/registrations/:username/reject", h.Admin.RejectRegistration)
		admin.PUT("/users/:id/role", h.Admin.ToggleUserRole)
		admin.DELETE("/users/:id", h.Admin.DeleteAccount)
	}
}
