package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/database"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/middleware"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/users"
	httpHandler "github.com/PriyanKishoreMS/RideAlong-Server/services/users/handler/http"
)

// Handler combines all handlers for the users service
type Handler struct {
	usersHTTP   *httpHandler.UsersHandler
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewHandler creates a new combined handler
func NewHandler(userUC users.UserUC, cfg *models.Config, redisClient *database.RedisClient) *Handler {
	return &Handler{
		usersHTTP:   httpHandler.NewUsersHandler(userUC),
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// RegisterRoutes registers all HTTP routes. Registration and login are
// public but rate limited per IP; everything else requires an
// authenticated user.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authLimiter := middleware.IPRateLimiter(10, time.Minute, h.redisClient.GetClient())

	authGroup := e.Group("/auth", authLimiter)
	authGroup.POST("/register", h.usersHTTP.Register)
	authGroup.POST("/login", h.usersHTTP.Login)

	usersGroup := e.Group("/users", middleware.JWTAuthMiddleware(h.cfg.JWT))
	usersGroup.GET("", h.usersHTTP.SearchUsers)
	usersGroup.GET("/me", h.usersHTTP.Me)
	usersGroup.GET("/me/followers", h.usersHTTP.Followers)
	usersGroup.GET("/me/following", h.usersHTTP.Following)
	usersGroup.GET("/me/address", h.usersHTTP.GetAddress)
	usersGroup.PUT("/me/address/home", h.usersHTTP.SetHomeAddress)
	usersGroup.PUT("/me/address/work", h.usersHTTP.SetWorkAddress)
	usersGroup.POST("/me/devices", h.usersHTTP.RegisterDevice)
	usersGroup.DELETE("/me/devices", h.usersHTTP.RemoveDevice)
	usersGroup.GET("/:userID", h.usersHTTP.GetUser)
	usersGroup.POST("/:userID/follow", h.usersHTTP.ToggleFollow)
	usersGroup.GET("/:userID/followers", h.usersHTTP.Followers)
	usersGroup.GET("/:userID/following", h.usersHTTP.Following)
}
