package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/middleware"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/rides"
	httpHandler "github.com/PriyanKishoreMS/RideAlong-Server/services/rides/handler/http"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP *httpHandler.RidesHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(ridesUC rides.RideUC, cfg *models.Config) *Handler {
	return &Handler{
		ridesHTTP: httpHandler.NewRidesHandler(ridesUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes. Every ride endpoint requires
// an authenticated user.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	ridesGroup := e.Group("/rides", middleware.JWTAuthMiddleware(h.cfg.JWT))

	ridesGroup.POST("", h.ridesHTTP.CreateRide)
	ridesGroup.GET("", h.ridesHTTP.ListRides)
	ridesGroup.GET("/me", h.ridesHTTP.MyRides)
	ridesGroup.GET("/me/inactive", h.ridesHTTP.MyInactiveRides)
	ridesGroup.GET("/following", h.ridesHTTP.FollowingRides)
	ridesGroup.GET("/nearby", h.ridesHTTP.NearbyRides)
	ridesGroup.GET("/:rideID", h.ridesHTTP.GetRide)
	ridesGroup.DELETE("/:rideID", h.ridesHTTP.DeleteRide)
	ridesGroup.POST("/:rideID/join", h.ridesHTTP.RequestJoin)
	ridesGroup.POST("/:rideID/accept/:userID", h.ridesHTTP.AcceptPassenger)
	ridesGroup.POST("/:rideID/reject/:userID", h.ridesHTTP.RejectPassenger)
}
