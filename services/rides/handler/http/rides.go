package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/logger"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/middleware"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	nrpkg "github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/newrelic"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/utils"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/rides"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/rides/booking"
)

// RidesHandler handles HTTP requests for ride operations
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{
		rideUC: rideUC,
	}
}

// userIDFromContext returns the authenticated user's id set by the JWT
// middleware
func userIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	return userID, ok
}

func rideIDFromParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("rideID"))
}

func pageParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}

// bookingErrorResponse maps booking domain errors onto HTTP responses
func bookingErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, booking.ErrRideNotFound):
		return utils.NotFoundResponse(c, "Ride not found")
	case errors.Is(err, booking.ErrRequestNotFound):
		return utils.NotFoundResponse(c, "Join request not found")
	case errors.Is(err, booking.ErrNotRideOwner):
		return utils.ForbiddenResponse(c, "Only the ride owner can do this")
	case errors.Is(err, booking.ErrSelfJoin):
		return utils.BadRequestResponse(c, "You cannot join your own ride")
	case errors.Is(err, booking.ErrDuplicateRequest):
		return utils.ErrorResponseHandler(c, http.StatusConflict, "Join request already exists")
	case errors.Is(err, booking.ErrAlreadyAccepted):
		return utils.ErrorResponseHandler(c, http.StatusConflict, "Passenger already accepted")
	case errors.Is(err, booking.ErrNoSeatsAvailable):
		return utils.ErrorResponseHandler(c, http.StatusConflict, "No seats available")
	default:
		return utils.InternalServerErrorResponse(c, "Something went wrong")
	}
}

// CreateRide handles posting a new ride
func (h *RidesHandler) CreateRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.CreateRide")

	ownerID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if req.Seats <= 0 {
		return utils.BadRequestResponse(c, "Seats must be positive")
	}
	if req.Source == "" || req.Destination == "" {
		return utils.BadRequestResponse(c, "Source and destination are required")
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), ownerID, &req)
	if err != nil {
		logger.Error("Failed to create ride",
			logger.String("owner_id", ownerID.String()),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to create ride")
	}
	middleware.SetRideID(c, ride.ID.String())

	return utils.SuccessResponse(c, http.StatusCreated, "Ride created", ride)
}

// ListRides handles searching active rides
func (h *RidesHandler) ListRides(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.ListRides")

	page, limit := pageParams(c)
	params := models.RideSearchParams{
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	}

	result, err := h.rideUC.ListRides(c.Request().Context(), params)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to list rides")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides fetched", result)
}

// GetRide handles fetching a single ride with its roster
func (h *RidesHandler) GetRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.GetRide")

	rideID, err := rideIDFromParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}
	middleware.SetRideID(c, rideID.String())

	detail, err := h.rideUC.GetRide(c.Request().Context(), rideID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return bookingErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride fetched", detail)
}

// MyRides handles listing the caller's created and joined rides
func (h *RidesHandler) MyRides(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.MyRides")

	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	page, limit := pageParams(c)

	result, err := h.rideUC.ListMyRides(c.Request().Context(), userID, page, limit)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to list rides")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides fetched", result)
}

// MyInactiveRides handles listing the caller's archived rides
func (h *RidesHandler) MyInactiveRides(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.MyInactiveRides")

	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	page, limit := pageParams(c)

	result, err := h.rideUC.ListMyInactiveRides(c.Request().Context(), userID, page, limit)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to list rides")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides fetched", result)
}

// FollowingRides handles listing rides posted by followed users
func (h *RidesHandler) FollowingRides(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.FollowingRides")

	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	page, limit := pageParams(c)

	result, err := h.rideUC.ListFollowingRides(c.Request().Context(), userID, page, limit)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to list rides")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides fetched", result)
}

// NearbyRides handles geo search around a point
func (h *RidesHandler) NearbyRides(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.NearbyRides")

	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}
	radius, _ := strconv.ParseFloat(c.QueryParam("radius"), 64)

	result, err := h.rideUC.NearbyRides(c.Request().Context(), lat, lng, radius)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to search nearby rides")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby rides fetched", result)
}

// RequestJoin handles a join request on a ride
func (h *RidesHandler) RequestJoin(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.RequestJoin")

	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := rideIDFromParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}
	middleware.SetRideID(c, rideID.String())
	middleware.SetUserID(c, userID.String())

	ride, err := h.rideUC.RequestJoin(c.Request().Context(), rideID, userID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return bookingErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Join request sent", ride)
}

// AcceptPassenger handles the owner accepting a pending join request
func (h *RidesHandler) AcceptPassenger(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.AcceptPassenger")

	ownerID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := rideIDFromParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}
	passengerID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	ride, err := h.rideUC.AcceptPassenger(c.Request().Context(), rideID, ownerID, passengerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return bookingErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Passenger accepted", ride)
}

// RejectPassenger handles the owner rejecting a request or removing an
// accepted passenger
func (h *RidesHandler) RejectPassenger(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.RejectPassenger")

	ownerID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := rideIDFromParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}
	passengerID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	ride, err := h.rideUC.RejectPassenger(c.Request().Context(), rideID, ownerID, passengerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return bookingErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Passenger rejected", ride)
}

// DeleteRide handles the owner deleting an active ride
func (h *RidesHandler) DeleteRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.DeleteRide")

	ownerID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := rideIDFromParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	if err := h.rideUC.DeleteRide(c.Request().Context(), rideID, ownerID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return bookingErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride deleted", nil)
}
