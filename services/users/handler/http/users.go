package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/logger"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	nrpkg "github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/newrelic"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/utils"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/users"
)

// UsersHandler handles HTTP requests for user operations
type UsersHandler struct {
	userUC users.UserUC
}

// NewUsersHandler creates a new user HTTP handler
func NewUsersHandler(userUC users.UserUC) *UsersHandler {
	return &UsersHandler{
		userUC: userUC,
	}
}

func userIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	return userID, ok
}

// targetUserID resolves the user a request addresses: the :userID path
// param when present, the authenticated caller for /me routes.
func targetUserID(c echo.Context) (uuid.UUID, bool) {
	param := c.Param("userID")
	if param == "" {
		return userIDFromContext(c)
	}
	targetID, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, false
	}
	return targetID, true
}

func pageParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}

func userErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		return utils.NotFoundResponse(c, "User not found")
	case errors.Is(err, users.ErrEmailTaken):
		return utils.ErrorResponseHandler(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, users.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, "Invalid email or password")
	case errors.Is(err, users.ErrSelfFollow):
		return utils.BadRequestResponse(c, "You cannot follow yourself")
	default:
		return utils.InternalServerErrorResponse(c, "Something went wrong")
	}
}

// Register handles account creation
func (h *UsersHandler) Register(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.Register")

	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return utils.BadRequestResponse(c, "Email, password and name are required")
	}
	if !utils.IsValidEmail(req.Email) {
		return utils.BadRequestResponse(c, "Invalid email address")
	}
	if req.Mobile != "" && !utils.IsValidPhoneNumber(req.Mobile) {
		return utils.BadRequestResponse(c, "Invalid mobile number")
	}

	resp, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to register user",
			logger.String("email", utils.MaskEmail(req.Email)),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return userErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created", resp)
}

// Login handles credential login
func (h *UsersHandler) Login(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.Login")

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return userErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged in", resp)
}

// Me handles fetching the caller's own profile
func (h *UsersHandler) Me(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.Me")

	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return userErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile fetched", user)
}

// GetUser handles fetching another user's profile
func (h *UsersHandler) GetUser(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.GetUser")

	targetID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), targetID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return userErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile fetched", user)
}

// SearchUsers handles name search over profiles
func (h *UsersHandler) SearchUsers(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.SearchUsers")

	page, limit := pageParams(c)
	result, err := h.userUC.SearchUsers(c.Request().Context(), c.QueryParam("search"), page, limit)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to search users")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Users fetched", result)
}

// ToggleFollow handles the follow/unfollow toggle
func (h *UsersHandler) ToggleFollow(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.ToggleFollow")

	followerID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	followeeID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	result, err := h.userUC.ToggleFollow(c.Request().Context(), followerID, followeeID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return userErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Follow toggled", result)
}

// Followers handles listing a user's followers
func (h *UsersHandler) Followers(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.Followers")

	targetID, ok := targetUserID(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}
	page, limit := pageParams(c)

	result, err := h.userUC.ListFollowers(c.Request().Context(), targetID, page, limit)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to list followers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Followers fetched", result)
}

// Following handles listing who a user follows
func (h *UsersHandler) Following(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.Following")

	targetID, ok := targetUserID(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}
	page, limit := pageParams(c)

	result, err := h.userUC.ListFollowing(c.Request().Context(), targetID, page, limit)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to list following")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Following fetched", result)
}

// SetHomeAddress handles saving the caller's home address
func (h *UsersHandler) SetHomeAddress(c echo.Context) error {
	return h.setAddress(c, "Users.SetHomeAddress", h.userUC.SetHomeAddress)
}

// SetWorkAddress handles saving the caller's work address
func (h *UsersHandler) SetWorkAddress(c echo.Context) error {
	return h.setAddress(c, "Users.SetWorkAddress", h.userUC.SetWorkAddress)
}

func (h *UsersHandler) setAddress(c echo.Context, txnName string, save func(ctx context.Context, userID uuid.UUID, address string) error) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, txnName)

	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.AddressRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if req.Address == "" {
		return utils.BadRequestResponse(c, "Address is required")
	}

	if err := save(c.Request().Context(), userID, req.Address); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return userErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Address saved", nil)
}

// GetAddress handles fetching the caller's saved addresses
func (h *UsersHandler) GetAddress(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.GetAddress")

	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return userErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Addresses fetched", models.AddressResponse{
		HomeAddress: user.HomeAddress,
		WorkAddress: user.WorkAddress,
	})
}

// RegisterDevice handles push token registration
func (h *UsersHandler) RegisterDevice(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.RegisterDevice")

	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.DeviceTokenRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if req.Token == "" {
		return utils.BadRequestResponse(c, "Token is required")
	}

	if err := h.userUC.RegisterDeviceToken(c.Request().Context(), userID, req.Token); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to register device")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Device registered", nil)
}

// RemoveDevice handles push token removal
func (h *UsersHandler) RemoveDevice(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.RemoveDevice")

	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.DeviceTokenRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if req.Token == "" {
		return utils.BadRequestResponse(c, "Token is required")
	}

	if err := h.userUC.RemoveDeviceToken(c.Request().Context(), userID, req.Token); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to remove device")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Device removed", nil)
}
