package handlers

import (
	"errors"
	"net/http"

	"github.com/RithigaS/BACKEND/internal/dto"
	"github.com/RithigaS/BACKEND/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// UserHandler handles register, login and profile routes.
type UserHandler struct {
	svc *service.UserService
}

// NewUserHandler returns a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Credentials"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}
	err := h.svc.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		case errors.Is(err, service.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
		default:
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("register failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed. Please try again."})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registration successful"})
}

// Login godoc
// @Summary      Login (stateless, echoes the username back)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}
	user, err := h.svc.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "User not found"})
		case errors.Is(err, service.ErrInvalidPassword):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid password"})
		default:
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed. Please try again later."})
		}
		return
	}
	// No cookie, no token: the caller keeps the username client-side and any
	// later request carrying it is unauthenticated by contract.
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "username": user.Username})
}

// GetProfile godoc
// @Summary      Get a user profile with blog count
// @Tags         users
// @Produce      json
// @Param        username  query  string  true  "Username"
// @Success      200  {object}  dto.ProfileResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	username := c.Query("username")
	user, blogsCount, err := h.svc.Profile(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User not found"})
			return
		}
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("fetch profile failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching profile"})
		return
	}
	c.JSON(http.StatusOK, dto.ProfileResponse{
		Username:   user.Username,
		Portfolio:  user.Portfolio,
		BlogsCount: blogsCount,
	})
}

// UpdateProfile godoc
// @Summary      Update the portfolio link
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "Profile fields"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User not found"})
		return
	}
	user, err := h.svc.UpdatePortfolio(c.Request.Context(), req.Username, req.Portfolio)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User not found"})
			return
		}
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("update profile failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user": dto.UserResponse{
			ID:        user.ID.Hex(),
			Username:  user.Username,
			Portfolio: user.Portfolio,
		},
	})
}
