package user

import (
	"net/http"

	"fitdesk/internal/api"
	"fitdesk/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	cookie  auth.Cookie
}

func NewHandler(service Service, cookie auth.Cookie) *Handler {
	return &Handler{
		service: service,
		cookie:  cookie,
	}
}

// Login godoc
// @Summary      Login
// @Description  Authenticates by email and password and sets the session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "User credentials"
// @Success      200      {object}  LoginResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      429      {object}  api.ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	h.cookie.Set(c, token)
	c.JSON(http.StatusOK, LoginResponse{Token: token, User: *user})
}

// Logout godoc
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  api.MessageResponse
// @Router       /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	h.cookie.Clear(c)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out"})
}

// GetMe godoc
// @Summary      Current user
// @Tags         auth
// @Security     CookieAuth
// @Produce      json
// @Success      200  {object}  User
// @Failure      401  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /auth/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		api.RespondError(c, api.NewUnauthorizedError("User not authenticated"))
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
