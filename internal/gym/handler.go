package gym

import (
	"net/http"

	"fitdesk/internal/api"
	"fitdesk/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      List gyms
// @Tags         admin-gyms
// @Security     CookieAuth
// @Produce      json
// @Success      200 {array}  gym.Summary
// @Failure      403 {object} api.ErrorResponse
// @Router       /admin/gyms [get]
func (h *Handler) List(c *gin.Context) {
	gyms, err := h.service.List(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gyms)
}

// @Summary      Create gym with owner
// @Description  Creates the owner account and the gym in one step.
// @Tags         admin-gyms
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        request body gym.CreateGymRequest true "Gym and owner"
// @Success      201 {object} gym.Summary
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/gyms [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	g, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

// @Summary      Get gym
// @Tags         admin-gyms
// @Security     CookieAuth
// @Produce      json
// @Param        id  path     int true "Gym ID"
// @Success      200 {object} gym.Summary
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/gyms/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := api.ParamID(c, "id")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	g, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// @Summary      Update gym
// @Tags         admin-gyms
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        id      path int                  true "Gym ID"
// @Param        request body gym.UpdateGymRequest true "Fields to change"
// @Success      200 {object} gym.Summary
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/gyms/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := api.ParamID(c, "id")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	var req UpdateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	g, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// @Summary      Toggle gym active flag
// @Tags         admin-gyms
// @Security     CookieAuth
// @Produce      json
// @Param        id  path     int true "Gym ID"
// @Success      200 {object} gym.Summary
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/gyms/{id}/toggle [patch]
func (h *Handler) Toggle(c *gin.Context) {
	id, err := api.ParamID(c, "id")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	g, err := h.service.Toggle(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// @Summary      Delete gym
// @Description  Removes the gym, all of its tenant data and the owner account.
// @Tags         admin-gyms
// @Security     CookieAuth
// @Produce      json
// @Param        id  path     int true "Gym ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/gyms/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := api.ParamID(c, "id")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Gym deleted"})
}

// @Summary      Platform statistics
// @Tags         admin-gyms
// @Security     CookieAuth
// @Produce      json
// @Success      200 {object} gym.Stats
// @Router       /admin/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	st, err := h.service.Stats(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Gym settings
// @Tags         settings
// @Security     CookieAuth
// @Produce      json
// @Success      200 {object} gym.Gym
// @Failure      403 {object} api.ErrorResponse
// @Router       /dashboard/settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	gymID, err := auth.TenantID(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	g, err := h.service.GetSettings(c.Request.Context(), gymID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// @Summary      Update gym settings
// @Description  Profile and invoice settings of the caller's gym.
// @Tags         settings
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        request body gym.UpdateSettingsRequest true "Fields to change"
// @Success      200 {object} gym.Gym
// @Failure      400 {object} api.ErrorResponse
// @Router       /dashboard/settings [put]
func (h *Handler) UpdateSettings(c *gin.Context) {
	gymID, err := auth.TenantID(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	g, err := h.service.UpdateSettings(c.Request.Context(), gymID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}
