package client

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

// @Summary      List clients
// @Description  Clients of the caller's gym with days until expiry, balance and churn risk.
// @Tags         clients
// @Security     CookieAuth
// @Produce      json
// @Param        status query string false "active, expired or pending"
// @Param        search query string false "Matches name, phone or email"
// @Success      200 {array}  client.Row
// @Failure      400 {object} api.ErrorResponse
// @Router       /dashboard/clients [get]
func (h *Handler) List(c *gin.Context) {
	gymID, err := auth.TenantID(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	var filter ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		api.RespondBindError(c, err)
		return
	}

	rows, err := h.service.List(c.Request.Context(), gymID, filter)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary      Create client
// @Tags         clients
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        request body client.CreateClientRequest true "Client"
// @Success      201 {object} client.Row
// @Failure      400 {object} api.ErrorResponse
// @Router       /dashboard/clients [post]
func (h *Handler) Create(c *gin.Context) {
	gymID, err := auth.TenantID(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	row, err := h.service.Create(c.Request.Context(), gymID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

// @Summary      Get client
// @Tags         clients
// @Security     CookieAuth
// @Produce      json
// @Param        id  path     int true "Client ID"
// @Success      200 {object} client.Row
// @Failure      404 {object} api.ErrorResponse
// @Router       /dashboard/clients/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	gymID, id, ok := tenantAndID(c)
	if !ok {
		return
	}

	row, err := h.service.Get(c.Request.Context(), gymID, id)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// @Summary      Update client
// @Tags         clients
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        id      path int                        true "Client ID"
// @Param        request body client.UpdateClientRequest true "Fields to change"
// @Success      200 {object} client.Row
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /dashboard/clients/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	gymID, id, ok := tenantAndID(c)
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	row, err := h.service.Update(c.Request.Context(), gymID, id, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// @Summary      Delete client
// @Tags         clients
// @Security     CookieAuth
// @Produce      json
// @Param        id  path     int true "Client ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /dashboard/clients/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	gymID, id, ok := tenantAndID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), gymID, id); err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Client deleted"})
}

// @Summary      Send renewal reminder
// @Description  Texts an expired client over SMS or WhatsApp.
// @Tags         clients
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        id      path int                    true "Client ID"
// @Param        request body client.ReminderRequest true "Channel"
// @Success      200 {object} client.ReminderLog
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      503 {object} api.ErrorResponse
// @Router       /dashboard/clients/{id}/reminder [post]
func (h *Handler) SendReminder(c *gin.Context) {
	gymID, id, ok := tenantAndID(c)
	if !ok {
		return
	}

	var req ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	log, err := h.service.SendReminder(c.Request.Context(), gymID, id, req.Channel)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

// @Summary      Reminder history
// @Tags         clients
// @Security     CookieAuth
// @Produce      json
// @Param        id  path     int true "Client ID"
// @Success      200 {array}  client.ReminderLog
// @Failure      404 {object} api.ErrorResponse
// @Router       /dashboard/clients/{id}/reminders [get]
func (h *Handler) Reminders(c *gin.Context) {
	gymID, id, ok := tenantAndID(c)
	if !ok {
		return
	}

	logs, err := h.service.Reminders(c.Request.Context(), gymID, id)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func tenantAndID(c *gin.Context) (gymID, id int, ok bool) {
	gymID, err := auth.TenantID(c)
	if err == nil {
		id, err = api.ParamID(c, "id")
	}
	if err != nil {
		api.RespondError(c, err)
		return 0, 0, false
	}
	return gymID, id, true
}
