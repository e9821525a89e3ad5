package trainer

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

// @Summary      List trainers
// @Tags         trainers
// @Security     CookieAuth
// @Produce      json
// @Success      200 {array} trainer.Trainer
// @Router       /dashboard/trainers [get]
func (h *Handler) List(c *gin.Context) {
	gymID, err := auth.TenantID(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	trainers, err := h.service.List(c.Request.Context(), gymID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainers)
}

// @Summary      Create trainer
// @Tags         trainers
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        request body trainer.CreateTrainerRequest true "Trainer"
// @Success      201 {object} trainer.Trainer
// @Failure      400 {object} api.ErrorResponse
// @Router       /dashboard/trainers [post]
func (h *Handler) Create(c *gin.Context) {
	gymID, err := auth.TenantID(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	t, err := h.service.Create(c.Request.Context(), gymID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// @Summary      Update trainer
// @Tags         trainers
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        id      path int                          true "Trainer ID"
// @Param        request body trainer.UpdateTrainerRequest true "Fields to change"
// @Success      200 {object} trainer.Trainer
// @Failure      404 {object} api.ErrorResponse
// @Router       /dashboard/trainers/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	gymID, err := auth.TenantID(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	id, err := api.ParamID(c, "id")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	var req UpdateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	t, err := h.service.Update(c.Request.Context(), gymID, id, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary      Delete trainer
// @Tags         trainers
// @Security     CookieAuth
// @Produce      json
// @Param        id  path     int true "Trainer ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /dashboard/trainers/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	gymID, err := auth.TenantID(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	id, err := api.ParamID(c, "id")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), gymID, id); err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Trainer deleted"})
}

// @Summary      Attendance for a day
// @Tags         attendance
// @Security     CookieAuth
// @Produce      json
// @Param        date query string false "YYYY-MM-DD, defaults to today"
// @Success      200 {array}  trainer.DayRow
// @Failure      400 {object} api.ErrorResponse
// @Router       /dashboard/attendance [get]
func (h *Handler) Day(c *gin.Context) {
	gymID, err := auth.TenantID(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	date, err := api.QueryDate(c, "date")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	rows, err := h.service.Day(c.Request.Context(), gymID, date)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary      Mark attendance
// @Description  One status per trainer per day; marking again overwrites it.
// @Tags         attendance
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        request body trainer.MarkAttendanceRequest true "Attendance"
// @Success      200 {object} trainer.Attendance
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /dashboard/attendance [post]
func (h *Handler) Mark(c *gin.Context) {
	gymID, err := auth.TenantID(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	a, err := h.service.Mark(c.Request.Context(), gymID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// @Summary      Monthly attendance summary
// @Tags         attendance
// @Security     CookieAuth
// @Produce      json
// @Param        month query string false "YYYY-MM, defaults to the current month"
// @Success      200 {array}  trainer.MonthSummary
// @Failure      400 {object} api.ErrorResponse
// @Router       /dashboard/attendance/summary [get]
func (h *Handler) Summary(c *gin.Context) {
	gymID, err := auth.TenantID(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	rows, err := h.service.Summary(c.Request.Context(), gymID, c.Query("month"))
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
