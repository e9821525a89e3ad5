package payment

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

// @Summary      List payments
// @Tags         payments
// @Security     CookieAuth
// @Produce      json
// @Param        client_id query int    false "Only this client"
// @Param        start     query string false "From date (YYYY-MM-DD)"
// @Param        end       query string false "To date (YYYY-MM-DD)"
// @Success      200 {array}  payment.Payment
// @Failure      400 {object} api.ErrorResponse
// @Router       /dashboard/payments [get]
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
	if filter.Start, err = api.QueryDate(c, "start"); err != nil {
		api.RespondError(c, err)
		return
	}
	if filter.End, err = api.QueryDate(c, "end"); err != nil {
		api.RespondError(c, err)
		return
	}

	payments, err := h.service.List(c.Request.Context(), gymID, filter)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// @Summary      Record payment
// @Description  Stores the payment and adds the amount to the client's paid total.
// @Tags         payments
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        request body payment.CreatePaymentRequest true "Payment"
// @Success      201 {object} payment.Payment
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /dashboard/payments [post]
func (h *Handler) Create(c *gin.Context) {
	gymID, err := auth.TenantID(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	p, err := h.service.Create(c.Request.Context(), gymID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary      Delete payment
// @Tags         payments
// @Security     CookieAuth
// @Produce      json
// @Param        id  path     int true "Payment ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /dashboard/payments/{id} [delete]
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
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Payment deleted"})
}

// @Summary      Payment invoice
// @Tags         payments
// @Security     CookieAuth
// @Produce      json
// @Param        id  path     int true "Payment ID"
// @Success      200 {object} payment.Invoice
// @Failure      404 {object} api.ErrorResponse
// @Router       /dashboard/payments/{id}/invoice [get]
func (h *Handler) Invoice(c *gin.Context) {
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

	inv, err := h.service.Invoice(c.Request.Context(), gymID, id)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}
