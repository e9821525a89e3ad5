package dashboard

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
	return &Handler{service: service}
}

// @Summary      Dashboard overview
// @Description  KPIs, six months of revenue, next-month projection, insights and the clients most at risk of not renewing.
// @Tags         dashboard
// @Security     CookieAuth
// @Produce      json
// @Success      200 {object} dashboard.Overview
// @Failure      403 {object} api.ErrorResponse
// @Router       /dashboard/overview [get]
func (h *Handler) Overview(c *gin.Context) {
	gymID, err := auth.TenantID(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	overview, err := h.service.Overview(c.Request.Context(), gymID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
