package report

import (
	"fmt"
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

// @Summary      Export a report
// @Description  Downloads clients, payments or trainer attendance as CSV or XLSX.
// @Tags         reports
// @Security     CookieAuth
// @Produce      text/csv
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        kind   path  string true  "clients, payments or attendance"
// @Param        format query string false "csv (default) or xlsx"
// @Param        start  query string false "From date (YYYY-MM-DD)"
// @Param        end    query string false "To date (YYYY-MM-DD)"
// @Success      200 {file} file
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /dashboard/reports/{kind} [get]
func (h *Handler) Export(c *gin.Context) {
	gymID, err := auth.TenantID(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	var q Query
	if err := c.ShouldBindQuery(&q); err != nil {
		api.RespondBindError(c, err)
		return
	}

	var r Range
	if r.Start, err = api.QueryDate(c, "start"); err != nil {
		api.RespondError(c, err)
		return
	}
	if r.End, err = api.QueryDate(c, "end"); err != nil {
		api.RespondError(c, err)
		return
	}

	export, err := h.service.Export(c.Request.Context(), gymID, c.Param("kind"), q.Format, r)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Body)
}
