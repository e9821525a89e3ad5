package plan

import (
	"net/http"

	"fitdesk/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary      List subscription plans
// @Tags         admin-plans
// @Security     CookieAuth
// @Produce      json
// @Success      200  {array}   Plan
// @Failure      403  {object}  api.ErrorResponse
// @Router       /admin/plans [get]
func (h *Handler) List(c *gin.Context) {
	plans, err := h.service.List(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// Create godoc
// @Summary      Create subscription plan
// @Tags         admin-plans
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreatePlanRequest  true  "Plan"
// @Success      201      {object}  Plan
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /admin/plans [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Get godoc
// @Summary      Get subscription plan
// @Tags         admin-plans
// @Security     CookieAuth
// @Produce      json
// @Param        id   path      int  true  "Plan ID"
// @Success      200  {object}  Plan
// @Failure      404  {object}  api.ErrorResponse
// @Router       /admin/plans/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := api.ParamID(c, "id")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update godoc
// @Summary      Update subscription plan
// @Tags         admin-plans
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                true  "Plan ID"
// @Param        request  body      UpdatePlanRequest  true  "Fields to change"
// @Success      200      {object}  Plan
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/plans/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := api.ParamID(c, "id")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete godoc
// @Summary      Delete subscription plan
// @Description  Fails with 409 while any gym is on the plan.
// @Tags         admin-plans
// @Security     CookieAuth
// @Produce      json
// @Param        id   path      int  true  "Plan ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /admin/plans/{id} [delete]
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
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Plan deleted"})
}
