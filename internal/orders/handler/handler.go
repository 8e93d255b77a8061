package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/auth"
	"github.com/cannahub/admin-console/internal/orders"
	"github.com/cannahub/admin-console/internal/orders/dto"
	"github.com/cannahub/admin-console/internal/render"
	"github.com/cannahub/admin-console/pkg/logger"
)

type OrderHandler struct {
	ctrl   orders.Controller
	logger logger.ZapLogger
}

func NewOrderHandler(ctrl orders.Controller, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{ctrl: ctrl, logger: log}
}

func (h *OrderHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/orders", h.list)
	rg.GET("/orders/:id", h.detail)
	rg.POST("/orders/:id/actions/:action", h.apply)
}

// list refreshes and returns the page state. Filters arrive as query params;
// setting them re-fetches, matching the dashboard's filter-change behavior.
func (h *OrderHandler) list(c *gin.Context) {
	filters := dto.OrderFilters{
		StoreID: auth.GetStoreID(c.Request.Context()),
		Status:  c.Query("status"),
	}
	if v := c.Query("start_date"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filters.StartDate = &t
		}
	}
	if v := c.Query("end_date"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filters.EndDate = &t
		}
	}

	// A load failure still returns 200: the error lives in the page state
	// and renders as an inline panel instead of failing the request.
	_ = h.ctrl.SetFilters(c.Request.Context(), filters)
	render.State(c, h.ctrl.Snapshot())
}

func (h *OrderHandler) detail(c *gin.Context) {
	if err := h.ctrl.Select(c.Request.Context(), c.Param("id")); err != nil {
		render.Err(c, err)
		return
	}
	render.State(c, h.ctrl.Snapshot())
}

func (h *OrderHandler) apply(c *gin.Context) {
	act := action.Action(c.Param("action"))
	if err := h.ctrl.Apply(c.Request.Context(), c.Param("id"), act); err != nil {
		render.Err(c, err)
		return
	}
	render.State(c, h.ctrl.Snapshot())
}
