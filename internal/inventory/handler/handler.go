package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cannahub/admin-console/internal/auth"
	"github.com/cannahub/admin-console/internal/inventory"
	"github.com/cannahub/admin-console/internal/inventory/dto"
	"github.com/cannahub/admin-console/internal/render"
	"github.com/cannahub/admin-console/pkg/logger"
)

type InventoryHandler struct {
	ctrl   inventory.Controller
	logger logger.ZapLogger
}

func NewInventoryHandler(ctrl inventory.Controller, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{ctrl: ctrl, logger: log}
}

func (h *InventoryHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/inventory", h.list)
	rg.PUT("/inventory/:id", h.update)
	rg.POST("/inventory/modal/open", h.openModal)
	rg.POST("/inventory/modal/close", h.closeModal)
}

func (h *InventoryHandler) list(c *gin.Context) {
	filters := dto.InventoryFilters{
		StoreID:     auth.GetStoreID(c.Request.Context()),
		StockStatus: c.Query("stock_status"),
		SearchQuery: c.Query("q"),
	}
	if err := h.ctrl.SetFilters(c.Request.Context(), filters); err != nil {
		render.Err(c, err)
		return
	}
	render.State(c, h.ctrl.Snapshot())
}

func (h *InventoryHandler) update(c *gin.Context) {
	var input dto.UpdateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		render.BadRequest(c, "invalid inventory payload")
		return
	}
	if err := h.ctrl.UpdateItem(c.Request.Context(), c.Param("id"), &input); err != nil {
		render.Err(c, err)
		return
	}
	render.State(c, h.ctrl.Snapshot())
}

func (h *InventoryHandler) openModal(c *gin.Context) {
	h.ctrl.OpenEditModal(c.Query("id"))
	render.State(c, h.ctrl.Snapshot())
}

func (h *InventoryHandler) closeModal(c *gin.Context) {
	h.ctrl.CloseEditModal()
	render.State(c, h.ctrl.Snapshot())
}
