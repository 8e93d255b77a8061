package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cannahub/admin-console/internal/auth"
	"github.com/cannahub/admin-console/internal/products"
	"github.com/cannahub/admin-console/internal/products/dto"
	"github.com/cannahub/admin-console/internal/render"
	"github.com/cannahub/admin-console/pkg/logger"
)

type ProductHandler struct {
	ctrl   products.Controller
	logger logger.ZapLogger
}

func NewProductHandler(ctrl products.Controller, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{ctrl: ctrl, logger: log}
}

func (h *ProductHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/products", h.list)
	rg.POST("/products", h.create)
	rg.PUT("/products/:id", h.update)
	rg.DELETE("/products/:id", h.remove)
	rg.POST("/products/modal/open", h.openModal)
	rg.POST("/products/modal/close", h.closeModal)
}

func (h *ProductHandler) list(c *gin.Context) {
	filters := dto.ProductFilters{
		StoreID:     auth.GetStoreID(c.Request.Context()),
		Category:    c.Query("category"),
		StrainType:  c.Query("strain_type"),
		SearchQuery: c.Query("q"),
	}
	if v := c.Query("is_active"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filters.IsActive = &b
		}
	}

	if err := h.ctrl.SetFilters(c.Request.Context(), filters); err != nil {
		render.Err(c, err)
		return
	}
	render.State(c, h.ctrl.Snapshot())
}

func (h *ProductHandler) create(c *gin.Context) {
	var input dto.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		render.BadRequest(c, "invalid product payload")
		return
	}
	if err := h.ctrl.Create(c.Request.Context(), &input); err != nil {
		render.Err(c, err)
		return
	}
	render.Created(c, h.ctrl.Snapshot())
}

func (h *ProductHandler) update(c *gin.Context) {
	var input dto.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		render.BadRequest(c, "invalid product payload")
		return
	}
	if err := h.ctrl.Update(c.Request.Context(), c.Param("id"), &input); err != nil {
		render.Err(c, err)
		return
	}
	render.State(c, h.ctrl.Snapshot())
}

func (h *ProductHandler) remove(c *gin.Context) {
	if err := h.ctrl.Delete(c.Request.Context(), c.Param("id")); err != nil {
		render.Err(c, err)
		return
	}
	render.State(c, h.ctrl.Snapshot())
}

func (h *ProductHandler) openModal(c *gin.Context) {
	h.ctrl.OpenModal(c.Query("id"))
	render.State(c, h.ctrl.Snapshot())
}

func (h *ProductHandler) closeModal(c *gin.Context) {
	h.ctrl.CloseModal()
	render.State(c, h.ctrl.Snapshot())
}
