package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/render"
	"github.com/cannahub/admin-console/internal/stores"
	"github.com/cannahub/admin-console/internal/stores/dto"
	"github.com/cannahub/admin-console/pkg/logger"
)

type StoreHandler struct {
	ctrl   stores.Controller
	logger logger.ZapLogger
}

func NewStoreHandler(ctrl stores.Controller, log logger.ZapLogger) *StoreHandler {
	return &StoreHandler{ctrl: ctrl, logger: log}
}

func (h *StoreHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/stores", h.list)
	rg.POST("/stores", h.create)
	rg.PUT("/stores/:id", h.update)
	rg.POST("/stores/:id/actions/:action", h.apply)
	rg.POST("/stores/:id/features", h.toggleFeature)
	rg.POST("/stores/modal/open", h.openModal)
	rg.POST("/stores/modal/close", h.closeModal)
}

func (h *StoreHandler) list(c *gin.Context) {
	_ = h.ctrl.Load(c.Request.Context())
	render.State(c, h.ctrl.Snapshot())
}

func (h *StoreHandler) create(c *gin.Context) {
	var input dto.CreateStoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		render.BadRequest(c, "invalid store payload")
		return
	}
	if err := h.ctrl.Create(c.Request.Context(), &input); err != nil {
		render.Err(c, err)
		return
	}
	render.Created(c, h.ctrl.Snapshot())
}

func (h *StoreHandler) update(c *gin.Context) {
	var input dto.UpdateStoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		render.BadRequest(c, "invalid store payload")
		return
	}
	if err := h.ctrl.Update(c.Request.Context(), c.Param("id"), &input); err != nil {
		render.Err(c, err)
		return
	}
	render.State(c, h.ctrl.Snapshot())
}

func (h *StoreHandler) apply(c *gin.Context) {
	act := action.Action(c.Param("action"))
	if err := h.ctrl.Apply(c.Request.Context(), c.Param("id"), act); err != nil {
		render.Err(c, err)
		return
	}
	render.State(c, h.ctrl.Snapshot())
}

func (h *StoreHandler) toggleFeature(c *gin.Context) {
	var body struct {
		Flag    string `json:"flag"`
		Enabled bool   `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Flag == "" {
		render.BadRequest(c, "invalid feature flag payload")
		return
	}
	if err := h.ctrl.ToggleFeature(c.Request.Context(), c.Param("id"), body.Flag, body.Enabled); err != nil {
		render.Err(c, err)
		return
	}
	render.State(c, h.ctrl.Snapshot())
}

func (h *StoreHandler) openModal(c *gin.Context) {
	h.ctrl.OpenModal(c.Query("id"))
	render.State(c, h.ctrl.Snapshot())
}

func (h *StoreHandler) closeModal(c *gin.Context) {
	h.ctrl.CloseModal()
	render.State(c, h.ctrl.Snapshot())
}
