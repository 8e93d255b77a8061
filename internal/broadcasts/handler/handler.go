package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/broadcasts"
	"github.com/cannahub/admin-console/internal/broadcasts/dto"
	"github.com/cannahub/admin-console/internal/render"
	"github.com/cannahub/admin-console/pkg/logger"
)

type BroadcastHandler struct {
	ctrl   broadcasts.Controller
	logger logger.ZapLogger
}

func NewBroadcastHandler(ctrl broadcasts.Controller, log logger.ZapLogger) *BroadcastHandler {
	return &BroadcastHandler{ctrl: ctrl, logger: log}
}

func (h *BroadcastHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/broadcasts", h.list)
	rg.POST("/broadcasts", h.create)
	rg.PUT("/broadcasts/:id", h.update)
	rg.POST("/broadcasts/:id/actions/:action", h.apply)
	rg.POST("/broadcasts/wizard/open", h.openWizard)
	rg.POST("/broadcasts/wizard/close", h.closeWizard)
}

func (h *BroadcastHandler) list(c *gin.Context) {
	_ = h.ctrl.Load(c.Request.Context())
	render.State(c, h.ctrl.Snapshot())
}

func (h *BroadcastHandler) create(c *gin.Context) {
	var input dto.CreateBroadcastInput
	if err := c.ShouldBindJSON(&input); err != nil {
		render.BadRequest(c, "invalid broadcast payload")
		return
	}
	if err := h.ctrl.Create(c.Request.Context(), &input); err != nil {
		render.Err(c, err)
		return
	}
	render.Created(c, h.ctrl.Snapshot())
}

func (h *BroadcastHandler) update(c *gin.Context) {
	var input dto.UpdateBroadcastInput
	if err := c.ShouldBindJSON(&input); err != nil {
		render.BadRequest(c, "invalid broadcast payload")
		return
	}
	if err := h.ctrl.Update(c.Request.Context(), c.Param("id"), &input); err != nil {
		render.Err(c, err)
		return
	}
	render.State(c, h.ctrl.Snapshot())
}

func (h *BroadcastHandler) apply(c *gin.Context) {
	act := action.Action(c.Param("action"))
	if err := h.ctrl.Apply(c.Request.Context(), c.Param("id"), act); err != nil {
		render.Err(c, err)
		return
	}
	render.State(c, h.ctrl.Snapshot())
}

func (h *BroadcastHandler) openWizard(c *gin.Context) {
	h.ctrl.OpenWizard()
	render.State(c, h.ctrl.Snapshot())
}

func (h *BroadcastHandler) closeWizard(c *gin.Context) {
	h.ctrl.CloseWizard()
	render.State(c, h.ctrl.Snapshot())
}
