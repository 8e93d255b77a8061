package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cannahub/admin-console/internal/render"
	"github.com/cannahub/admin-console/internal/voice"
	"github.com/cannahub/admin-console/internal/voice/dto"
	"github.com/cannahub/admin-console/pkg/logger"
)

type VoiceHandler struct {
	ctrl   voice.Controller
	logger logger.ZapLogger
}

func NewVoiceHandler(ctrl voice.Controller, log logger.ZapLogger) *VoiceHandler {
	return &VoiceHandler{ctrl: ctrl, logger: log}
}

func (h *VoiceHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/voice/providers", h.list)
	rg.POST("/voice/providers", h.create)
	rg.PUT("/voice/providers/:id", h.update)
	rg.DELETE("/voice/providers/:id", h.delete)
	rg.POST("/voice/synthesis/test", h.testSynthesis)
	rg.POST("/voice/editor/open", h.openEditor)
	rg.POST("/voice/editor/close", h.closeEditor)
}

func (h *VoiceHandler) list(c *gin.Context) {
	_ = h.ctrl.Load(c.Request.Context())
	render.State(c, h.ctrl.Snapshot())
}

func (h *VoiceHandler) create(c *gin.Context) {
	var input dto.ProviderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		render.BadRequest(c, "invalid voice payload")
		return
	}

	if err := h.ctrl.Create(c.Request.Context(), &input); err != nil {
		render.Err(c, err)
		return
	}
	render.Created(c, h.ctrl.Snapshot())
}

func (h *VoiceHandler) update(c *gin.Context) {
	var input dto.ProviderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		render.BadRequest(c, "invalid voice payload")
		return
	}

	if err := h.ctrl.Update(c.Request.Context(), c.Param("id"), &input); err != nil {
		render.Err(c, err)
		return
	}
	render.State(c, h.ctrl.Snapshot())
}

func (h *VoiceHandler) delete(c *gin.Context) {
	if err := h.ctrl.Delete(c.Request.Context(), c.Param("id")); err != nil {
		render.Err(c, err)
		return
	}
	render.State(c, h.ctrl.Snapshot())
}

func (h *VoiceHandler) testSynthesis(c *gin.Context) {
	var input dto.SynthesisInput
	if err := c.ShouldBindJSON(&input); err != nil {
		render.BadRequest(c, "invalid voice payload")
		return
	}

	if err := h.ctrl.TestSynthesis(c.Request.Context(), &input); err != nil {
		render.Err(c, err)
		return
	}
	render.State(c, h.ctrl.Snapshot())
}

func (h *VoiceHandler) openEditor(c *gin.Context) {
	var body struct {
		ProviderID string `json:"provider_id"`
	}
	_ = c.ShouldBindJSON(&body)
	h.ctrl.OpenEditor(body.ProviderID)
	render.State(c, h.ctrl.Snapshot())
}

func (h *VoiceHandler) closeEditor(c *gin.Context) {
	h.ctrl.CloseEditor()
	render.State(c, h.ctrl.Snapshot())
}
