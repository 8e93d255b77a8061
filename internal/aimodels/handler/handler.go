package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/aimodels"
	"github.com/cannahub/admin-console/internal/aimodels/dto"
	"github.com/cannahub/admin-console/internal/render"
	"github.com/cannahub/admin-console/pkg/logger"
)

type AIModelHandler struct {
	ctrl   aimodels.Controller
	logger logger.ZapLogger
}

func NewAIModelHandler(ctrl aimodels.Controller, log logger.ZapLogger) *AIModelHandler {
	return &AIModelHandler{ctrl: ctrl, logger: log}
}

func (h *AIModelHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/ai", h.page)
	rg.POST("/ai/tabs/:tab", h.selectTab)
	rg.POST("/ai/models/:name/actions/:action", h.apply)
	rg.POST("/ai/router/toggle", h.toggleRouter)
	rg.PUT("/ai/configuration", h.saveConfiguration)
}

func (h *AIModelHandler) page(c *gin.Context) {
	_ = h.ctrl.Load(c.Request.Context())
	render.State(c, h.ctrl.Snapshot())
}

func (h *AIModelHandler) selectTab(c *gin.Context) {
	if err := h.ctrl.SelectTab(c.Request.Context(), c.Param("tab")); err != nil {
		render.Err(c, err)
		return
	}
	render.State(c, h.ctrl.Snapshot())
}

func (h *AIModelHandler) apply(c *gin.Context) {
	act := action.Action(c.Param("action"))
	if err := h.ctrl.Apply(c.Request.Context(), c.Param("name"), act); err != nil {
		render.Err(c, err)
		return
	}
	render.State(c, h.ctrl.Snapshot())
}

func (h *AIModelHandler) toggleRouter(c *gin.Context) {
	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		render.BadRequest(c, "invalid payload")
		return
	}

	if err := h.ctrl.ToggleRouter(c.Request.Context(), body.Enabled); err != nil {
		render.Err(c, err)
		return
	}
	render.State(c, h.ctrl.Snapshot())
}

func (h *AIModelHandler) saveConfiguration(c *gin.Context) {
	var input dto.ConfigurationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		render.BadRequest(c, "invalid payload")
		return
	}

	if err := h.ctrl.SaveConfiguration(c.Request.Context(), &input); err != nil {
		render.Err(c, err)
		return
	}
	render.State(c, h.ctrl.Snapshot())
}
