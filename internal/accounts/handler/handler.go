package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cannahub/admin-console/internal/accounts"
	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/render"
	"github.com/cannahub/admin-console/pkg/logger"
)

type AccountHandler struct {
	ctrl   accounts.Controller
	logger logger.ZapLogger
}

func NewAccountHandler(ctrl accounts.Controller, log logger.ZapLogger) *AccountHandler {
	return &AccountHandler{ctrl: ctrl, logger: log}
}

func (h *AccountHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/accounts/pending", h.list)
	rg.POST("/accounts/:id/actions/:action", h.review)
}

func (h *AccountHandler) list(c *gin.Context) {
	_ = h.ctrl.Load(c.Request.Context())
	render.State(c, h.ctrl.Snapshot())
}

func (h *AccountHandler) review(c *gin.Context) {
	var body struct {
		Notes string `json:"notes"`
	}
	_ = c.ShouldBindJSON(&body)

	act := action.Action(c.Param("action"))
	if err := h.ctrl.Review(c.Request.Context(), c.Param("id"), act, body.Notes); err != nil {
		render.Err(c, err)
		return
	}
	render.State(c, h.ctrl.Snapshot())
}
