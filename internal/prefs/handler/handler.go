package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cannahub/admin-console/internal/auth"
	"github.com/cannahub/admin-console/internal/prefs"
	"github.com/cannahub/admin-console/internal/render"
	"github.com/cannahub/admin-console/pkg/logger"
)

type PreferenceHandler struct {
	prefs  *prefs.Preferences
	logger logger.ZapLogger
}

func NewPreferenceHandler(p *prefs.Preferences, log logger.ZapLogger) *PreferenceHandler {
	return &PreferenceHandler{prefs: p, logger: log}
}

func (h *PreferenceHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/preferences/:name", h.get)
	rg.PUT("/preferences/:name", h.set)
}

func (h *PreferenceHandler) get(c *gin.Context) {
	op := auth.GetOperator(c.Request.Context())
	if op == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no operator in context"})
		return
	}

	var value json.RawMessage
	found, err := h.prefs.Get(c.Request.Context(), op.UserID, c.Param("name"), &value)
	if err != nil {
		h.logger.Error("preference read failed", zap.String("name", c.Param("name")), zap.Error(err))
		render.Err(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "value": value})
}

func (h *PreferenceHandler) set(c *gin.Context) {
	op := auth.GetOperator(c.Request.Context())
	if op == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no operator in context"})
		return
	}

	var value json.RawMessage
	if err := c.ShouldBindJSON(&value); err != nil {
		render.BadRequest(c, "invalid preference payload")
		return
	}

	if err := h.prefs.Set(c.Request.Context(), op.UserID, c.Param("name"), value); err != nil {
		h.logger.Error("preference write failed", zap.String("name", c.Param("name")), zap.Error(err))
		render.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "value": value})
}
