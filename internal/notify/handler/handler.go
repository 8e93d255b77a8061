package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cannahub/admin-console/internal/notify"
)

type NotificationHandler struct {
	bus *notify.Bus
}

func NewNotificationHandler(bus *notify.Bus) *NotificationHandler {
	return &NotificationHandler{bus: bus}
}

func (h *NotificationHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/notifications", h.recent)
}

// recent returns the toasts still inside their display window.
func (h *NotificationHandler) recent(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.bus.Recent()})
}
