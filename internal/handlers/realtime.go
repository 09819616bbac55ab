package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/interiorswala/studio-backend/internal/logger"
	"github.com/interiorswala/studio-backend/internal/realtime"
)

type RealtimeHandler struct {
	log *logger.Logger
	hub *realtime.Hub
}

func NewRealtimeHandler(log *logger.Logger, hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{log: log.With("handler", "RealtimeHandler"), hub: hub}
}

func (rh *RealtimeHandler) Stream(c *gin.Context) {
	rh.hub.ServeWS(c.Writer, c.Request)
}
