package handlers

import (
	"github.com/gin-gonic/gin"
	"interior-studio-backend/internal/realtime"
)

type EventsHandler struct {
	hub *realtime.Hub
}

func NewEventsHandler(hub *realtime.Hub) *EventsHandler {
	return &EventsHandler{
		hub: hub,
	}
}

// Stream godoc
// @Summary     Lifecycle event stream
// @Description Websocket stream of layout, render, material and settings events.
// @Tags        events
// @Success     101
// @Router      /api/events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	h.hub.ServeHTTP(c.Writer, c.Request)
}
