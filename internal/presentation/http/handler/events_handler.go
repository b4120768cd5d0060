package handler

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/Prathamesh404NotFound/Billing-System/internal/events"
	"github.com/gin-gonic/gin"
)

// keepAliveInterval is how often the SSE stream emits a comment line so
// proxies do not drop an idle connection.
const keepAliveInterval = 30 * time.Second

// EventsHandler streams entity change events over Server-Sent Events
type EventsHandler struct {
	bus *events.Bus
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(bus *events.Bus) *EventsHandler {
	return &EventsHandler{bus: bus}
}

// Stream subscribes the client to change events. An optional comma-separated
// "topics" query restricts the feed; no topics means everything.
func (h *EventsHandler) Stream(c *gin.Context) {
	var topics []string
	if raw := c.Query("topics"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				topics = append(topics, t)
			}
		}
	}

	ch, cancel := h.bus.Subscribe(topics...)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	clientGone := c.Request.Context().Done()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case evt, ok := <-ch:
			if !ok {
				return false
			}
			data, err := json.Marshal(evt)
			if err != nil {
				return true
			}
			c.SSEvent(evt.Topic, string(data))
			return true
		case <-keepAlive.C:
			w.Write([]byte(": keep-alive\n\n"))
			return true
		}
	})
}
