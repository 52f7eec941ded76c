package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lumawallet/buyflow/logger"
)

// stateEventsSSEHandler streams every published buy state to the client
// as Server-Sent Events. The current state is delivered first.
func (httpSvc *HttpService) stateEventsSSEHandler(c echo.Context) error {
	if _, ok := c.Response().Writer.(http.Flusher); !ok {
		logger.Logger.Error().Msg("Streaming not supported: ResponseWriter does not implement http.Flusher")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Streaming not supported by server"})
	}

	c.Response().Header().Set("Content-Type", "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")
	c.Response().Header().Set("X-Accel-Buffering", "no")
	c.Response().Flush()

	states := httpSvc.processor.Subscribe()
	defer httpSvc.processor.Unsubscribe(states)

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case <-ticker.C:
			if _, err := c.Response().Write([]byte(": keepalive\n\n")); err != nil {
				return nil
			}
			c.Response().Flush()
		case state, ok := <-states:
			if !ok {
				return nil
			}
			data, err := json.Marshal(newStateResponse(state))
			if err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to marshal buy state for SSE")
				continue
			}
			if _, err := fmt.Fprintf(c.Response(), "event: state\ndata: %s\n\n", data); err != nil {
				return nil
			}
			c.Response().Flush()
		}
	}
}
