// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripbrief/internal/modules/itinerary"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// itineraryStatus maps a fetch failure to an HTTP status.
// Upstream failures are 502; a provider call cut short by the request deadline is 504.
func itineraryStatus(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case itinerary.Cause(err) == itinerary.KindUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}

func writeItineraryError(c *gin.Context, err error) {
	status := itineraryStatus(err)
	if status == http.StatusInternalServerError {
		writeError(c, status, "internal error")
		return
	}
	writeJSON(c, status, errorResponse{Error: err.Error(), Kind: itinerary.Cause(err).String()})
}
