// README: Itinerary handler (one model round trip per request).
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripbrief/internal/modules/itinerary"
)

type ItineraryHandler struct {
	svc     *itinerary.Service
	timeout time.Duration
	log     *slog.Logger
}

func NewItineraryHandler(svc *itinerary.Service, timeout time.Duration, logger *slog.Logger) *ItineraryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ItineraryHandler{svc: svc, timeout: timeout, log: logger}
}

type itineraryReq struct {
	Destination string `json:"destination"`
}

// Get handles GET /api/itinerary?destination=...
func (h *ItineraryHandler) Get(c *gin.Context) {
	h.fetch(c, c.Query("destination"))
}

// Create handles POST /api/itinerary.
func (h *ItineraryHandler) Create(c *gin.Context) {
	var req itineraryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	h.fetch(c, req.Destination)
}

func (h *ItineraryHandler) fetch(c *gin.Context, destination string) {
	if strings.TrimSpace(destination) == "" {
		writeError(c, http.StatusBadRequest, "missing destination")
		return
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	record, err := h.svc.GetItinerary(ctx, destination)
	if err != nil {
		h.log.Warn("itinerary fetch failed",
			"destination", destination,
			"kind", itinerary.Cause(err).String(),
			"err", err)
		writeItineraryError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, record)
}
