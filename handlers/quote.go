package handlers

import (
	"net/http"

	"sweepstack/models"
	"sweepstack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler prices a booking request without persisting anything. An
// unpriced quote is still returned, flagged, so the client can decide
// whether to block checkout.
func (h *BookingHandler) QuoteHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
		return
	}

	quote, err := h.Service.Quote(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	getLogger(c).Debug("quote computed",
		zap.Float64("total", quote.Price.Total),
		zap.Int("crew", quote.Duration.CrewSize))
	c.JSON(http.StatusOK, quote)
}
