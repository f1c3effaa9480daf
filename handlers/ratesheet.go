package handlers

import (
	"net/http"

	"sweepstack/models"
	"sweepstack/services/rates"
	"sweepstack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateSheetHandler is the settings collaborator surface: read the current
// pricing snapshot, publish a new version.
type RateSheetHandler struct {
	Service rates.RateSheetService
}

func NewRateSheetHandler(svc rates.RateSheetService) *RateSheetHandler {
	return &RateSheetHandler{Service: svc}
}

// GetRateSheetHandler returns the current rate-sheet snapshot.
func (h *RateSheetHandler) GetRateSheetHandler(c *gin.Context) {
	sheet, err := h.Service.Current(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load rate sheet", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"rateSheet": sheet})
}

// PublishRateSheetHandler inserts the posted sheet as the next version.
// Existing versions are never edited in place, so in-flight pricing always
// sees a whole snapshot.
func (h *RateSheetHandler) PublishRateSheetHandler(c *gin.Context) {
	var sheet models.RateSheet
	if err := c.ShouldBindJSON(&sheet); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid rate sheet", err.Error())
		return
	}

	published, err := h.Service.Publish(c.Request.Context(), &sheet)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to publish rate sheet", err.Error())
		return
	}

	getLogger(c).Info("rate sheet published", zap.Int("version", published.Version))
	c.JSON(http.StatusCreated, gin.H{"rateSheet": published})
}
