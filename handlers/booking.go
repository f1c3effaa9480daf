package handlers

import (
	"net/http"

	bookingRepo "sweepstack/database/repository/booking"
	"sweepstack/models"
	"sweepstack/services/booking"
	"sweepstack/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking core over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// respondServiceError maps domain error codes onto HTTP statuses. Claim
// conflicts and illegal transitions are 409s the client recovers from by
// refreshing; they are not server failures.
func respondServiceError(c *gin.Context, err error) {
	switch booking.CodeOf(err) {
	case booking.CodeValidation:
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
	case booking.CodeUnpricedService:
		utils.JSONError(c, http.StatusUnprocessableEntity, "service cannot be priced", err.Error())
	case booking.CodeInvalidTransition:
		utils.JSONError(c, http.StatusConflict, "invalid booking state", err.Error())
	case booking.CodeAlreadyClaimed:
		utils.JSONError(c, http.StatusConflict, "AlreadyClaimed", err.Error())
	case booking.CodeNotFound:
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}

// CreateBookingHandler creates a booking from a quoteable request, either
// as a DRAFT or confirmed straight into BOOKED with a payment method.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input struct {
		CustomerID     string                `json:"customerId" binding:"required"`
		BookingRequest models.BookingRequest `json:"bookingRequest" binding:"required"`
		Confirm        bool                  `json:"confirm"`
		PaymentMethod  string                `json:"paymentMethod" binding:"omitempty,oneof=card cash"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		CustomerID:    input.CustomerID,
		Request:       input.BookingRequest,
		Confirm:       input.Confirm,
		PaymentMethod: input.PaymentMethod,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": b})
}

// GetBookingHandler returns one booking by ID.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// ListBookingsHandler lists bookings filtered by cleaner, customer, and
// status. unclaimed=true serves the job board cleaners browse.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	f := bookingRepo.ListFilter{
		CustomerID: c.Query("customerId"),
		CleanerID:  c.Query("cleanerId"),
		Status:     models.BookingStatus(c.Query("status")),
		Unclaimed:  c.Query("unclaimed") == "true",
	}
	list, err := h.Service.ListBookings(c.Request.Context(), f)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list, "count": len(list)})
}

// UpdateBookingHandler handles reschedules and cancellation through a
// generic PATCH with an action field.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var input struct {
		Action    string `json:"action" binding:"required,oneof=reschedule cancel"`
		Date      string `json:"date"`
		StartTime string `json:"startTime"`
		Reprice   bool   `json:"reprice"`
		Reason    string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	var (
		b   *models.Booking
		err error
	)
	switch input.Action {
	case "reschedule":
		b, err = h.Service.Reschedule(c.Request.Context(), c.Param("id"), booking.RescheduleInput{
			Date:      input.Date,
			StartTime: input.StartTime,
			Reprice:   input.Reprice,
		})
	case "cancel":
		b, err = h.Service.Cancel(c.Request.Context(), c.Param("id"), input.Reason)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// ClaimBookingHandler assigns an unclaimed BOOKED job to the requesting
// cleaner. Losers of a race receive 409 AlreadyClaimed and should refresh
// the job list.
func (h *BookingHandler) ClaimBookingHandler(c *gin.Context) {
	var input struct {
		CleanerID string `json:"cleanerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Service.ClaimJob(c.Request.Context(), c.Param("id"), input.CleanerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// StartBookingHandler verifies the cleaner's arrival code and moves the
// booking to IN_PROGRESS.
func (h *BookingHandler) StartBookingHandler(c *gin.Context) {
	var input struct {
		CleanerID   string `json:"cleanerId" binding:"required"`
		ArrivalCode string `json:"arrivalCode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Service.StartJob(c.Request.Context(), c.Param("id"), input.CleanerID, input.ArrivalCode)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// CompleteBookingHandler takes the cleaner's checklist submission and
// closes the job.
func (h *BookingHandler) CompleteBookingHandler(c *gin.Context) {
	var input struct {
		CleanerID      string                 `json:"cleanerId" binding:"required"`
		Checklist      []models.ChecklistItem `json:"checklist"`
		EvidencePhotos int                    `json:"evidencePhotos"`
		Notes          string                 `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Service.CompleteJob(c.Request.Context(), booking.CompleteJobInput{
		BookingID:      c.Param("id"),
		CleanerID:      input.CleanerID,
		Checklist:      input.Checklist,
		EvidencePhotos: input.EvidencePhotos,
		Notes:          input.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}
