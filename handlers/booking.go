package handlers

import (
	"net/http"
	"time"

	"hirafic/middleware"
	"hirafic/services/booking"
	"hirafic/utils"

	"github.com/gin-gonic/gin"
)

// Completion dates arrive in the front-end's ISO form, with a fallback
// to RFC3339.
var completionDateLayouts = []string{
	"2006-01-02T15:04:05.000Z",
	time.RFC3339,
	"2006-01-02",
}

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func parseCompletionDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, true
	}
	for _, layout := range completionDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CreateBookingHandler handles POST /bookings (and the legacy
// POST /book_artisan used by the original front-end).
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization", "code": 0})
		return
	}

	var input struct {
		ArtisanID      string `json:"artisan_id"`
		ArtisanEmail   string `json:"artisan_email"`
		Title          string `json:"title"`
		Details        string `json:"details"`
		CompletionDate string `json:"completion_date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	completionDate, ok := parseCompletionDate(input.CompletionDate)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid completion_date", "expected an ISO 8601 timestamp")
		return
	}

	created, err := h.Service.Create(c.Request.Context(), principal, booking.CreateInput{
		ArtisanID:      input.ArtisanID,
		ArtisanEmail:   input.ArtisanEmail,
		Title:          input.Title,
		Details:        input.Details,
		CompletionDate: completionDate,
	})
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListBookingsHandler handles GET /bookings for both roles.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization", "code": 0})
		return
	}
	page, ok := bindPageRequest(c)
	if !ok {
		return
	}

	result, err := h.Service.ListFor(c.Request.Context(), principal, page)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings":     result.Items,
		"current_page": result.CurrentPage,
		"total_pages":  result.TotalPages,
	})
}

// TransitionBookingHandler handles PUT /bookings with
// {booking_id, action}; only the owning artisan may act.
func (h *BookingHandler) TransitionBookingHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization", "code": 0})
		return
	}

	var input struct {
		BookingID string `json:"booking_id"`
		Action    string `json:"action"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.BookingID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "booking_id is required")
		return
	}

	updated, err := h.Service.Transition(c.Request.Context(), input.BookingID, principal.ID, input.Action)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// FileReportHandler handles POST /reports and the legacy query-param
// GET /report used by the original front-end.
func (h *BookingHandler) FileReportHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization", "code": 0})
		return
	}

	var bookingID, issue string
	if c.Request.Method == http.MethodGet {
		bookingID = c.Query("booking_id")
		issue = c.Query("issue")
	} else {
		var input struct {
			BookingID string `json:"booking_id"`
			Issue     string `json:"issue"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		bookingID, issue = input.BookingID, input.Issue
	}

	report, err := h.Service.FileReport(c.Request.Context(), bookingID, principal.ID, issue)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}
