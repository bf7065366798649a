package handler

import (
	"errors"
	"fmt"
	"net/http"

	"travelplanner/internal/service"
	"travelplanner/internal/validation"

	"github.com/gin-gonic/gin"
)

type tripSummaryRequest struct {
	Origin         string   `json:"origin"`
	Destination    string   `json:"destination"`
	StartDate      string   `json:"startDate" validate:"required,dateformat"`
	EndDate        string   `json:"endDate" validate:"required,dateformat"`
	MaxFlightPrice *float64 `json:"maxFlightPrice"`
}

// TripSummary обработчик для POST /api/trip-summary: агрегированная сводка
// погоды, перелетов и достопримечательностей по направлению.
func (h *Handler) TripSummary(c *gin.Context) {
	var req tripSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Origin == "" || req.Destination == "" ||
		req.StartDate == "" || req.EndDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Missing required fields",
			"required": []string{"origin", "destination", "startDate", "endDate"},
		})
		return
	}
	if err := validation.ValidateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	summary, err := h.SummaryService.GetTripSummary(service.SummaryRequest{
		Origin:         req.Origin,
		Destination:    req.Destination,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		MaxFlightPrice: req.MaxFlightPrice,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOriginNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": fmt.Sprintf("Origin city %q not found in database", req.Origin),
			})
		case errors.Is(err, service.ErrDestinationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": fmt.Sprintf("Destination city %q not found in database", req.Destination),
			})
		default:
			h.internalError(c, "TripSummary", err)
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}
