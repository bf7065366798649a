package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"travelplanner/internal/repository"
	"travelplanner/internal/service"
	"travelplanner/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type attractionRef struct {
	ID int `json:"id"`
}

type createTripRequest struct {
	UserID      int           `json:"userId"`
	TripName    string        `json:"tripName"`
	Origin      *string       `json:"origin"`
	Destination *string       `json:"destination"`
	StartDate   *string       `json:"startDate" validate:"omitempty,dateformat"`
	EndDate     *string       `json:"endDate" validate:"omitempty,dateformat"`
	Attraction  attractionRef `json:"attraction"`
	VisitDate   *string       `json:"visitDate" validate:"omitempty,dateformat"`
	StartTime   *string       `json:"startTime" validate:"omitempty,timeformat"`
	EndTime     *string       `json:"endTime" validate:"omitempty,timeformat"`
	Notes       *string       `json:"notes"`
}

// CreateTrip обработчик для POST /api/trips: атомарно создает поездку
// с первым пунктом маршрута.
func (h *Handler) CreateTrip(c *gin.Context) {
	var req createTripRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 || req.TripName == "" || req.Attraction.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Missing required fields",
			"required": []string{"userId", "tripName", "attraction.id"},
		})
		return
	}
	if err := validation.ValidateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or time format"})
		return
	}

	tripID, itemID, err := h.TripService.CreateTripWithFirstItem(service.CreateTripInput{
		UserID:       req.UserID,
		TripName:     req.TripName,
		Origin:       req.Origin,
		Destination:  req.Destination,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		AttractionID: req.Attraction.ID,
		VisitDate:    req.VisitDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Notes:        req.Notes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAttractionNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Attraction does not exist"})
			return
		}
		h.internalError(c, "CreateTrip", err)
		return
	}

	h.log.Info("trip_created",
		zap.Int("trip_id", tripID),
		zap.Int("item_id", itemID),
		zap.Int("user_id", req.UserID),
	)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tripId":  tripID,
		"itemId":  itemID,
	})
}

type addItemRequest struct {
	Attraction attractionRef `json:"attraction"`
	VisitDate  *string       `json:"visitDate" validate:"omitempty,dateformat"`
	StartTime  *string       `json:"startTime" validate:"omitempty,timeformat"`
	EndTime    *string       `json:"endTime" validate:"omitempty,timeformat"`
	Notes      *string       `json:"notes"`
}

// AddItineraryItem обработчик для POST /api/trips/:tripId/itinerary:
// добавляет пункт в существующую поездку.
func (h *Handler) AddItineraryItem(c *gin.Context) {
	tripID, err := strconv.Atoi(c.Param("tripId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip id"})
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Attraction.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Missing required fields",
			"required": []string{"attraction.id"},
		})
		return
	}
	if err := validation.ValidateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or time format"})
		return
	}

	itemID, err := h.TripService.AddItineraryItem(service.AddItemInput{
		TripID:       tripID,
		AttractionID: req.Attraction.ID,
		VisitDate:    req.VisitDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Notes:        req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTripNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip does not exist"})
		case errors.Is(err, repository.ErrDuplicateAttraction):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Attraction already in itinerary"})
		case errors.Is(err, repository.ErrAttractionNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Attraction does not exist"})
		default:
			h.internalError(c, "AddItineraryItem", err)
		}
		return
	}

	h.log.Info("itinerary_item_added",
		zap.Int("trip_id", tripID),
		zap.Int("item_id", itemID),
	)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tripId":  tripID,
		"itemId":  itemID,
	})
}

type tripListItem struct {
	TripID         int       `json:"tripId"`
	TripName       string    `json:"tripName"`
	Origin         *string   `json:"origin"`
	Destination    *string   `json:"destination"`
	StartDate      *string   `json:"startDate"`
	EndDate        *string   `json:"endDate"`
	CreatedAt      time.Time `json:"createdAt"`
	LastModified   time.Time `json:"lastModified"`
	ItineraryCount int       `json:"itineraryCount"`
	Categories     string    `json:"categories"`
}

// GetUserTrips обработчик для GET /api/trips/user/:userId: список поездок
// пользователя. Для пользователя без поездок — пустой список, не ошибка.
func (h *Handler) GetUserTrips(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	trips, err := h.TripService.GetUserTrips(userID)
	if err != nil {
		h.internalError(c, "GetUserTrips", err)
		return
	}

	items := make([]tripListItem, 0, len(trips))
	for _, t := range trips {
		items = append(items, tripListItem{
			TripID:         t.ID,
			TripName:       t.Title,
			Origin:         t.Origin,
			Destination:    t.Destination,
			StartDate:      fmtDate(t.StartDate),
			EndDate:        fmtDate(t.EndDate),
			CreatedAt:      t.CreatedAt,
			LastModified:   t.LastModified,
			ItineraryCount: t.ItemCount,
			Categories:     t.Categories,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"userId": userID,
		"trips":  items,
	})
}

type itineraryEntry struct {
	ItemID     int     `json:"itemId"`
	VisitDate  *string `json:"visitDate"`
	StartTime  *string `json:"startTime"`
	EndTime    *string `json:"endTime"`
	Notes      *string `json:"notes"`
	SortOrder  int     `json:"sortOrder"`
	Attraction struct {
		ID       int      `json:"id"`
		Name     string   `json:"name"`
		Category string   `json:"category"`
		Rating   *float64 `json:"rating"`
		City     string   `json:"city"`
		Country  string   `json:"country"`
	} `json:"attraction"`
}

// GetTripWithItinerary обработчик для GET /api/trips/:tripId: поездка
// вместе с маршрутом, согласованные между собой (REPEATABLE READ).
func (h *Handler) GetTripWithItinerary(c *gin.Context) {
	tripID, err := strconv.Atoi(c.Param("tripId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip id"})
		return
	}

	trip, rows, err := h.TripService.GetTripWithItinerary(tripID)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		h.internalError(c, "GetTripWithItinerary", err)
		return
	}

	itinerary := make([]itineraryEntry, 0, len(rows))
	for _, item := range rows {
		e := itineraryEntry{
			ItemID:    item.ItemID,
			VisitDate: fmtDate(item.VisitDate),
			StartTime: item.StartTime,
			EndTime:   item.EndTime,
			Notes:     item.Notes,
			SortOrder: item.SortOrder,
		}
		e.Attraction.ID = item.AttractionID
		e.Attraction.Name = item.AttractionName
		e.Attraction.Category = item.Category
		e.Attraction.Rating = item.Rating
		e.Attraction.City = item.City
		e.Attraction.Country = item.Country
		itinerary = append(itinerary, e)
	}

	c.JSON(http.StatusOK, gin.H{
		"trip": gin.H{
			"tripId":      trip.ID,
			"tripName":    trip.Title,
			"origin":      trip.Origin,
			"destination": trip.Destination,
			"startDate":   fmtDate(trip.StartDate),
			"endDate":     fmtDate(trip.EndDate),
			"budget":      trip.Budget,
			"currency":    trip.Currency,
			"itemCount":   trip.ItemCount,
			"user": gin.H{
				"userId": trip.UserID,
				"name":   trip.UserName,
				"email":  trip.UserEmail,
			},
		},
		"itinerary": itinerary,
	})
}

type updateItemRequest struct {
	VisitDate *string `json:"visitDate" validate:"omitempty,dateformat"`
	StartTime *string `json:"startTime" validate:"omitempty,timeformat"`
	EndTime   *string `json:"endTime" validate:"omitempty,timeformat"`
	Notes     *string `json:"notes"`
}

// UpdateItineraryItem обработчик для PUT /api/trips/:tripId/itinerary/:itemId:
// частичное обновление, nil-поля сохраняют прежние значения.
func (h *Handler) UpdateItineraryItem(c *gin.Context) {
	tripID, itemID, ok := tripItemParams(c)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validation.ValidateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or time format"})
		return
	}

	err := h.TripService.UpdateItineraryItem(tripID, itemID, repository.UpdateItemParams{
		VisitDate: req.VisitDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary item not found"})
			return
		}
		h.internalError(c, "UpdateItineraryItem", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Itinerary item updated"})
}

// RemoveItineraryItem обработчик для DELETE /api/trips/:tripId/itinerary/:itemId.
// Счетчик пунктов поездки уменьшает триггер БД.
func (h *Handler) RemoveItineraryItem(c *gin.Context) {
	tripID, itemID, ok := tripItemParams(c)
	if !ok {
		return
	}

	if err := h.TripService.RemoveItineraryItem(tripID, itemID); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary item not found"})
			return
		}
		h.internalError(c, "RemoveItineraryItem", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Itinerary item removed"})
}

// DeleteTrip обработчик для DELETE /api/trips/:tripId: удаляет поездку,
// пункты маршрута удаляются каскадно.
func (h *Handler) DeleteTrip(c *gin.Context) {
	tripID, err := strconv.Atoi(c.Param("tripId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip id"})
		return
	}

	if err := h.TripService.DeleteTrip(tripID); err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		h.internalError(c, "DeleteTrip", err)
		return
	}

	h.log.Info("trip_deleted", zap.Int("trip_id", tripID))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Trip deleted"})
}

func tripItemParams(c *gin.Context) (tripID, itemID int, ok bool) {
	tripID, err := strconv.Atoi(c.Param("tripId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip id"})
		return 0, 0, false
	}
	itemID, err = strconv.Atoi(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return 0, 0, false
	}
	return tripID, itemID, true
}

// fmtDate форматирует дату в YYYY-MM-DD; nil остается nil.
func fmtDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
