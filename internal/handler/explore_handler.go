package handler

import (
	"net/http"
	"regexp"
	"strconv"

	"travelplanner/internal/repository"

	"github.com/gin-gonic/gin"
)

var monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// SunnyCities обработчик для GET /api/explore/sunny-cities: самые солнечные
// города за неделю от startDate.
func (h *Handler) SunnyCities(c *gin.Context) {
	startDate := c.Query("startDate")
	if startDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate is required (YYYY-MM-DD)"})
		return
	}
	limit := queryInt(c, "limit", 10)

	cities, err := h.ExploreService.SunniestCities(startDate, limit)
	if err != nil {
		h.internalError(c, "SunnyCities", err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// ColdCities обработчик для GET /api/explore/cold-cities: города холоднее
// среднего по своей стране как минимум на minDelta градусов.
func (h *Handler) ColdCities(c *gin.Context) {
	startDate := c.Query("startDate")
	if startDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate is required (YYYY-MM-DD)"})
		return
	}
	limit := queryInt(c, "limit", 10)
	minDelta := queryFloat(c, "minDelta", 2)

	cities, err := h.ExploreService.ColderCities(startDate, minDelta, limit)
	if err != nil {
		h.internalError(c, "ColdCities", err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// CheapFlightsGoodWeather обработчик для GET /api/explore/cheap-flights-good-weather:
// недорогие перелеты в направления с комфортной погодой.
func (h *Handler) CheapFlightsGoodWeather(c *gin.Context) {
	params := repository.CheapFlightsParams{
		MaxPrice:     queryFloat(c, "maxPrice", 1000),
		MinComfortC:  queryFloat(c, "minTemp", 15),
		MaxComfortC:  queryFloat(c, "maxTemp", 28),
		MaxAvgPrecip: queryFloat(c, "maxPrecip", 3),
		Limit:        queryInt(c, "limit", 15),
	}

	picks, err := h.ExploreService.CheapFlightsGoodWeather(params)
	if err != nil {
		h.internalError(c, "CheapFlightsGoodWeather", err)
		return
	}
	c.JSON(http.StatusOK, picks)
}

// MonthlyRouteAvg обработчик для GET /api/explore/monthly-route-avg:
// средние цены маршрутов за календарный месяц (month=YYYY-MM).
func (h *Handler) MonthlyRouteAvg(c *gin.Context) {
	month := c.Query("month")
	if !monthRe.MatchString(month) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month is required (YYYY-MM)"})
		return
	}
	limit := queryInt(c, "limit", 20)

	routes, err := h.ExploreService.MonthlyRouteAvg(month+"-01", limit)
	if err != nil {
		h.internalError(c, "MonthlyRouteAvg", err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func queryFloat(c *gin.Context, name string, def float64) float64 {
	v, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil {
		return def
	}
	return v
}
