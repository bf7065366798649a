package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

const resolveLocationQuery = "SELECT location_id, name, country, lat, lon FROM location WHERE name ILIKE $1 LIMIT 1"

func sampleDate(day int) time.Time {
	return time.Date(2025, 6, day, 9, 0, 0, 0, time.UTC)
}

func postSummary(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/trip-summary", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTripSummaryMissingFields(t *testing.T) {
	h, _ := newTestHandler(t)
	router := gin.New()
	router.POST("/api/trip-summary", h.TripSummary)

	w := postSummary(router, `{"origin":"Seoul"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("статус %d, ожидается 400", w.Code)
	}
}

func TestTripSummaryBadDateFormat(t *testing.T) {
	h, _ := newTestHandler(t)
	router := gin.New()
	router.POST("/api/trip-summary", h.TripSummary)

	w := postSummary(router,
		`{"origin":"Seoul","destination":"Tokyo","startDate":"06/01/2025","endDate":"2025-06-07"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("статус %d, ожидается 400", w.Code)
	}
}

func TestTripSummaryOriginNotFound(t *testing.T) {
	h, mock := newTestHandler(t)
	router := gin.New()
	router.POST("/api/trip-summary", h.TripSummary)

	mock.ExpectQuery(regexp.QuoteMeta(resolveLocationQuery)).
		WithArgs("%Atlantis%").
		WillReturnRows(sqlmock.NewRows([]string{"location_id", "name", "country", "lat", "lon"}))

	w := postSummary(router,
		`{"origin":"Atlantis","destination":"Tokyo","startDate":"2025-06-01","endDate":"2025-06-07"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("статус %d, тело %s", w.Code, w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("ответ не JSON: %v", err)
	}
	if !strings.Contains(body["error"], "Atlantis") {
		t.Errorf("сообщение должно называть город: %q", body["error"])
	}
}

// Полный happy-path: разрешение городов, погода, перелеты и
// достопримечательности собираются в один ответ.
func TestTripSummaryAggregates(t *testing.T) {
	h, mock := newTestHandler(t)
	router := gin.New()
	router.POST("/api/trip-summary", h.TripSummary)

	locCols := []string{"location_id", "name", "country", "lat", "lon"}
	mock.ExpectQuery(regexp.QuoteMeta(resolveLocationQuery)).
		WithArgs("%Seoul%").
		WillReturnRows(sqlmock.NewRows(locCols).AddRow(1, "Seoul", "South Korea", 37.57, 126.98))
	mock.ExpectQuery(regexp.QuoteMeta(resolveLocationQuery)).
		WithArgs("%Tokyo%").
		WillReturnRows(sqlmock.NewRows(locCols).AddRow(2, "Tokyo", "Japan", 35.68, 139.69))

	mock.ExpectQuery("FROM weather_daily").
		WithArgs(2, "2025-06-01", "2025-06-03").
		WillReturnRows(sqlmock.NewRows([]string{"location_id", "on_date", "min_temp_c", "max_temp_c", "precip_mm", "conditions"}).
			AddRow(2, sampleDate(1), 20.0, 30.0, 0.0, "Clear").
			AddRow(2, sampleDate(2), 18.0, 28.0, 1.0, "Clear").
			AddRow(2, sampleDate(3), 15.0, 25.0, 10.0, "Rain"))

	mock.ExpectQuery("FROM flight_option").
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{
			"flight_id", "carrier_code", "flight_number", "price", "currency",
			"depart_time", "arrive_time", "origin_city", "destination_city",
		}).AddRow(5, "KE", "KE703", 250.0, "USD", sampleDate(1), sampleDate(1), "Seoul", "Tokyo"))

	mock.ExpectQuery("FROM attraction").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "rating", "lat", "lon", "avg_busyness"}).
			AddRow(55, "Senso-ji", "temple", 4.5, 35.71, 139.79, 62.4).
			AddRow(56, "Skytree", "viewpoint", nil, 35.71, 139.81, nil))

	w := postSummary(router,
		`{"origin":"Seoul","destination":"Tokyo","startDate":"2025-06-01","endDate":"2025-06-03"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("статус %d, тело %s", w.Code, w.Body.String())
	}

	var body struct {
		Location struct {
			Name    string `json:"name"`
			Country string `json:"country"`
		} `json:"location"`
		WeatherSummary struct {
			AvgHigh           *float64 `json:"avgHigh"`
			AvgLow            *float64 `json:"avgLow"`
			AvgPrecip         *float64 `json:"avgPrecip"`
			ConditionsSummary string   `json:"conditionsSummary"`
		} `json:"weatherSummary"`
		WeatherDaily []struct {
			Date string `json:"date"`
		} `json:"weatherDaily"`
		Flights []struct {
			FlightID int     `json:"flightId"`
			Price    float64 `json:"price"`
		} `json:"flights"`
		Attractions []struct {
			ID            int  `json:"id"`
			BusynessIndex *int `json:"busynessIndex"`
		} `json:"attractions"`
		BestTimeToVisit struct {
			Explanation string `json:"explanation"`
		} `json:"bestTimeToVisit"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("ответ не JSON: %v", err)
	}

	if body.Location.Name != "Tokyo" || body.Location.Country != "Japan" {
		t.Errorf("location = %+v", body.Location)
	}
	if body.WeatherSummary.AvgHigh == nil || *body.WeatherSummary.AvgHigh != 27.7 {
		t.Errorf("avgHigh = %v, ожидается 27.7", body.WeatherSummary.AvgHigh)
	}
	if body.WeatherSummary.ConditionsSummary != "Mostly clear skies" {
		t.Errorf("conditionsSummary = %q", body.WeatherSummary.ConditionsSummary)
	}
	if len(body.WeatherDaily) != 3 || body.WeatherDaily[0].Date != "2025-06-01" {
		t.Errorf("weatherDaily = %+v", body.WeatherDaily)
	}
	if len(body.Flights) != 1 || body.Flights[0].Price != 250 {
		t.Errorf("flights = %+v", body.Flights)
	}
	if len(body.Attractions) != 2 {
		t.Fatalf("attractions = %+v", body.Attractions)
	}
	if body.Attractions[0].BusynessIndex == nil || *body.Attractions[0].BusynessIndex != 62 {
		t.Errorf("busynessIndex = %v, ожидается 62", body.Attractions[0].BusynessIndex)
	}
	if body.Attractions[1].BusynessIndex != nil {
		t.Errorf("без замеров busynessIndex должен быть nil")
	}
	if body.BestTimeToVisit.Explanation != "Mostly clear skies" {
		t.Errorf("explanation = %q", body.BestTimeToVisit.Explanation)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
