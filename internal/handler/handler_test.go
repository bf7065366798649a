package handler

import (
	"testing"

	"travelplanner/internal/metrics"
	"travelplanner/internal/repository"
	"travelplanner/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestHandler собирает полный Handler поверх sqlmock-базы, без Redis.
func newTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	db := sqlx.NewDb(mockDB, "sqlmock")

	log := zap.NewNop()
	m := metrics.New(prometheus.NewRegistry())

	userRepo := repository.NewUserRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	weatherRepo := repository.NewWeatherRepository(db)
	flightRepo := repository.NewFlightRepository(db)
	attractionRepo := repository.NewAttractionRepository(db)
	tripRepo := repository.NewTripRepository(db)

	h := NewHandler(
		service.NewAuthService(userRepo),
		service.NewSummaryService(locationRepo, weatherRepo, flightRepo, attractionRepo, nil, log),
		service.NewTripService(tripRepo),
		service.NewExploreService(repository.NewExploreSource(db, log)),
		log, m, false,
	)
	return h, mock
}
