package repository

import (
	"fmt"

	"travelplanner/internal/model"

	"github.com/jmoiron/sqlx"
)

// WeatherRepository обеспечивает доступ к дневным сводкам погоды.
type WeatherRepository struct {
	db *sqlx.DB
}

// NewWeatherRepository создает новый репозиторий погоды.
func NewWeatherRepository(db *sqlx.DB) *WeatherRepository {
	return &WeatherRepository{db: db}
}

// DailyRange возвращает дневные сводки по локации за период
// [startDate, endDate] включительно, упорядоченные по дате.
func (r *WeatherRepository) DailyRange(locationID int, startDate, endDate string) ([]model.WeatherDaily, error) {
	days := []model.WeatherDaily{}
	err := r.db.Select(&days,
		`SELECT location_id, on_date, min_temp_c, max_temp_c, precip_mm, conditions
		 FROM weather_daily
		 WHERE location_id=$1 AND on_date BETWEEN $2 AND $3
		 ORDER BY on_date`,
		locationID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении погоды: %w", err)
	}
	return days, nil
}
