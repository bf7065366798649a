package repository

import (
	"fmt"

	"travelplanner/internal/model"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// ExploreSource отдает аналитические подборки раздела Explore. Две
// реализации: поверх SQL-функций БД и поверх встроенных запросов.
// Выбор делается один раз при старте по наличию функций в схеме,
// а не перехватом ошибок на каждом вызове.
type ExploreSource interface {
	SunniestCities(startDate string, limit int) ([]model.SunnyCity, error)
	ColderCities(startDate string, minDelta float64, limit int) ([]model.ColdCity, error)
	CheapFlightsGoodWeather(p CheapFlightsParams) ([]model.FlightWeatherPick, error)
	MonthlyRouteAvg(monthStart string, limit int) ([]model.RouteMonthlyAvg, error)
}

// CheapFlightsParams — фильтры подборки дешевых перелетов в комфортную погоду.
type CheapFlightsParams struct {
	MaxPrice     float64
	MinComfortC  float64
	MaxComfortC  float64
	MaxAvgPrecip float64
	Limit        int
}

// NewExploreSource проверяет наличие SQL-функций подборок и возвращает
// соответствующую реализацию.
func NewExploreSource(db *sqlx.DB, log *zap.Logger) ExploreSource {
	var found bool
	err := db.Get(&found,
		"SELECT to_regprocedure('get_sunniest_cities(date, integer)') IS NOT NULL")
	if err == nil && found {
		log.Info("explore_source_selected", zap.String("source", "sql_functions"))
		return &procExploreSource{db: db}
	}
	log.Info("explore_source_selected", zap.String("source", "inline_queries"))
	return &inlineExploreSource{db: db}
}

// procExploreSource вызывает SQL-функции из migrations/003_explore_functions.sql.
// Функции возвращают строки напрямую, без сессионных переменных.
type procExploreSource struct {
	db *sqlx.DB
}

func (s *procExploreSource) SunniestCities(startDate string, limit int) ([]model.SunnyCity, error) {
	cities := []model.SunnyCity{}
	err := s.db.Select(&cities,
		"SELECT * FROM get_sunniest_cities($1::date, $2)", startDate, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении солнечных городов: %w", err)
	}
	return cities, nil
}

func (s *procExploreSource) ColderCities(startDate string, minDelta float64, limit int) ([]model.ColdCity, error) {
	cities := []model.ColdCity{}
	err := s.db.Select(&cities,
		"SELECT * FROM get_colder_cities($1::date, $2, $3)", startDate, minDelta, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении холодных городов: %w", err)
	}
	return cities, nil
}

func (s *procExploreSource) CheapFlightsGoodWeather(p CheapFlightsParams) ([]model.FlightWeatherPick, error) {
	picks := []model.FlightWeatherPick{}
	err := s.db.Select(&picks,
		"SELECT * FROM get_cheap_flights_good_weather($1, $2, $3, $4, $5)",
		p.MaxPrice, p.MinComfortC, p.MaxComfortC, p.MaxAvgPrecip, p.Limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подборки перелетов: %w", err)
	}
	return picks, nil
}

func (s *procExploreSource) MonthlyRouteAvg(monthStart string, limit int) ([]model.RouteMonthlyAvg, error) {
	routes := []model.RouteMonthlyAvg{}
	err := s.db.Select(&routes,
		"SELECT * FROM get_monthly_route_avg($1::date, $2)", monthStart, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении средних цен маршрутов: %w", err)
	}
	return routes, nil
}

// inlineExploreSource — запасной вариант для схемы без SQL-функций:
// те же подборки встроенными запросами.
type inlineExploreSource struct {
	db *sqlx.DB
}

func (s *inlineExploreSource) SunniestCities(startDate string, limit int) ([]model.SunnyCity, error) {
	cities := []model.SunnyCity{}
	err := s.db.Select(&cities, `
		SELECT
			l.location_id,
			l.name AS city,
			l.country,
			COUNT(*) AS days_with_data,
			SUM(CASE WHEN LOWER(w.conditions) LIKE '%clear%' OR LOWER(w.conditions) LIKE '%sun%' THEN 1 ELSE 0 END) AS clear_days,
			AVG(w.precip_mm)::float8 AS avg_rain_mm,
			AVG(w.max_temp_c)::float8 AS avg_high_c,
			AVG(w.min_temp_c)::float8 AS avg_low_c
		FROM weather_daily w
		JOIN location l ON l.location_id = w.location_id
		WHERE w.on_date BETWEEN $1::date AND $1::date + INTERVAL '6 days'
		GROUP BY l.location_id, l.name, l.country
		HAVING SUM(CASE WHEN LOWER(w.conditions) LIKE '%clear%' OR LOWER(w.conditions) LIKE '%sun%' THEN 1 ELSE 0 END) > 0
		ORDER BY clear_days DESC, avg_rain_mm ASC
		LIMIT $2`,
		startDate, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении солнечных городов: %w", err)
	}
	return cities, nil
}

func (s *inlineExploreSource) ColderCities(startDate string, minDelta float64, limit int) ([]model.ColdCity, error) {
	cities := []model.ColdCity{}
	err := s.db.Select(&cities, `
		WITH city_stats AS (
			SELECT
				l.location_id,
				l.name AS city,
				l.country,
				AVG(w.max_temp_c)::float8 AS city_avg_max
			FROM weather_daily w
			JOIN location l ON l.location_id = w.location_id
			WHERE w.on_date BETWEEN $1::date AND $1::date + INTERVAL '6 days'
			GROUP BY l.location_id, l.name, l.country
		),
		country_stats AS (
			SELECT country, AVG(city_avg_max)::float8 AS country_avg_max
			FROM city_stats
			GROUP BY country
		)
		SELECT
			c.location_id,
			c.city,
			c.country,
			c.city_avg_max,
			cs.country_avg_max,
			(cs.country_avg_max - c.city_avg_max) AS delta_c
		FROM city_stats c
		JOIN country_stats cs ON cs.country = c.country
		WHERE c.city_avg_max <= cs.country_avg_max - $2
		ORDER BY delta_c DESC
		LIMIT $3`,
		startDate, minDelta, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении холодных городов: %w", err)
	}
	return cities, nil
}

func (s *inlineExploreSource) CheapFlightsGoodWeather(p CheapFlightsParams) ([]model.FlightWeatherPick, error) {
	picks := []model.FlightWeatherPick{}
	err := s.db.Select(&picks, `
		WITH weather AS (
			SELECT
				l.location_id,
				l.name AS destination_city,
				l.country AS destination_country,
				AVG(w.max_temp_c)::float8 AS avg_high_c,
				AVG(w.precip_mm)::float8 AS avg_precip_mm,
				SUM(CASE WHEN LOWER(w.conditions) LIKE '%clear%' OR LOWER(w.conditions) LIKE '%sun%' THEN 1 ELSE 0 END) AS clear_days
			FROM weather_daily w
			JOIN location l ON l.location_id = w.location_id
			GROUP BY l.location_id, l.name, l.country
		),
		flights AS (
			SELECT
				f.flight_id,
				f.carrier_code,
				f.flight_number,
				f.price,
				f.currency,
				fo.location_id AS origin_id,
				fd.location_id AS dest_id
			FROM flight_option f
			JOIN flight_origin fo ON fo.flight_id = f.flight_id
			JOIN flight_destination fd ON fd.flight_id = f.flight_id
			WHERE f.price <= $1
		)
		SELECT
			fl.flight_id,
			fl.carrier_code,
			fl.flight_number,
			fl.price,
			fl.currency,
			lo.name AS origin_city,
			lo.country AS origin_country,
			wd.destination_city,
			wd.destination_country,
			wd.avg_high_c,
			wd.avg_precip_mm,
			wd.clear_days
		FROM flights fl
		JOIN weather wd ON wd.location_id = fl.dest_id
		JOIN location lo ON lo.location_id = fl.origin_id
		WHERE wd.avg_high_c BETWEEN $2 AND $3
		  AND wd.avg_precip_mm <= $4
		ORDER BY fl.price ASC
		LIMIT $5`,
		p.MaxPrice, p.MinComfortC, p.MaxComfortC, p.MaxAvgPrecip, p.Limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подборки перелетов: %w", err)
	}
	return picks, nil
}

func (s *inlineExploreSource) MonthlyRouteAvg(monthStart string, limit int) ([]model.RouteMonthlyAvg, error) {
	routes := []model.RouteMonthlyAvg{}
	err := s.db.Select(&routes, `
		SELECT
			l1.name AS origin_city,
			l2.name AS destination_city,
			EXTRACT(MONTH FROM f.depart_time)::int AS month,
			AVG(f.price)::float8 AS avg_price,
			COUNT(*) AS flights
		FROM flight_option f
		JOIN flight_origin fo ON fo.flight_id = f.flight_id
		JOIN flight_destination fd ON fd.flight_id = f.flight_id
		JOIN location l1 ON l1.location_id = fo.location_id
		JOIN location l2 ON l2.location_id = fd.location_id
		WHERE f.depart_time >= $1::date
		  AND f.depart_time < $1::date + INTERVAL '1 month'
		GROUP BY l1.name, l2.name, EXTRACT(MONTH FROM f.depart_time)
		ORDER BY avg_price ASC
		LIMIT $2`,
		monthStart, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении средних цен маршрутов: %w", err)
	}
	return routes, nil
}
