package service

import (
	"database/sql"
	"fmt"
	"math"
	"strings"
	"time"

	"travelplanner/internal/cache"
	"travelplanner/internal/model"
	"travelplanner/internal/repository"

	"go.uber.org/zap"
)

const summaryCacheTTL = 10 * time.Minute

// SummaryRequest — параметры запроса сводки поездки. Даты в формате
// YYYY-MM-DD, MaxFlightPrice nil означает без ограничения по цене.
type SummaryRequest struct {
	Origin         string
	Destination    string
	StartDate      string
	EndDate        string
	MaxFlightPrice *float64
}

// SummaryService собирает сводку поездки: погоду, перелеты и
// достопримечательности по направлению. Только чтение; результат —
// детерминированная функция содержимого таблиц и параметров запроса.
type SummaryService struct {
	locationRepo   *repository.LocationRepository
	weatherRepo    *repository.WeatherRepository
	flightRepo     *repository.FlightRepository
	attractionRepo *repository.AttractionRepository
	cache          *cache.Cache // nil, если Redis недоступен
	log            *zap.Logger
}

// NewSummaryService создает новый сервис сводок.
func NewSummaryService(
	locationRepo *repository.LocationRepository,
	weatherRepo *repository.WeatherRepository,
	flightRepo *repository.FlightRepository,
	attractionRepo *repository.AttractionRepository,
	c *cache.Cache,
	log *zap.Logger,
) *SummaryService {
	return &SummaryService{
		locationRepo:   locationRepo,
		weatherRepo:    weatherRepo,
		flightRepo:     flightRepo,
		attractionRepo: attractionRepo,
		cache:          c,
		log:            log,
	}
}

// GetTripSummary выполняет полный цикл: разрешение направлений, погода за
// период, перелеты, достопримечательности и рекомендация по времени поездки.
// Справочные данные меняются редко, поэтому готовый ответ кэшируется.
func (s *SummaryService) GetTripSummary(req SummaryRequest) (*model.TripSummary, error) {
	key := summaryCacheKey(req)
	if s.cache != nil {
		var cached model.TripSummary
		if err := s.cache.Get(key, &cached); err == nil {
			s.log.Debug("summary_cache_hit", zap.String("key", key))
			return &cached, nil
		}
	}

	origin, err := s.locationRepo.ResolveByName(req.Origin)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrOriginNotFound
		}
		return nil, fmt.Errorf("ошибка при разрешении города отправления: %w", err)
	}
	dest, err := s.locationRepo.ResolveByName(req.Destination)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrDestinationNotFound
		}
		return nil, fmt.Errorf("ошибка при разрешении города назначения: %w", err)
	}

	days, err := s.weatherRepo.DailyRange(dest.ID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	weatherDaily := make([]model.WeatherDay, 0, len(days))
	for _, d := range days {
		weatherDaily = append(weatherDaily, model.WeatherDay{
			Date:       d.OnDate.Format("2006-01-02"),
			Min:        d.MinTempC,
			Max:        d.MaxTempC,
			Precip:     d.PrecipMm,
			Conditions: d.Conditions,
		})
	}
	summary := SummarizeWeather(days)

	flightRows, err := s.flightRepo.FindBetween(origin.ID, dest.ID, req.MaxFlightPrice)
	if err != nil {
		return nil, err
	}
	flights := make([]model.FlightOption, 0, len(flightRows))
	for _, f := range flightRows {
		flights = append(flights, model.FlightOption{
			FlightID:        f.FlightID,
			CarrierCode:     f.CarrierCode,
			FlightNumber:    f.FlightNumber,
			Price:           f.Price,
			Currency:        f.Currency,
			DepartTime:      f.DepartTime,
			ArriveTime:      f.ArriveTime,
			OriginCity:      f.OriginCity,
			DestinationCity: f.DestinationCity,
		})
	}

	attractionRows, err := s.attractionRepo.ListWithBusyness(dest.ID)
	if err != nil {
		return nil, err
	}
	attractions := make([]model.AttractionInfo, 0, len(attractionRows))
	for _, a := range attractionRows {
		info := model.AttractionInfo{
			ID:       a.ID,
			Name:     a.Name,
			Category: a.Category,
			Rating:   a.Rating,
			Lat:      a.Lat,
			Lon:      a.Lon,
		}
		if a.AvgBusyness != nil {
			idx := int(math.Round(*a.AvgBusyness))
			info.BusynessIndex = &idx
		}
		attractions = append(attractions, info)
	}

	result := &model.TripSummary{
		Location:       model.LocationInfo{Name: dest.Name, Country: dest.Country},
		WeatherSummary: summary,
		WeatherDaily:   weatherDaily,
		Flights:        flights,
		Attractions:    attractions,
		BestTimeToVisit: model.BestTimeToVisit{
			Label:       "Based on weather data",
			Explanation: summary.ConditionsSummary,
		},
	}

	if s.cache != nil {
		if err := s.cache.Set(key, result, summaryCacheTTL); err != nil {
			s.log.Warn("summary_cache_set_failed", zap.Error(err), zap.String("key", key))
		}
	}
	return result, nil
}

// SummarizeWeather считает средние и качественную оценку условий за период.
// Без данных все средние nil и сводка — "No weather data available".
// Оценка: больше половины ясных дней — "Mostly clear skies", больше половины
// дождливых — "Expect frequent rain", иначе (включая равенство ровно
// половине) — "Mixed weather conditions".
func SummarizeWeather(days []model.WeatherDaily) model.WeatherSummary {
	if len(days) == 0 {
		return model.WeatherSummary{ConditionsSummary: "No weather data available"}
	}

	var sumHigh, sumLow, sumPrecip float64
	var clearDays, rainyDays int
	for _, d := range days {
		sumHigh += d.MaxTempC
		sumLow += d.MinTempC
		sumPrecip += d.PrecipMm
		cond := strings.ToLower(d.Conditions)
		if strings.Contains(cond, "clear") {
			clearDays++
		}
		if strings.Contains(cond, "rain") {
			rainyDays++
		}
	}

	n := float64(len(days))
	avgHigh := round1(sumHigh / n)
	avgLow := round1(sumLow / n)
	avgPrecip := round1(sumPrecip / n)

	var conditionsSummary string
	switch {
	case float64(clearDays) > n/2:
		conditionsSummary = "Mostly clear skies"
	case float64(rainyDays) > n/2:
		conditionsSummary = "Expect frequent rain"
	default:
		conditionsSummary = "Mixed weather conditions"
	}

	return model.WeatherSummary{
		AvgHigh:           &avgHigh,
		AvgLow:            &avgLow,
		AvgPrecip:         &avgPrecip,
		ConditionsSummary: conditionsSummary,
	}
}

// round1 округляет до одного знака после запятой.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func summaryCacheKey(req SummaryRequest) string {
	price := "any"
	if req.MaxFlightPrice != nil {
		price = fmt.Sprintf("%.2f", *req.MaxFlightPrice)
	}
	return fmt.Sprintf("summary:%s:%s:%s:%s:%s",
		strings.ToLower(req.Origin), strings.ToLower(req.Destination),
		req.StartDate, req.EndDate, price)
}
