package service

import (
	"travelplanner/internal/model"
	"travelplanner/internal/repository"
)

// ExploreService отдает аналитические подборки раздела Explore.
// Источник (SQL-функции или встроенные запросы) выбирается при старте.
type ExploreService struct {
	source repository.ExploreSource
}

// NewExploreService создает новый сервис подборок.
func NewExploreService(source repository.ExploreSource) *ExploreService {
	return &ExploreService{source: source}
}

// SunniestCities возвращает самые солнечные города за неделю от startDate.
func (s *ExploreService) SunniestCities(startDate string, limit int) ([]model.SunnyCity, error) {
	return s.source.SunniestCities(startDate, limit)
}

// ColderCities возвращает города холоднее среднего по своей стране
// как минимум на minDelta градусов.
func (s *ExploreService) ColderCities(startDate string, minDelta float64, limit int) ([]model.ColdCity, error) {
	return s.source.ColderCities(startDate, minDelta, limit)
}

// CheapFlightsGoodWeather возвращает недорогие перелеты в направления
// с комфортной погодой.
func (s *ExploreService) CheapFlightsGoodWeather(p repository.CheapFlightsParams) ([]model.FlightWeatherPick, error) {
	return s.source.CheapFlightsGoodWeather(p)
}

// MonthlyRouteAvg возвращает средние цены маршрутов за календарный месяц.
func (s *ExploreService) MonthlyRouteAvg(monthStart string, limit int) ([]model.RouteMonthlyAvg, error) {
	return s.source.MonthlyRouteAvg(monthStart, limit)
}
