package service

import (
	"testing"
	"time"

	"travelplanner/internal/model"
)

func day(maxC, minC, precip float64, conditions string) model.WeatherDaily {
	return model.WeatherDaily{
		OnDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		MinTempC:   minC,
		MaxTempC:   maxC,
		PrecipMm:   precip,
		Conditions: conditions,
	}
}

func TestSummarizeWeatherMostlyClear(t *testing.T) {
	days := []model.WeatherDaily{
		day(30, 20, 0, "Clear"),
		day(28, 18, 1, "Clear"),
		day(25, 15, 10, "Rain"),
	}

	s := SummarizeWeather(days)

	if s.AvgHigh == nil || *s.AvgHigh != 27.7 {
		t.Errorf("avgHigh = %v, ожидается 27.7", s.AvgHigh)
	}
	if s.AvgLow == nil || *s.AvgLow != 17.7 {
		t.Errorf("avgLow = %v, ожидается 17.7", s.AvgLow)
	}
	if s.AvgPrecip == nil || *s.AvgPrecip != 3.7 {
		t.Errorf("avgPrecip = %v, ожидается 3.7", s.AvgPrecip)
	}
	if s.ConditionsSummary != "Mostly clear skies" {
		t.Errorf("conditionsSummary = %q", s.ConditionsSummary)
	}
}

func TestSummarizeWeatherNoData(t *testing.T) {
	s := SummarizeWeather(nil)

	if s.AvgHigh != nil || s.AvgLow != nil || s.AvgPrecip != nil {
		t.Errorf("без данных все средние должны быть nil: %+v", s)
	}
	if s.ConditionsSummary != "No weather data available" {
		t.Errorf("conditionsSummary = %q", s.ConditionsSummary)
	}
}

func TestSummarizeWeatherFrequentRain(t *testing.T) {
	days := []model.WeatherDaily{
		day(20, 12, 8, "Light rain"),
		day(19, 11, 12, "Heavy Rain"),
		day(22, 13, 0, "Clear"),
	}

	s := SummarizeWeather(days)
	if s.ConditionsSummary != "Expect frequent rain" {
		t.Errorf("conditionsSummary = %q", s.ConditionsSummary)
	}
}

// Ровно половина ясных дней не дает перевеса — сводка "Mixed".
func TestSummarizeWeatherTieFallsToMixed(t *testing.T) {
	days := []model.WeatherDaily{
		day(25, 15, 0, "Clear"),
		day(24, 14, 5, "Cloudy"),
	}

	s := SummarizeWeather(days)
	if s.ConditionsSummary != "Mixed weather conditions" {
		t.Errorf("conditionsSummary = %q", s.ConditionsSummary)
	}
}

// Сопоставление условий не зависит от регистра.
func TestSummarizeWeatherCaseInsensitive(t *testing.T) {
	days := []model.WeatherDaily{
		day(25, 15, 0, "CLEAR SKY"),
		day(24, 14, 0, "mostly clear"),
		day(23, 13, 2, "rain"),
	}

	s := SummarizeWeather(days)
	if s.ConditionsSummary != "Mostly clear skies" {
		t.Errorf("conditionsSummary = %q", s.ConditionsSummary)
	}
}

func TestRound1(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{27.666666, 27.7},
		{17.649999, 17.6},
		{3.0, 3.0},
		{-1.25, -1.3},
	}
	for _, c := range cases {
		if got := round1(c.in); got != c.want {
			t.Errorf("round1(%v) = %v, ожидается %v", c.in, got, c.want)
		}
	}
}
