package model

import "time"

// WeatherDaily представляет дневную сводку погоды по локации.
// Температуры хранятся в градусах Цельсия, осадки в миллиметрах.
type WeatherDaily struct {
	LocationID int       `db:"location_id"`
	OnDate     time.Time `db:"on_date"`
	MinTempC   float64   `db:"min_temp_c"`
	MaxTempC   float64   `db:"max_temp_c"`
	PrecipMm   float64   `db:"precip_mm"`
	Conditions string    `db:"conditions"`
}

// WeatherSummary — агрегированная сводка за период запроса.
// Все средние значения nil, если за период нет данных.
type WeatherSummary struct {
	AvgHigh           *float64 `json:"avgHigh"`
	AvgLow            *float64 `json:"avgLow"`
	AvgPrecip         *float64 `json:"avgPrecip"`
	ConditionsSummary string   `json:"conditionsSummary"`
}

// WeatherDay — один день прогноза в JSON-ответе.
type WeatherDay struct {
	Date       string  `json:"date"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Precip     float64 `json:"precip"`
	Conditions string  `json:"conditions"`
}
