package model

// LocationInfo — краткие сведения о направлении в ответе trip-summary.
type LocationInfo struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// BestTimeToVisit — рекомендация по времени поездки; пояснение повторяет
// качественную оценку погодных условий за период.
type BestTimeToVisit struct {
	Label       string `json:"label"`
	Explanation string `json:"explanation"`
}

// TripSummary — агрегированный ответ на запрос планирования поездки:
// погода, перелеты и достопримечательности по направлению.
type TripSummary struct {
	Location        LocationInfo     `json:"location"`
	WeatherSummary  WeatherSummary   `json:"weatherSummary"`
	WeatherDaily    []WeatherDay     `json:"weatherDaily"`
	Flights         []FlightOption   `json:"flights"`
	Attractions     []AttractionInfo `json:"attractions"`
	BestTimeToVisit BestTimeToVisit  `json:"bestTimeToVisit"`
}
