package model

// SunnyCity — город в подборке "самые солнечные направления" за неделю.
type SunnyCity struct {
	LocationID   int     `db:"location_id" json:"locationId"`
	City         string  `db:"city" json:"city"`
	Country      string  `db:"country" json:"country"`
	DaysWithData int     `db:"days_with_data" json:"daysWithData"`
	ClearDays    int     `db:"clear_days" json:"clearDays"`
	AvgRainMm    float64 `db:"avg_rain_mm" json:"avgRainMm"`
	AvgHighC     float64 `db:"avg_high_c" json:"avgHighC"`
	AvgLowC      float64 `db:"avg_low_c" json:"avgLowC"`
}

// ColdCity — город, заметно более холодный, чем в среднем по его стране.
type ColdCity struct {
	LocationID    int     `db:"location_id" json:"locationId"`
	City          string  `db:"city" json:"city"`
	Country       string  `db:"country" json:"country"`
	CityAvgMax    float64 `db:"city_avg_max" json:"cityAvgMax"`
	CountryAvgMax float64 `db:"country_avg_max" json:"countryAvgMax"`
	DeltaC        float64 `db:"delta_c" json:"deltaC"`
}

// FlightWeatherPick — дешевый перелет в направление с комфортной погодой.
type FlightWeatherPick struct {
	FlightID           int     `db:"flight_id" json:"flightId"`
	CarrierCode        string  `db:"carrier_code" json:"carrierCode"`
	FlightNumber       string  `db:"flight_number" json:"flightNumber"`
	Price              float64 `db:"price" json:"price"`
	Currency           string  `db:"currency" json:"currency"`
	OriginCity         string  `db:"origin_city" json:"originCity"`
	OriginCountry      string  `db:"origin_country" json:"originCountry"`
	DestinationCity    string  `db:"destination_city" json:"destinationCity"`
	DestinationCountry string  `db:"destination_country" json:"destinationCountry"`
	AvgHighC           float64 `db:"avg_high_c" json:"avgHighC"`
	AvgPrecipMm        float64 `db:"avg_precip_mm" json:"avgPrecipMm"`
	ClearDays          int     `db:"clear_days" json:"clearDays"`
}

// RouteMonthlyAvg — средняя цена по маршруту за календарный месяц.
type RouteMonthlyAvg struct {
	OriginCity      string  `db:"origin_city" json:"originCity"`
	DestinationCity string  `db:"destination_city" json:"destinationCity"`
	Month           int     `db:"month" json:"month"`
	AvgPrice        float64 `db:"avg_price" json:"avgPrice"`
	Flights         int     `db:"flights" json:"flights"`
}
