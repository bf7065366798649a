package model

import "time"

// FlightRow представляет вариант перелета вместе с названиями городов,
// полученными через таблицы связей flight_origin / flight_destination.
type FlightRow struct {
	FlightID        int       `db:"flight_id"`
	CarrierCode     string    `db:"carrier_code"`
	FlightNumber    string    `db:"flight_number"`
	Price           float64   `db:"price"`
	Currency        string    `db:"currency"`
	DepartTime      time.Time `db:"depart_time"`
	ArriveTime      time.Time `db:"arrive_time"`
	OriginCity      string    `db:"origin_city"`
	DestinationCity string    `db:"destination_city"`
}

// FlightOption — вариант перелета в JSON-ответе.
type FlightOption struct {
	FlightID        int       `json:"flightId"`
	CarrierCode     string    `json:"carrierCode"`
	FlightNumber    string    `json:"flightNumber"`
	Price           float64   `json:"price"`
	Currency        string    `json:"currency"`
	DepartTime      time.Time `json:"departTime"`
	ArriveTime      time.Time `json:"arriveTime"`
	OriginCity      string    `json:"originCity"`
	DestinationCity string    `json:"destinationCity"`
}
