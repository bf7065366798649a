package model

// Location представляет город из справочника направлений.
// Справочные данные, приложение их не изменяет.
type Location struct {
	ID      int     `db:"location_id"`
	Name    string  `db:"name"`
	Country string  `db:"country"`
	Lat     float64 `db:"lat"`
	Lon     float64 `db:"lon"`
}
