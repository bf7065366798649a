package model

// AttractionRow представляет достопримечательность вместе со средним
// индексом загруженности (NULL, если замеров популярности нет).
type AttractionRow struct {
	ID          int      `db:"id"`
	Name        string   `db:"name"`
	Category    string   `db:"category"`
	Rating      *float64 `db:"rating"`
	Lat         float64  `db:"lat"`
	Lon         float64  `db:"lon"`
	AvgBusyness *float64 `db:"avg_busyness"`
}

// AttractionInfo — достопримечательность в JSON-ответе. BusynessIndex
// округлен до целого; nil, если по достопримечательности нет замеров.
type AttractionInfo struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Rating        *float64 `json:"rating"`
	Lat           float64  `json:"lat"`
	Lon           float64  `json:"lon"`
	BusynessIndex *int     `json:"busynessIndex"`
}
