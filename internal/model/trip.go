package model

import "time"

// Trip представляет сохраненную поездку пользователя. Поле ItemCount —
// денормализованный счетчик пунктов маршрута, поддерживается триггерами БД
// и всегда равно числу строк itinerary_item с данным trip_id.
type Trip struct {
	ID           int        `db:"trip_id"`
	UserID       int        `db:"user_id"`
	Title        string     `db:"trip_title"`
	Origin       *string    `db:"origin"`
	Destination  *string    `db:"destination"`
	StartDate    *time.Time `db:"start_date"`
	EndDate      *time.Time `db:"end_date"`
	Budget       *float64   `db:"budget"`
	Currency     *string    `db:"currency"`
	CreatedAt    time.Time  `db:"created_at"`
	LastModified time.Time  `db:"last_modified"`
	ItemCount    int        `db:"item_count"`
}

// TripWithStats — строка списка поездок пользователя: поездка плюс
// агрегированные категории достопримечательностей маршрута.
type TripWithStats struct {
	Trip
	Categories string `db:"categories"`
}

// TripHeader — шапка поездки вместе с данными владельца (для детального просмотра).
type TripHeader struct {
	Trip
	UserName  string `db:"user_name"`
	UserEmail string `db:"user_email"`
}

// ItineraryRow представляет пункт маршрута вместе с данными
// достопримечательности и ее города.
type ItineraryRow struct {
	ItemID         int        `db:"item_id"`
	VisitDate      *time.Time `db:"visit_date"`
	StartTime      *string    `db:"start_time"`
	EndTime        *string    `db:"end_time"`
	Notes          *string    `db:"notes"`
	SortOrder      int        `db:"sort_order"`
	AttractionID   int        `db:"attraction_id"`
	AttractionName string     `db:"attraction_name"`
	Category       string     `db:"category"`
	Rating         *float64   `db:"rating"`
	City           string     `db:"city"`
	Country        string     `db:"country"`
}
