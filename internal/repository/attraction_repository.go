package repository

import (
	"fmt"

	"travelplanner/internal/model"

	"github.com/jmoiron/sqlx"
)

// AttractionRepository обеспечивает доступ к достопримечательностям
// и замерам их популярности.
type AttractionRepository struct {
	db *sqlx.DB
}

// NewAttractionRepository создает новый репозиторий достопримечательностей.
func NewAttractionRepository(db *sqlx.DB) *AttractionRepository {
	return &AttractionRepository{db: db}
}

// ListWithBusyness возвращает достопримечательности локации вместе со средним
// индексом загруженности по замерам популярности (NULL без замеров),
// не более 20 штук.
func (r *AttractionRepository) ListWithBusyness(locationID int) ([]model.AttractionRow, error) {
	rows := []model.AttractionRow{}
	err := r.db.Select(&rows,
		`SELECT
			a.attraction_id AS id,
			a.name,
			a.category,
			a.rating,
			a.lat,
			a.lon,
			AVG(ap.busyness_index)::float8 AS avg_busyness
		 FROM attraction a
		 LEFT JOIN attraction_popularity ap ON a.attraction_id = ap.attraction_id
		 WHERE a.location_id = $1
		 GROUP BY a.attraction_id, a.name, a.category, a.rating, a.lat, a.lon
		 LIMIT 20`,
		locationID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении достопримечательностей: %w", err)
	}
	return rows, nil
}
