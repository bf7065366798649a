package repository

import (
	"travelplanner/internal/model"

	"github.com/jmoiron/sqlx"
)

// LocationRepository обеспечивает доступ к справочнику направлений.
type LocationRepository struct {
	db *sqlx.DB
}

// NewLocationRepository создает новый репозиторий локаций.
func NewLocationRepository(db *sqlx.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// ResolveByName ищет локацию по подстроке названия без учета регистра.
// Берется первая строка в порядке выдачи БД: при нескольких совпадениях
// результат неоднозначен, детерминированного выбора здесь нет.
// Возвращает sql.ErrNoRows, если совпадений нет.
func (r *LocationRepository) ResolveByName(fragment string) (*model.Location, error) {
	var loc model.Location
	err := r.db.Get(&loc,
		"SELECT location_id, name, country, lat, lon FROM location WHERE name ILIKE $1 LIMIT 1",
		"%"+fragment+"%")
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

// GetByID возвращает локацию по идентификатору.
func (r *LocationRepository) GetByID(id int) (*model.Location, error) {
	var loc model.Location
	err := r.db.Get(&loc,
		"SELECT location_id, name, country, lat, lon FROM location WHERE location_id=$1", id)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}
