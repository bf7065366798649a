package repository

import (
	"fmt"

	"travelplanner/internal/model"

	"github.com/jmoiron/sqlx"
)

// FlightRepository обеспечивает доступ к вариантам перелетов.
type FlightRepository struct {
	db *sqlx.DB
}

// NewFlightRepository создает новый репозиторий перелетов.
func NewFlightRepository(db *sqlx.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// FindBetween возвращает перелеты между двумя локациями по возрастанию цены,
// не более 15 штук. Связь перелета с городами хранится в таблицах
// flight_origin и flight_destination. maxPrice nil означает без фильтра по цене.
func (r *FlightRepository) FindBetween(originID, destID int, maxPrice *float64) ([]model.FlightRow, error) {
	query := `
		SELECT
			f.flight_id,
			f.carrier_code,
			f.flight_number,
			f.price,
			f.currency,
			f.depart_time,
			f.arrive_time,
			l1.name AS origin_city,
			l2.name AS destination_city
		FROM flight_option f
		JOIN flight_origin fo ON f.flight_id = fo.flight_id
		JOIN flight_destination fd ON f.flight_id = fd.flight_id
		JOIN location l1 ON fo.location_id = l1.location_id
		JOIN location l2 ON fd.location_id = l2.location_id
		WHERE fo.location_id = ? AND fd.location_id = ?`
	args := []interface{}{originID, destID}

	if maxPrice != nil {
		query += " AND f.price <= ?"
		args = append(args, *maxPrice)
	}
	query += " ORDER BY f.price ASC LIMIT 15"
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	flights := []model.FlightRow{}
	if err := r.db.Select(&flights, query, args...); err != nil {
		return nil, fmt.Errorf("ошибка при поиске перелетов: %w", err)
	}
	return flights, nil
}
