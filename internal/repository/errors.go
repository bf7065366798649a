package repository

import (
	"errors"

	"github.com/lib/pq"
)

// Доменные ошибки уровня хранилища. Сервисы и обработчики сравнивают их
// через errors.Is и отображают в соответствующие HTTP-статусы.
var (
	ErrTripNotFound        = errors.New("поездка не найдена")
	ErrItemNotFound        = errors.New("пункт маршрута не найден")
	ErrAttractionNotFound  = errors.New("достопримечательность не найдена")
	ErrDuplicateAttraction = errors.New("достопримечательность уже в маршруте")
)

// Имена ограничений из migrations/001_schema.sql.
const (
	uqItineraryTripAttraction = "uq_itinerary_trip_attraction"
	fkItineraryTrip           = "fk_itinerary_trip"
	fkItineraryAttraction     = "fk_itinerary_attraction"
)

// translateItemInsertError превращает нарушения ограничений при вставке
// пункта маршрута в доменные ошибки. Прочие ошибки возвращаются как есть.
func translateItemInsertError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch {
	case pqErr.Code == "23505" && pqErr.Constraint == uqItineraryTripAttraction:
		return ErrDuplicateAttraction
	case pqErr.Code == "23503" && pqErr.Constraint == fkItineraryTrip:
		return ErrTripNotFound
	case pqErr.Code == "23503" && pqErr.Constraint == fkItineraryAttraction:
		return ErrAttractionNotFound
	}
	return err
}
