package repository

import (
	"context"
	"database/sql"
	"fmt"

	"travelplanner/internal/model"

	"github.com/jmoiron/sqlx"
)

// TripRepository обеспечивает доступ к поездкам и пунктам их маршрутов.
// Денормализованный счетчик trip.item_count поддерживается триггерами БД,
// поэтому здесь он никогда не изменяется напрямую.
type TripRepository struct {
	db *sqlx.DB
}

// NewTripRepository создает новый репозиторий поездок.
func NewTripRepository(db *sqlx.DB) *TripRepository {
	return &TripRepository{db: db}
}

// CreateTripParams — параметры атомарного создания поездки с первым пунктом.
// Значения уже нормализованы сервисом (подставлены окно посещения по
// умолчанию и дата визита).
type CreateTripParams struct {
	UserID       int
	Title        string
	Origin       *string
	Destination  *string
	StartDate    *string
	EndDate      *string
	AttractionID int
	VisitDate    *string
	StartTime    string
	EndTime      string
	Notes        *string
}

// CreateWithFirstItem атомарно создает поездку и ее первый пункт маршрута
// в одной транзакции с уровнем изоляции READ COMMITTED на выделенном
// соединении. При любой ошибке транзакция откатывается целиком: поездка
// без пунктов не видна другим читателям ни в какой момент.
// Идентификаторы возвращаются напрямую через RETURNING.
func (r *TripRepository) CreateWithFirstItem(p CreateTripParams) (tripID, itemID int, err error) {
	tx, err := r.db.BeginTxx(context.Background(), &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return 0, 0, fmt.Errorf("не удалось начать транзакцию: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	err = tx.QueryRow(
		`INSERT INTO trip (user_id, trip_title, origin, destination, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5::date, $6::date)
		 RETURNING trip_id`,
		p.UserID, p.Title, p.Origin, p.Destination, p.StartDate, p.EndDate,
	).Scan(&tripID)
	if err != nil {
		return 0, 0, fmt.Errorf("не удалось создать поездку: %w", err)
	}

	err = tx.QueryRow(
		`INSERT INTO itinerary_item (trip_id, attraction_id, visit_date, start_time, end_time, notes, sort_order)
		 VALUES ($1, $2, $3::date, $4::time, $5::time, $6, 1)
		 RETURNING item_id`,
		tripID, p.AttractionID, p.VisitDate, p.StartTime, p.EndTime, p.Notes,
	).Scan(&itemID)
	if err != nil {
		return 0, 0, translateItemInsertError(err)
	}

	if err = tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("не удалось зафиксировать транзакцию: %w", err)
	}
	return tripID, itemID, nil
}

// AddItemParams — параметры добавления пункта в существующую поездку.
type AddItemParams struct {
	TripID       int
	AttractionID int
	VisitDate    *string
	StartTime    string
	EndTime      string
	Notes        *string
}

// AddItem добавляет пункт маршрута. sort_order берется следующим за
// максимальным в поездке. Нарушение уникальности (trip_id, attraction_id)
// превращается в ErrDuplicateAttraction, нарушение внешнего ключа поездки —
// в ErrTripNotFound. Счетчик item_count увеличивает триггер вставки.
func (r *TripRepository) AddItem(p AddItemParams) (int, error) {
	var itemID int
	err := r.db.QueryRow(
		`INSERT INTO itinerary_item (trip_id, attraction_id, visit_date, start_time, end_time, notes, sort_order)
		 VALUES ($1, $2, $3::date, $4::time, $5::time, $6,
		         (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM itinerary_item WHERE trip_id = $1))
		 RETURNING item_id`,
		p.TripID, p.AttractionID, p.VisitDate, p.StartTime, p.EndTime, p.Notes,
	).Scan(&itemID)
	if err != nil {
		return 0, translateItemInsertError(err)
	}
	return itemID, nil
}

// ListByUser возвращает поездки пользователя с агрегированными категориями
// достопримечательностей маршрута. Для пользователя без поездок — пустой список.
func (r *TripRepository) ListByUser(userID int) ([]model.TripWithStats, error) {
	trips := []model.TripWithStats{}
	err := r.db.Select(&trips,
		`SELECT
			t.trip_id,
			t.user_id,
			t.trip_title,
			t.origin,
			t.destination,
			t.start_date,
			t.end_date,
			t.budget,
			t.currency,
			t.created_at,
			t.last_modified,
			t.item_count,
			COALESCE(string_agg(DISTINCT a.category, ', '), '') AS categories
		 FROM trip t
		 LEFT JOIN itinerary_item i ON i.trip_id = t.trip_id
		 LEFT JOIN attraction a ON a.attraction_id = i.attraction_id
		 WHERE t.user_id = $1
		 GROUP BY t.trip_id
		 ORDER BY t.created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении поездок пользователя: %w", err)
	}
	return trips, nil
}

// GetWithItinerary читает шапку поездки и пункты маршрута в одной транзакции
// с уровнем REPEATABLE READ: оба подзапроса видят один снимок данных, и
// параллельная вставка пункта не может попасть в один из них, минуя другой.
// Пункты упорядочены по (visit_date, sort_order, start_time).
func (r *TripRepository) GetWithItinerary(tripID int) (header *model.TripHeader, items []model.ItineraryRow, err error) {
	tx, err := r.db.BeginTxx(context.Background(), &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось начать транзакцию: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var h model.TripHeader
	err = tx.Get(&h,
		`SELECT
			t.trip_id,
			t.user_id,
			t.trip_title,
			t.origin,
			t.destination,
			t.start_date,
			t.end_date,
			t.budget,
			t.currency,
			t.created_at,
			t.last_modified,
			t.item_count,
			u.full_name AS user_name,
			u.email AS user_email
		 FROM trip t
		 JOIN user_account u ON t.user_id = u.user_id
		 WHERE t.trip_id = $1`,
		tripID)
	if err != nil {
		if err == sql.ErrNoRows {
			err = ErrTripNotFound
		}
		return nil, nil, err
	}

	items = []model.ItineraryRow{}
	err = tx.Select(&items,
		`SELECT
			i.item_id,
			i.visit_date,
			i.start_time,
			i.end_time,
			i.notes,
			i.sort_order,
			a.attraction_id,
			a.name AS attraction_name,
			a.category,
			a.rating,
			l.name AS city,
			l.country
		 FROM itinerary_item i
		 JOIN attraction a ON i.attraction_id = a.attraction_id
		 JOIN location l ON a.location_id = l.location_id
		 WHERE i.trip_id = $1
		 ORDER BY i.visit_date, i.sort_order, i.start_time`,
		tripID)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка при получении маршрута: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("не удалось зафиксировать транзакцию: %w", err)
	}
	return &h, items, nil
}

// UpdateItemParams — частичное обновление пункта маршрута: nil-поля
// сохраняют прежние значения (COALESCE на стороне БД).
type UpdateItemParams struct {
	VisitDate *string
	StartTime *string
	EndTime   *string
	Notes     *string
}

// UpdateItem применяет частичное обновление пункта. Возвращает
// ErrItemNotFound, если пара (tripID, itemID) не существует.
func (r *TripRepository) UpdateItem(tripID, itemID int, p UpdateItemParams) error {
	res, err := r.db.Exec(
		`UPDATE itinerary_item
		 SET visit_date = COALESCE($1::date, visit_date),
		     start_time = COALESCE($2::time, start_time),
		     end_time   = COALESCE($3::time, end_time),
		     notes      = COALESCE($4, notes)
		 WHERE trip_id = $5 AND item_id = $6`,
		p.VisitDate, p.StartTime, p.EndTime, p.Notes, tripID, itemID)
	if err != nil {
		return fmt.Errorf("не удалось обновить пункт маршрута: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// RemoveItem удаляет пункт маршрута. Счетчик item_count уменьшает триггер
// удаления. Возвращает ErrItemNotFound при нулевом числе затронутых строк.
func (r *TripRepository) RemoveItem(tripID, itemID int) error {
	res, err := r.db.Exec(
		"DELETE FROM itinerary_item WHERE trip_id = $1 AND item_id = $2", tripID, itemID)
	if err != nil {
		return fmt.Errorf("не удалось удалить пункт маршрута: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// DeleteTrip удаляет поездку; пункты маршрута удаляются каскадно по
// внешнему ключу. Возвращает ErrTripNotFound, если поездки нет.
func (r *TripRepository) DeleteTrip(tripID int) error {
	res, err := r.db.Exec("DELETE FROM trip WHERE trip_id = $1", tripID)
	if err != nil {
		return fmt.Errorf("не удалось удалить поездку: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTripNotFound
	}
	return nil
}

// ReconcileItemCounts выравнивает item_count с фактическим числом пунктов.
// Страховка на случай ручных правок данных в обход триггеров; запускается
// при старте сервера. Возвращает число исправленных поездок.
func (r *TripRepository) ReconcileItemCounts() (int64, error) {
	res, err := r.db.Exec(
		`UPDATE trip t
		 SET item_count = c.cnt
		 FROM (SELECT trip_id, COUNT(*) AS cnt FROM itinerary_item GROUP BY trip_id) c
		 WHERE c.trip_id = t.trip_id AND t.item_count <> c.cnt`)
	if err != nil {
		return 0, fmt.Errorf("не удалось выровнять счетчики: %w", err)
	}
	fixed, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	res, err = r.db.Exec(
		`UPDATE trip t
		 SET item_count = 0
		 WHERE t.item_count <> 0
		   AND NOT EXISTS (SELECT 1 FROM itinerary_item i WHERE i.trip_id = t.trip_id)`)
	if err != nil {
		return fixed, fmt.Errorf("не удалось выровнять счетчики пустых поездок: %w", err)
	}
	zeroed, err := res.RowsAffected()
	if err != nil {
		return fixed, err
	}
	return fixed + zeroed, nil
}
