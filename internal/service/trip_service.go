package service

import (
	"travelplanner/internal/model"
	"travelplanner/internal/repository"
)

// Окно посещения по умолчанию, когда время не указано.
const (
	defaultStartTime = "10:00"
	defaultEndTime   = "12:00"
)

// CreateTripInput — входные данные создания поездки с первым пунктом.
// Обязательность userId/tripName/attraction.id проверяет обработчик.
type CreateTripInput struct {
	UserID       int
	TripName     string
	Origin       *string
	Destination  *string
	StartDate    *string
	EndDate      *string
	AttractionID int
	VisitDate    *string
	StartTime    *string
	EndTime      *string
	Notes        *string
}

// AddItemInput — входные данные добавления пункта маршрута.
type AddItemInput struct {
	TripID       int
	AttractionID int
	VisitDate    *string
	StartTime    *string
	EndTime      *string
	Notes        *string
}

// TripService содержит бизнес-логику работы с поездками и маршрутами.
type TripService struct {
	tripRepo *repository.TripRepository
}

// NewTripService создает новый сервис поездок.
func NewTripService(tripRepo *repository.TripRepository) *TripService {
	return &TripService{tripRepo: tripRepo}
}

// CreateTripWithFirstItem нормализует значения по умолчанию (окно посещения
// 10:00-12:00, дата визита = дата начала поездки) и атомарно создает
// поездку с первым пунктом маршрута.
func (s *TripService) CreateTripWithFirstItem(in CreateTripInput) (tripID, itemID int, err error) {
	visitDate := in.VisitDate
	if visitDate == nil {
		visitDate = in.StartDate
	}
	return s.tripRepo.CreateWithFirstItem(repository.CreateTripParams{
		UserID:       in.UserID,
		Title:        in.TripName,
		Origin:       in.Origin,
		Destination:  in.Destination,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		AttractionID: in.AttractionID,
		VisitDate:    visitDate,
		StartTime:    orDefault(in.StartTime, defaultStartTime),
		EndTime:      orDefault(in.EndTime, defaultEndTime),
		Notes:        in.Notes,
	})
}

// AddItineraryItem добавляет пункт в существующую поездку.
func (s *TripService) AddItineraryItem(in AddItemInput) (int, error) {
	return s.tripRepo.AddItem(repository.AddItemParams{
		TripID:       in.TripID,
		AttractionID: in.AttractionID,
		VisitDate:    in.VisitDate,
		StartTime:    orDefault(in.StartTime, defaultStartTime),
		EndTime:      orDefault(in.EndTime, defaultEndTime),
		Notes:        in.Notes,
	})
}

// GetUserTrips возвращает поездки пользователя со статистикой маршрута.
func (s *TripService) GetUserTrips(userID int) ([]model.TripWithStats, error) {
	return s.tripRepo.ListByUser(userID)
}

// GetTripWithItinerary возвращает поездку вместе с пунктами маршрута.
func (s *TripService) GetTripWithItinerary(tripID int) (*model.TripHeader, []model.ItineraryRow, error) {
	return s.tripRepo.GetWithItinerary(tripID)
}

// UpdateItineraryItem применяет частичное обновление пункта маршрута.
func (s *TripService) UpdateItineraryItem(tripID, itemID int, p repository.UpdateItemParams) error {
	return s.tripRepo.UpdateItem(tripID, itemID, p)
}

// RemoveItineraryItem удаляет пункт маршрута.
func (s *TripService) RemoveItineraryItem(tripID, itemID int) error {
	return s.tripRepo.RemoveItem(tripID, itemID)
}

// DeleteTrip удаляет поездку вместе с маршрутом (каскадно).
func (s *TripService) DeleteTrip(tripID int) error {
	return s.tripRepo.DeleteTrip(tripID)
}

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
