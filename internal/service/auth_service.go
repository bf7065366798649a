package service

import (
	"database/sql"
	"fmt"

	"travelplanner/internal/model"
	"travelplanner/internal/repository"
)

// AuthService отвечает за вход пользователей по email (find-or-create).
type AuthService struct {
	userRepo *repository.UserRepository
}

// NewAuthService создает новый сервис аутентификации.
func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Login ищет пользователя по email и регистрирует нового, если не найден.
// Поиск идет только по email: вернувшийся пользователь с другим именем
// получает ранее сохраненную запись, имя в ней не обновляется.
// Повторные вызовы с одним email никогда не создают дубликатов —
// это гарантирует уникальное ограничение на email.
func (s *AuthService) Login(name, email string) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if err == sql.ErrNoRows {
			// Пользователь не зарегистрирован - создаем новую запись
			id, err := s.userRepo.Create(name, email)
			if err != nil {
				return nil, err
			}
			return &model.User{ID: id, FullName: name, Email: email}, nil
		}
		// Другая ошибка выполнения запроса
		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}
	// Пользователь найден, возвращаем его
	return user, nil
}
