package repository

import (
	"fmt"

	"travelplanner/internal/model"

	"github.com/jmoiron/sqlx"
)

// UserRepository обеспечивает доступ к учетным записям пользователей.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создает новый репозиторий пользователей.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail ищет пользователя по email. Возвращает sql.ErrNoRows, если не найден.
func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user,
		"SELECT user_id, full_name, email FROM user_account WHERE email=$1", email)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create добавляет нового пользователя. Возвращает ID созданной записи.
// Уникальность email обеспечивается ограничением БД.
func (r *UserRepository) Create(fullName, email string) (int, error) {
	query := `INSERT INTO user_account (full_name, email) VALUES ($1, $2) RETURNING user_id`
	var id int
	err := r.db.QueryRow(query, fullName, email).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать пользователя: %w", err)
	}
	return id, nil
}
