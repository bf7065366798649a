package service

import (
	"database/sql"
	"regexp"
	"testing"

	"travelplanner/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

const selectUserByEmail = "SELECT user_id, full_name, email FROM user_account WHERE email=$1"

// Существующий пользователь возвращается как есть: имя из запроса
// не перезаписывает сохраненное.
func TestLoginExistingUserKeepsStoredName(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmail)).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "full_name", "email"}).
			AddRow(7, "Alice Smith", "alice@example.com"))

	user, err := svc.Login("Completely Different Name", "alice@example.com")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != 7 || user.FullName != "Alice Smith" {
		t.Errorf("получен пользователь %+v, ожидается сохраненная запись", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestLoginCreatesNewUser(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmail)).
		WithArgs("bob@example.com").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO user_account (full_name, email) VALUES ($1, $2) RETURNING user_id")).
		WithArgs("Bob", "bob@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(42))

	user, err := svc.Login("Bob", "bob@example.com")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != 42 || user.FullName != "Bob" || user.Email != "bob@example.com" {
		t.Errorf("неожиданный пользователь: %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
