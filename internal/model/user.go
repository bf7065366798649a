package model

// User представляет учетную запись пользователя планировщика.
// Создается при первом входе по email и далее не изменяется.
type User struct {
	ID       int    `db:"user_id"`
	FullName string `db:"full_name"`
	Email    string `db:"email"`
}

// UserInfo — представление пользователя в JSON-ответах API.
type UserInfo struct {
	UserID int    `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// ToInfo преобразует строку БД в JSON-представление.
func (u *User) ToInfo() UserInfo {
	return UserInfo{UserID: u.ID, Name: u.FullName, Email: u.Email}
}
