package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func TestLoginMissingEmail(t *testing.T) {
	h, _ := newTestHandler(t)
	router := gin.New()
	router.POST("/api/userLogin", h.Login)

	req := httptest.NewRequest(http.MethodPost, "/api/userLogin",
		strings.NewReader(`{"name":"Alice"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("статус %d, ожидается 400", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("ответ не JSON: %v", err)
	}
	if body["error"] != "Require both name and email to login" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestLoginReturnsExistingUser(t *testing.T) {
	h, mock := newTestHandler(t)
	router := gin.New()
	router.POST("/api/userLogin", h.Login)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, full_name, email FROM user_account WHERE email=$1")).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "full_name", "email"}).
			AddRow(7, "Alice Smith", "alice@example.com"))

	req := httptest.NewRequest(http.MethodPost, "/api/userLogin",
		strings.NewReader(`{"name":"Someone Else","email":"alice@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("статус %d, тело %s", w.Code, w.Body.String())
	}
	var body struct {
		UserID int    `json:"userId"`
		Name   string `json:"name"`
		Email  string `json:"email"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("ответ не JSON: %v", err)
	}
	// Имя из запроса не перезаписывает сохраненное при первом входе.
	if body.UserID != 7 || body.Name != "Alice Smith" {
		t.Errorf("неожиданный ответ: %+v", body)
	}
}
