package validation

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Даты и время приходят от фронтенда строками фиксированного формата.
	v.RegisterValidation("dateformat", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("timeformat", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("15:04", fl.Field().String())
		return err == nil
	})
	return v
}

// ValidateStruct проверяет структуру запроса по validate-тегам.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
