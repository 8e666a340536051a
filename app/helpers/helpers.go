package helpers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors turns validator errors into a field->message map for
// re-rendering forms.
func FormatValidationErrors(validationErrors validator.ValidationErrors) map[string]string {
	formatted := make(map[string]string)
	for _, fieldError := range validationErrors {
		switch fieldError.Tag() {
		case "required":
			formatted[fieldError.Field()] = fmt.Sprintf("%s alanı zorunludur.", fieldError.Field())
		case "min":
			formatted[fieldError.Field()] = fmt.Sprintf("%s alanı en az %s karakter olmalıdır.", fieldError.Field(), fieldError.Param())
		case "max":
			formatted[fieldError.Field()] = fmt.Sprintf("%s alanı en fazla %s karakter olabilir.", fieldError.Field(), fieldError.Param())
		default:
			formatted[fieldError.Field()] = fmt.Sprintf("%s alanı geçersiz.", fieldError.Field())
		}
	}
	return formatted
}
