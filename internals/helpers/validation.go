package helper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// pakai nama json supaya pesan error sama dengan field di body
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
		m := fl.Field().Int()
		return m >= 1 && m <= 12
	})

	return v
}

// ValidateStruct menjalankan tag `validate` dan mengembalikan 400 yang menyebut
// field-field yang kosong, misal "email and password are required".
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}

	var missing, invalid []string
	for _, fe := range ve {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		invalid = append(invalid, describe(fe))
	}

	if len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, RequiredMessage(missing))
	}
	return fiber.NewError(fiber.StatusBadRequest, strings.Join(invalid, "; "))
}

// RequiredMessage: ["a"] → "a is required", ["a","b","c"] → "a, b, and c are required".
func RequiredMessage(fields []string) string {
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0] + " is required"
	case 2:
		return fields[0] + " and " + fields[1] + " are required"
	default:
		return strings.Join(fields[:len(fields)-1], ", ") + ", and " + fields[len(fields)-1] + " are required"
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "month":
		return fmt.Sprintf("%s must be between 1 and 12", fe.Field())
	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a valid UUID", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
