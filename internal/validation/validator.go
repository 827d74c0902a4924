// Package validation проверяет тела запросов через go-playground/validator.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const specialChars = `!@#$%^&*(),.?":{}|<>`

var (
	lowerRe   = regexp.MustCompile(`[a-z]`)
	upperRe   = regexp.MustCompile(`[A-Z]`)
	specialRe = regexp.MustCompile(`[` + regexp.QuoteMeta(specialChars) + `]`)
)

// Error — ошибка валидации с сообщением по первому невалидному полю.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Validator оборачивает validator.Validate с правилами пароля и сообщениями для клиента.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// имена полей из json-тегов
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("haslower", matches(lowerRe))
	_ = v.RegisterValidation("hasupper", matches(upperRe))
	_ = v.RegisterValidation("hasspecial", matches(specialRe))

	return &Validator{v: v}
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// Struct валидирует s и возвращает *Error для первого нарушения.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return &Error{Field: fe.Field(), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s should contain at least %s character(s)", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s should contain at most %s character(s)", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s should be one of: %s", fe.Field(), fe.Param())
	case "haslower":
		return "password should contain atleast one lowercase character"
	case "hasupper":
		return "password should contain atleast one uppercase character"
	case "hasspecial":
		return "password should contain atleast one special character"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
