package dto

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
)

var registerOnce sync.Once

// echoedTags are the enum checks whose rejected value is safe to repeat
// back; free text such as passwords never is.
var echoedTags = map[string]bool{
	"oneof":       true,
	"category":    true,
	"post_status": true,
	"role":        true,
	"language":    true,
}

// RegisterValidators installs the custom tags used by the request types on
// gin's validator: category, post_status, role and language. Empty values
// pass; combine with required where needed.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}

		v.RegisterTagNameFunc(jsonFieldName)

		custom := map[string]validator.Func{
			"category":    validateCategory,
			"post_status": validatePostStatus,
			"role":        validateRole,
			"language":    validateLanguage,
		}
		for tag, fn := range custom {
			if err = v.RegisterValidation(tag, fn); err != nil {
				return
			}
		}
	})
	return err
}

func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

func validateCategory(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || entities.Category(s).IsValid()
}

func validatePostStatus(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, ok := entities.ParseStatus(s)
	return ok
}

func validateRole(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, ok := entities.ParseRole(s)
	return ok
}

func validateLanguage(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, ok := entities.ParseLanguage(s)
	return ok
}

// ValidationErrors converts a binding error to localized field errors.
// Malformed bodies yield a single error on the "body" field.
func ValidationErrors(c *gin.Context, err error) []ValidationError {
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return []ValidationError{{
			Field:   "body",
			Message: T(c, "error.validation.detail"),
		}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		params := map[string]any{"Field": fe.Field(), "Param": fe.Param()}

		key := "validation." + fe.Tag()
		message := T(c, key, params)
		if message == key {
			message = T(c, "validation.default", params)
		}

		ve := ValidationError{
			Field:   fe.Field(),
			Message: message,
			Tag:     fe.Tag(),
		}
		if s, ok := fe.Value().(string); ok && echoedTags[fe.Tag()] {
			ve.Value = s
		}
		out = append(out, ve)
	}
	return out
}
