package bind

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"resume-insight/internal/shared/server/respond"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Struct validates dst against its `validate` tags.
func Struct(dst any) error {
	return validate.Struct(dst)
}

// JSON decodes the request body into dst and validates it. On failure it writes a
// 400 validation_error and returns false.
func JSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return false
	}
	if err := Struct(dst); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request failed validation", FieldErrors(err))
		return false
	}
	return true
}

// OptionalJSON behaves like JSON but accepts an empty body, including a chunked
// one with no length, leaving dst at its zero value before validation.
func OptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return false
		}
	}
	if err := Struct(dst); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request failed validation", FieldErrors(err))
		return false
	}
	return true
}

// FieldErrors flattens validator errors into field/rule pairs.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		out = append(out, FieldError{Field: field, Rule: fe.Tag()})
	}
	return out
}
