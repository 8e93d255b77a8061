package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cannahub/admin-console/internal/upstream"
)

var v = validator.New()

func init() {
	// Prefer the `label` tag for display names, falling back to the Go
	// field name split on camel case ("StoreName" -> "Store Name").
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return splitCamel(fld.Name)
	})
}

// Struct validates a form input. Failures come back as the same
// *upstream.ValidationError the gateway produces for 422 responses, so
// handlers render client-side and server-side field errors identically.
func Struct(input interface{}) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string][]string)
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], message(fe))
	}
	return &upstream.ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "max":
		if fe.Kind() == reflect.String {
			entered := len([]rune(fe.Value().(string)))
			return fmt.Sprintf("Must be %s characters or less (you entered %d characters)", fe.Param(), entered)
		}
		return fmt.Sprintf("Must be %s or less", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "email":
		return "Must be a valid email address"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("Must be %s or more", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be %s or less", fe.Param())
	default:
		return fmt.Sprintf("Invalid value (%s)", fe.Tag())
	}
}

func splitCamel(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prev := rune(name[i-1])
			if prev < 'A' || prev > 'Z' {
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
