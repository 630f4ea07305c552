package types

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/advising-studio/engine/internal/catalog"
	appErr "github.com/advising-studio/engine/pkg/errors"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator. Field errors are reported with
// their JSON names and interaction types are checked against the catalog.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("interaction_type", func(fl validator.FieldLevel) bool {
			return catalog.IsInteractionType(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// Validate checks req and converts the first failure into an invalid AppError
// whose message names the offending field.
func Validate(req any) error {
	err := Validator().Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return appErr.New(appErr.CodeInvalid, describe(verrs[0]))
	}
	return appErr.Wrap(err, appErr.CodeInvalid, "invalid request")
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "uuid":
		return field + " must be a valid UUID"
	case "datetime":
		return field + " must be an RFC 3339 timestamp"
	case "interaction_type":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(interactionTypeValues(), ", "))
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

func interactionTypeValues() []string {
	var out []string
	for _, o := range catalog.InteractionTypes() {
		if catalog.IsInteractionType(o.Value) {
			out = append(out, o.Value)
		}
	}
	return out
}
