package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/shandysiswandi/smartlocker/internal/pkg/strcase"
)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// V10Validator implements Validator using go-playground/validator v10.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// V10ValidationError is a field-to-message map returned when validation fails.
//
// Keys are field names in snake_case to match typical JSON conventions.
type V10ValidationError map[string]string

// Error implements the error interface.
func (vs V10ValidationError) Error() string {
	if len(vs) == 0 {
		return "validation error"
	}

	b, err := json.Marshal(vs)
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

// Values returns the field error map.
func (vs V10ValidationError) Values() map[string]string {
	return vs
}

// NewV10Validator constructs a V10Validator with English translations and custom rules.
func NewV10Validator() (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	v10CustomValidation(validate, enTrans)

	return &V10Validator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Validate validates a struct and returns a V10ValidationError on failure.
func (v *V10Validator) Validate(data any) error {
	if err := v.validate.Struct(data); err != nil {
		var validateErrs validator.ValidationErrors
		if !errors.As(err, &validateErrs) {
			return err
		}

		errV10 := make(V10ValidationError)
		for _, fe := range validateErrs {
			errV10[strcase.ToLowerSnake(fe.Field())] = fe.Translate(v.translator)
		}

		return errV10
	}

	return nil
}

// enum accepts values whose type reports IsValid, such as the locker status
// and activity type enumerations. Empty values are left to required/omitempty.
func validateEnum(fl validator.FieldLevel) bool {
	if fl.Field().IsZero() {
		return true
	}
	e, ok := fl.Field().Interface().(interface{ IsValid() bool })
	if !ok {
		return false
	}
	return e.IsValid()
}

// lockerid accepts identifiers that are usable as a single path segment and
// carry no surrounding whitespace or control characters.
func validateLockerID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	if id != strings.TrimSpace(id) {
		return false
	}
	for _, r := range id {
		if r == '/' || r == '?' || r == '#' || unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// flatjson accepts a JSON object whose values are strings, numbers or booleans.
func validateFlatJSON(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Map {
		return false
	}

	iter := field.MapRange()
	for iter.Next() {
		val := iter.Value()
		if val.Kind() == reflect.Interface {
			if val.IsNil() {
				return false
			}
			val = val.Elem()
		}

		switch val.Kind() {
		case reflect.String, reflect.Bool,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
		default:
			return false
		}
	}
	return true
}

//nolint:errcheck,gosec // registration only fails for empty tags
func v10CustomValidation(validate *validator.Validate, enTrans ut.Translator) {
	rules := []struct {
		tag  string
		fn   validator.Func
		text string
	}{
		{tag: "enum", fn: validateEnum, text: "{0} has an unsupported value"},
		{tag: "lockerid", fn: validateLockerID, text: "{0} must not contain '/', '?', '#' or surrounding spaces"},
		{tag: "flatjson", fn: validateFlatJSON, text: "{0} values must be strings, numbers or booleans"},
	}

	for _, rule := range rules {
		validate.RegisterValidation(rule.tag, rule.fn)

		text := rule.text
		validate.RegisterTranslation(rule.tag, enTrans,
			func(ut ut.Translator) error {
				return ut.Add(rule.tag, text, false)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				t, err := ut.T(fe.Tag(), fe.Field())
				if err != nil {
					slog.Warn("warning: error translating", "FieldError", fe, "error", err)
					return fe.Error()
				}
				return t
			},
		)
	}
}
