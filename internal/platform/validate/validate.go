// Package validate owns the process-wide go-playground validator with english
// translations and json tag names in messages
package validate

import (
	"reflect"
	"strings"
	"sync"

	perr "internhasha/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldLevel aliases validator.FieldLevel
type FieldLevel = validator.FieldLevel

// FieldError aliases validator.FieldError
type FieldError = validator.FieldError

// ValidationErrors aliases validator.ValidationErrors
type ValidationErrors = validator.ValidationErrors

// Svc holds the validator singleton and its translator
type Svc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	once sync.Once
	svc  *Svc
)

// Get returns the validator singleton, initializing on first use
func Get() *Svc {
	once.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		short(v, trans, "min", "{0} must be at least {1}", true)
		short(v, trans, "max", "{0} must be at most {1}", true)
		short(v, trans, "position", "{0} must be a known position", false)
		short(v, trans, "domain", "{0} must be a known company domain", false)

		svc = &Svc{Validator: v, Translator: trans}
	})
	return svc
}

// Struct validates s and returns the raw validator error
func Struct(s any) error { return Get().Validator.Struct(s) }

// Check validates s and returns a coded validation error naming the first bad field
func Check(s any) error {
	if err := Struct(s); err != nil {
		field, msg := FieldAndMessage(err)
		return perr.WithField(perr.Wrap(err, perr.ErrorCodeValidation, msg), field)
	}
	return nil
}

// Register installs a custom tag on the singleton
func Register(tag string, fn validator.Func) error {
	return Get().Validator.RegisterValidation(tag, fn)
}

// FieldAndMessage returns the first failing field and its translated message
func FieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	if inv, ok := err.(*validator.InvalidValidationError); ok {
		return "", inv.Error()
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			return fe.Field(), fe.Translate(Get().Translator)
		}
	}
	return "", err.Error()
}

func short(v *validator.Validate, trans ut.Translator, tag, text string, param bool) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			if param {
				msg, _ := t.T(tag, fe.Field(), fe.Param())
				return msg
			}
			msg, _ := t.T(tag, fe.Field())
			return msg
		},
	)
}
