package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"

	"github.com/wicaksn/otpgate/internal/pkg/goerror"
	"github.com/wicaksn/otpgate/internal/pkg/strcase"
)

// mobileRegex accepts digits with an optional leading plus. Length and
// country-code shape are not enforced; short local numbers stay valid.
var mobileRegex = regexp.MustCompile(`^\+?[0-9]+$`)

// V10 is a Validator backed by go-playground/validator with English
// translations and the custom "mobile" rule.
type V10 struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewV10 builds the validator, registers translations, the json tag name
// resolver, and custom rules.
func NewV10() (*V10, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, errors.New("english translator not found")
	}

	if err := entrans.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			// No json tag: derive the wire name from the Go field name.
			return strcase.ToCamel(strcase.ToSnake(fld.Name))
		}
		return name
	})

	if err := validate.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobileRegex.MatchString(fl.Field().String())
	}); err != nil {
		return nil, err
	}

	if err := validate.RegisterTranslation("mobile", trans,
		func(ut ut.Translator) error {
			return ut.Add("mobile", "{0} must be a valid mobile number", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, err := ut.T("mobile", fe.Field())
			if err != nil {
				return fe.Field() + " must be a valid mobile number"
			}
			return msg
		},
	); err != nil {
		return nil, err
	}

	return &V10{validate: validate, trans: trans}, nil
}

// Validate checks the struct and returns a goerror validation error carrying
// a field-to-message map when any rule fails.
func (v *V10) Validate(data any) error {
	err := v.validate.Struct(data)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return goerror.NewInvalidInput(err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Translate(v.trans)
	}

	return goerror.NewValidationFields("Validation Error", fields)
}
