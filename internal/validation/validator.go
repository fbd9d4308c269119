package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	upiIDPattern     = regexp.MustCompile(`^[a-zA-Z0-9._-]{2,256}@[a-zA-Z][a-zA-Z0-9.-]{1,64}$`)
	categoryPattern  = regexp.MustCompile(`^[A-Za-z][A-Za-z &/-]{0,49}$`)
	digitsOnlyRegexp = regexp.MustCompile(`^\d+$`)
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	_ = v.RegisterValidation("upi_id", validateUPIID)
	_ = v.RegisterValidation("ledger_category", validateCategory)
	_ = v.RegisterValidation("pin", validatePINFormat)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateDecimalAmount accepts a non-negative decimal with at most two fraction digits
func validateDecimalAmount(fl validator.FieldLevel) bool {
	var amount decimal.Decimal
	switch fl.Field().Kind() {
	case reflect.String:
		parsed, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		if err != nil {
			return false
		}
		amount = parsed
	case reflect.Float32, reflect.Float64:
		amount = decimal.NewFromFloat(fl.Field().Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		amount = decimal.NewFromInt(fl.Field().Int())
	default:
		return false
	}

	if amount.IsNegative() {
		return false
	}
	return amount.Equal(amount.Round(2))
}

// validateUPIID validates a virtual payment address of the form handle@bank
func validateUPIID(fl validator.FieldLevel) bool {
	return upiIDPattern.MatchString(fl.Field().String())
}

// validateCategory allows letters, spaces and a few separators
func validateCategory(fl validator.FieldLevel) bool {
	return categoryPattern.MatchString(fl.Field().String())
}

// validatePINFormat checks shape only. Strength rules live in the PIN service.
func validatePINFormat(fl validator.FieldLevel) bool {
	pin := fl.Field().String()
	return len(pin) >= 4 && len(pin) <= 8 && digitsOnlyRegexp.MatchString(pin)
}
