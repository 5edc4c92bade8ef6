package validation

import (
	"reflect"
	"strings"
	"sync"

	"finance-tracker/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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

	// decimal values validate as strings, uuids as strings with uuid.Nil treated as empty
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterCustomTypeFunc(uuidValue, uuid.UUID{})

	_ = v.RegisterValidation("transaction_amount", validateTransactionAmount)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("purpose", validatePurpose)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func uuidValue(field reflect.Value) interface{} {
	if id, ok := field.Interface().(uuid.UUID); ok {
		if id == uuid.Nil {
			return ""
		}
		return id.String()
	}
	return nil
}

// validateTransactionAmount accepts decimals of at least 0.01 with at most 2 decimal places
func validateTransactionAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}

	if amount.LessThan(models.MinTransactionValue) {
		return false
	}

	return amount.Equal(amount.Truncate(2))
}

// validateTransactionType accepts expense or income, case-insensitive
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.ParseTransactionType(fl.Field().String()).IsValid()
}

// validatePurpose accepts expense, income or both, case-insensitive
func validatePurpose(fl validator.FieldLevel) bool {
	return models.ParsePurpose(fl.Field().String()).IsValid()
}
