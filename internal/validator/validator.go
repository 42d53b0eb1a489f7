// Package validator provides the custom validation rules used by the
// transaction form and by Gin's binding engine.
package validator

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"wallet/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerRules(v)
	}
}

func registerRules(v *validator.Validate) {
	// Decimals are validated through their string form.
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.RegisterValidation("iso4217", validateISO4217)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("positive_decimal", validatePositiveDecimal)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func validateISO4217(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if code != strings.ToUpper(code) {
		return false
	}
	_, err := currency.ParseISO(code)
	return err == nil
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).Valid()
}

func validateAccountType(fl validator.FieldLevel) bool {
	return models.AccountType(fl.Field().String()).Valid()
}

func validatePositiveDecimal(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	return d.IsPositive()
}
