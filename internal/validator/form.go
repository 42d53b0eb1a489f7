package validator

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"wallet/internal/models"
)

// FormErrors maps a form field name to a user-facing message. An empty map
// means the form is valid.
type FormErrors map[string]string

// formFields is the validated view of a TransactionFormData, trimmed.
type formFields struct {
	Amount      string `json:"amount" validate:"required,positive_decimal"`
	Description string `json:"description" validate:"required,min=2"`
	Category    string `json:"category" validate:"required"`
	Type        string `json:"type" validate:"required,transaction_type"`
}

var messages = map[string]map[string]string{
	"amount": {
		"required":         "Amount is required",
		"positive_decimal": "Amount must be a number greater than 0",
	},
	"description": {
		"required": "Description is required",
		"min":      "Description must be at least 2 characters",
	},
	"category": {
		"required": "Category is required",
	},
	"type": {
		"required":         "Type is required",
		"transaction_type": "Type must be income or expense",
	},
}

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	registerRules(v)
	return v
}

// NewForm returns a blank form for accountID with the defaults the add
// transaction screen starts from: an expense dated today.
func NewForm(accountID string, now time.Time) models.TransactionFormData {
	return models.TransactionFormData{
		AccountID: accountID,
		Type:      models.TransactionTypeExpense,
		Date:      now.UTC().Format(models.DateLayout),
	}
}

// ValidateForm checks a transaction form before it is submitted. Surrounding
// whitespace is ignored.
func ValidateForm(form models.TransactionFormData) FormErrors {
	fields := formFields{
		Amount:      strings.TrimSpace(form.Amount),
		Description: strings.TrimSpace(form.Description),
		Category:    strings.TrimSpace(form.Category),
		Type:        strings.TrimSpace(string(form.Type)),
	}

	errs := FormErrors{}
	err := formValidator.Struct(fields)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["form"] = err.Error()
		return errs
	}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		msg, ok := messages[field][fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		errs[field] = msg
	}
	return errs
}
