// Package display holds presentation lookups for wallet data: category and
// account type labels and colors, plus currency and date formatting.
package display

import "wallet/internal/models"

// OtherCategory is the bucket used for unknown category tags.
const OtherCategory = "otros"

// Option is a selectable value with its display label and badge color.
type Option struct {
	Value string
	Label string
	Color string
}

var categories = []Option{
	{Value: "trabajo", Label: "Trabajo", Color: "#4CAF50"},
	{Value: "comida", Label: "Comida", Color: "#FF9800"},
	{Value: "transporte", Label: "Transporte", Color: "#2196F3"},
	{Value: "inversiones", Label: "Inversiones", Color: "#9C27B0"},
	{Value: "entretenimiento", Label: "Entretenimiento", Color: "#E91E63"},
	{Value: "salud", Label: "Salud", Color: "#00BCD4"},
	{Value: "educación", Label: "Educación", Color: "#795548"},
	{Value: OtherCategory, Label: "Otros", Color: "#9E9E9E"},
}

var transactionTypes = []Option{
	{Value: string(models.TransactionTypeExpense), Label: "Gasto", Color: "#F44336"},
	{Value: string(models.TransactionTypeIncome), Label: "Ingreso", Color: "#4CAF50"},
}

var accountTypes = map[models.AccountType]Option{
	models.AccountTypeGeneral:    {Value: string(models.AccountTypeGeneral), Label: "General", Color: "#2196F3"},
	models.AccountTypeInvestment: {Value: string(models.AccountTypeInvestment), Label: "Inversiones", Color: "#4CAF50"},
	models.AccountTypeExpenses:   {Value: string(models.AccountTypeExpenses), Label: "Gastos", Color: "#FF9800"},
}

const unknownColor = "#9E9E9E"

// Categories returns the selectable categories in display order.
func Categories() []Option {
	return append([]Option(nil), categories...)
}

// TransactionTypes returns the selectable transaction types in display order.
func TransactionTypes() []Option {
	return append([]Option(nil), transactionTypes...)
}

func lookupCategory(key string) (Option, bool) {
	for _, c := range categories {
		if c.Value == key {
			return c, true
		}
	}
	return Option{}, false
}

// CategoryLabel returns the display name of a category tag. Unknown tags are
// shown as-is.
func CategoryLabel(key string) string {
	if c, ok := lookupCategory(key); ok {
		return c.Label
	}
	return key
}

// CategoryColor returns the badge color of a category tag, falling back to
// the "otros" color.
func CategoryColor(key string) string {
	if c, ok := lookupCategory(key); ok {
		return c.Color
	}
	c, _ := lookupCategory(OtherCategory)
	return c.Color
}

// AccountTypeLabel returns the display name of an account type, or the raw
// type when unknown.
func AccountTypeLabel(t models.AccountType) string {
	if o, ok := accountTypes[t]; ok {
		return o.Label
	}
	return string(t)
}

// AccountTypeColor returns the badge color of an account type.
func AccountTypeColor(t models.AccountType) string {
	if o, ok := accountTypes[t]; ok {
		return o.Color
	}
	return unknownColor
}

// AmountColor is green for income and red for expenses.
func AmountColor(t models.TransactionType) string {
	if t == models.TransactionTypeIncome {
		return "#4CAF50"
	}
	return "#F44336"
}
