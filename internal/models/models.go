// Package models defines the wallet domain types shared by the data layer,
// the seed dataset and the reference API server.
package models

import "github.com/shopspring/decimal"

func init() {
	// The wallet API carries balances and amounts as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// AllModels lists the GORM models in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&Account{},
		&Transaction{},
	}
}
