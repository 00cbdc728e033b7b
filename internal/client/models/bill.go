package models

import "encoding/json"

// Bill is an expense with a receipt image. Amount arrives as a decimal string.
type Bill struct {
	ID          int         `json:"id"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	Date        string      `json:"date"`
	Image       string      `json:"image"`
}
