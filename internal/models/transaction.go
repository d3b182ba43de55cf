package models

import "strconv"

// Transaction statuses
const (
	StatusPending  = "pending"
	StatusVerified = "verified"
)

// TransactionRecord is one simulated payment. The JSON tags are the persisted
// layout; amount and timestamp are stored as text exactly as submitted/created.
type TransactionRecord struct {
	TransactionID string `json:"transactionId"`
	AccountNumber string `json:"accountNumber"`
	Bank          string `json:"bank"`
	AccountName   string `json:"accountName"`
	UserName      string `json:"userName"`
	Email         string `json:"email"`
	Amount        string `json:"amount"`
	Timestamp     string `json:"timestamp"`
	Status        string `json:"status"`
}

// AmountValue parses the stored amount for arithmetic. A missing or
// non-numeric amount contributes zero rather than failing.
func (t *TransactionRecord) AmountValue() float64 {
	v, err := strconv.ParseFloat(t.Amount, 64)
	if err != nil {
		return 0
	}
	return v
}

// IsVerified reports whether the record has reached its terminal status.
func (t *TransactionRecord) IsVerified() bool {
	return t.Status == StatusVerified
}
