package payment

import "time"

// Request is a payment submission. Amount stays textual end to end; it is
// only parsed when aggregating.
type Request struct {
	AccountNumber string `json:"accountNumber"`
	Bank          string `json:"bank"`
	AccountName   string `json:"accountName"`
	Amount        string `json:"amount"`
	UserName      string `json:"userName"`
	Email         string `json:"email"`
}

// Config holds payment processing configuration.
type Config struct {
	// ProcessingDelay is how long the simulated gateway "thinks" before a
	// submission settles. A real gateway call would replace the wait without
	// touching the surrounding flow.
	ProcessingDelay time.Duration
}
