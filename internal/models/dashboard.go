package models

// DashboardStats are the counters shown on the admin dashboard. They are
// recomputed from the full record list on every request; nothing is persisted.
type DashboardStats struct {
	TotalTransactions int     `json:"totalTransactions"`
	PendingPayments   int     `json:"pendingPayments"`
	VerifiedPayments  int     `json:"verifiedPayments"`
	TotalAmount       float64 `json:"totalAmount"`
}

// UserEntry is one row of the dashboard's user panel. It is a projection of
// the transaction list, not an independent store (see DESIGN.md).
type UserEntry struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
}
