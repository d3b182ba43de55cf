package validation

import "payport/internal/models"

// PaymentInput is the submitted form as seen by validation.
type PaymentInput struct {
	AccountNumber string
	Bank          string
	AccountName   string
	Amount        string
	UserName      string
	Email         string
}

// ValidatePayment applies the payment form's field rules and returns the
// per-field error map. An empty map means the input is acceptable.
func ValidatePayment(in PaymentInput) map[string]string {
	v := New()

	v.ExactDigits("accountNumber", in.AccountNumber, 10)
	v.Required("bank", in.Bank)
	if in.Bank != "" {
		v.Check(models.IsSupportedBank(in.Bank), "bank", "must be a supported bank")
	}
	v.Required("accountName", in.AccountName)
	v.Required("amount", in.Amount)
	if in.Amount != "" {
		v.Numeric("amount", in.Amount)
	}
	v.Required("userName", in.UserName)
	v.Required("email", in.Email)
	if in.Email != "" {
		v.Email("email", in.Email)
	}

	return v.Errors
}
