package handlers

import (
	"errors"
	"log"

	"payport/internal/services/payment"
	"payport/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	paymentService payment.Service
}

func NewPaymentHandler(paymentService payment.Service) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// SubmitPayment runs one submission through the simulated gateway. Field
// validation failures come back as a per-field error map with status 400.
func (h *PaymentHandler) SubmitPayment(c *fiber.Ctx) error {
	var req payment.Request
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	record, err := h.paymentService.Submit(c.Context(), req)
	if err != nil {
		var vErr *payment.ValidationError
		if errors.As(err, &vErr) {
			return utils.Respond(c, fiber.StatusBadRequest, fiber.Map{
				"errors": vErr.Fields,
			})
		}
		log.Printf("payment submission failed: %v", err)
		return utils.InternalError(c, "Payment processing failed")
	}

	return utils.Respond(c, fiber.StatusCreated, fiber.Map{
		"message":     "Payment successful",
		"transaction": record,
	})
}

// GetPaymentHistory returns the stored list, newest first.
func (h *PaymentHandler) GetPaymentHistory(c *fiber.Ctx) error {
	history, err := h.paymentService.History(c.Context())
	if err != nil {
		log.Printf("failed to load payment history: %v", err)
		return utils.InternalError(c, "Failed to fetch payment history")
	}
	return utils.Success(c, fiber.Map{"transactions": history})
}

// LookupAccountName backs the form's account-name auto-fill. A number that is
// not exactly 10 digits resolves to an empty name rather than an error.
func (h *PaymentHandler) LookupAccountName(c *fiber.Ctx) error {
	name := h.paymentService.LookupAccountName(c.Params("accountNumber"))
	return utils.Success(c, fiber.Map{"accountName": name})
}
