package handlers

import (
	"errors"
	"log"

	"payport/internal/services/transaction"
	"payport/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	transactionService transaction.Service
}

func NewTransactionHandler(transactionService transaction.Service) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// GetTransaction returns one record by id, for the receipt preview.
func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	record, err := h.transactionService.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			return utils.NotFound(c, "Transaction not found")
		}
		log.Printf("failed to get transaction: %v", err)
		return utils.InternalError(c, "Failed to fetch transaction")
	}
	return utils.Success(c, fiber.Map{"transaction": record})
}

// GetAllTransactions returns the full list for the admin table.
func (h *TransactionHandler) GetAllTransactions(c *fiber.Ctx) error {
	records, err := h.transactionService.List(c.Context())
	if err != nil {
		log.Printf("failed to list transactions: %v", err)
		return utils.InternalError(c, "Failed to fetch transactions")
	}
	return utils.Success(c, fiber.Map{"transactions": records})
}

// VerifyTransaction marks a record verified. Verifying an unknown or already
// verified id succeeds without changing anything.
func (h *TransactionHandler) VerifyTransaction(c *fiber.Ctx) error {
	if err := h.transactionService.Verify(c.Context(), c.Params("id")); err != nil {
		log.Printf("failed to verify transaction: %v", err)
		return utils.InternalError(c, "Failed to verify transaction")
	}
	return utils.Success(c, fiber.Map{"message": "Transaction verified"})
}
