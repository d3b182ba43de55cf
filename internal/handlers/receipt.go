package handlers

import (
	"errors"
	"fmt"
	"log"

	"payport/internal/services/receipt"
	"payport/internal/services/transaction"
	"payport/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ReceiptHandler struct {
	transactionService transaction.Service
	receiptService     receipt.Service
}

func NewReceiptHandler(transactionService transaction.Service, receiptService receipt.Service) *ReceiptHandler {
	return &ReceiptHandler{
		transactionService: transactionService,
		receiptService:     receiptService,
	}
}

// DownloadReceipt renders the record's PDF and serves it as an attachment
// named Receipt_<transactionId>.pdf. An unknown id yields a JSON 404, not an
// empty document.
func (h *ReceiptHandler) DownloadReceipt(c *fiber.Ctx) error {
	record, err := h.transactionService.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			return utils.NotFound(c, "Transaction not found")
		}
		log.Printf("failed to get transaction for receipt: %v", err)
		return utils.InternalError(c, "Failed to fetch transaction")
	}

	doc, err := h.receiptService.Render(*record)
	if err != nil {
		log.Printf("failed to render receipt: %v", err)
		return utils.InternalError(c, "Failed to generate receipt")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, h.receiptService.Filename(*record)))
	return c.Send(doc)
}
