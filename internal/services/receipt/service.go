// Package receipt renders one transaction record into the downloadable PDF
// document. Rendering is lazy (on request) and cached per transaction id.
package receipt

import (
	"bytes"
	"fmt"

	"payport/internal/models"
	"payport/internal/repositories/cache"

	"github.com/jung-kurt/gofpdf"
)

type Service interface {
	Render(record models.TransactionRecord) ([]byte, error)
	Filename(record models.TransactionRecord) string
	Invalidate(transactionID string)
}

type service struct {
	cache *cache.CacheService
}

// NewService creates a new receipt renderer. The cache may be nil, in which
// case every request renders from scratch.
func NewService(c *cache.CacheService) Service {
	return &service{cache: c}
}

// Render produces the receipt PDF for a record.
func (s *service) Render(record models.TransactionRecord) ([]byte, error) {
	if s.cache != nil {
		if doc, ok := s.cache.GetBytes(cacheKey(record.TransactionID)); ok {
			return doc, nil
		}
	}

	doc, err := buildPDF(record)
	if err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}

	if s.cache != nil {
		s.cache.SetBytes(cacheKey(record.TransactionID), doc)
	}
	return doc, nil
}

// Filename names the download after the transaction id.
func (s *service) Filename(record models.TransactionRecord) string {
	return fmt.Sprintf("Receipt_%s.pdf", record.TransactionID)
}

// Invalidate drops the cached document for a record, if any.
func (s *service) Invalidate(transactionID string) {
	if s.cache != nil {
		s.cache.Del(cacheKey(transactionID))
	}
}

func cacheKey(transactionID string) string {
	return "receipt:" + transactionID
}

// buildPDF lays out the fixed A4 document: header, label/value rows, the
// decorative PAID stamp and the footer line.
func buildPDF(record models.TransactionRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(25, 25, 25)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, "Payment Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	rows := []struct {
		label, value string
	}{
		{"Transaction ID:", record.TransactionID},
		{"Account Number:", record.AccountNumber},
		{"Bank:", record.Bank},
		{"Account Name:", record.AccountName},
		// The core fonts have no naira glyph, hence the NGN prefix.
		{"Amount Paid:", fmt.Sprintf("NGN %.2f", record.AmountValue())},
		{"Transaction Date:", record.Timestamp},
	}

	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(60, 9, row.label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 9, row.value, "", 1, "R", false, 0, "")
		pdf.Ln(2)
	}

	drawPaidStamp(pdf)

	pdf.Ln(30)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 8, "Thank you for your payment!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawPaidStamp draws the tilted green PAID mark that the original receipt
// carried as a static image.
func drawPaidStamp(pdf *gofpdf.Fpdf) {
	x, y := 85.0, pdf.GetY()+30

	pdf.TransformBegin()
	pdf.TransformRotate(12, x+20, y)
	pdf.SetDrawColor(46, 125, 50)
	pdf.SetLineWidth(1.2)
	pdf.Rect(x-5, y-11, 50, 16, "D")
	pdf.SetTextColor(46, 125, 50)
	pdf.SetFont("Helvetica", "B", 28)
	pdf.Text(x, y, "PAID")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(y + 15)
}
