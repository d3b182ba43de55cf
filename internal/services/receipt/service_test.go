package receipt

import (
	"testing"
	"time"

	"payport/internal/models"
	"payport/internal/repositories/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() models.TransactionRecord {
	return models.TransactionRecord{
		TransactionID: "TXN-1234567890",
		AccountNumber: "1234567890",
		Bank:          "GTBank",
		AccountName:   "John Doe",
		UserName:      "Ada",
		Email:         "a@b.com",
		Amount:        "500",
		Timestamp:     "3/1/2025, 4:05:06 PM",
		Status:        models.StatusPending,
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	svc := NewService(nil)

	doc, err := svc.Render(sampleRecord())
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]))
}

func TestRender_FractionalAmountKeepsItsCents(t *testing.T) {
	svc := NewService(nil)

	record := sampleRecord()
	record.Amount = "499.99"
	doc, err := svc.Render(record)
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}

func TestRender_NonNumericAmountStillRenders(t *testing.T) {
	svc := NewService(nil)

	record := sampleRecord()
	record.Amount = "garbage"
	doc, err := svc.Render(record)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(doc[:4]))
}

func TestFilename(t *testing.T) {
	svc := NewService(nil)
	assert.Equal(t, "Receipt_TXN-1234567890.pdf", svc.Filename(sampleRecord()))
}

func TestRender_CachesByTransactionID(t *testing.T) {
	c := cache.NewCacheService(1<<20, time.Minute)
	t.Cleanup(c.Close)
	svc := NewService(c)

	record := sampleRecord()
	first, err := svc.Render(record)
	require.NoError(t, err)

	// cache writes are buffered; flush before looking
	c.Wait()

	cached, ok := c.GetBytes(cacheKey(record.TransactionID))
	require.True(t, ok, "rendered document should be cached")
	assert.Equal(t, first, cached)

	svc.Invalidate(record.TransactionID)
	c.Wait()
	_, ok = c.GetBytes(cacheKey(record.TransactionID))
	assert.False(t, ok, "invalidation drops the cached document")
}
