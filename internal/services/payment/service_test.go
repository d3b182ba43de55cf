package payment

import (
	"context"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"payport/internal/models"
	"payport/internal/repositories"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var txnIDPattern = regexp.MustCompile(`^TXN-\d{10}$`)

func newTestRepo(t *testing.T) repositories.RecordRepository {
	t.Helper()
	opts := badger.DefaultOptions(t.TempDir())
	opts.Logger = nil
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repositories.NewRecordRepository(db)
}

func newTestService(t *testing.T) (Service, repositories.RecordRepository) {
	repo := newTestRepo(t)
	svc := NewService(repo, rand.New(rand.NewSource(1)), Config{ProcessingDelay: 0})
	return svc, repo
}

func validRequest() Request {
	return Request{
		AccountNumber: "1234567890",
		Bank:          "GTBank",
		AccountName:   "John Doe",
		Amount:        "500",
		UserName:      "Ada",
		Email:         "a@b.com",
	}
}

func TestSubmit_AppendsRecordAtFront(t *testing.T) {
	svc, repo := newTestService(t)

	first, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Amount = "750"
	second, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	history, err := repo.LoadTransactions()
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.TransactionID, history[0].TransactionID, "newest record goes first")
	assert.Equal(t, first.TransactionID, history[1].TransactionID)
}

func TestSubmit_RecordShape(t *testing.T) {
	svc, _ := newTestService(t)

	record, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Regexp(t, txnIDPattern, record.TransactionID)
	assert.Equal(t, models.StatusPending, record.Status)
	assert.Equal(t, "500", record.Amount, "amount stays textual")
	assert.Equal(t, "1234567890", record.AccountNumber)
	assert.NotEmpty(t, record.Timestamp)
}

func TestSubmit_ValidationFailureBlocksPersistence(t *testing.T) {
	svc, repo := newTestService(t)

	req := validRequest()
	req.AccountNumber = "123"
	req.Email = "nope"

	_, err := svc.Submit(context.Background(), req)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "accountNumber")
	assert.Contains(t, vErr.Fields, "email")

	history, loadErr := repo.LoadTransactions()
	require.NoError(t, loadErr)
	assert.Empty(t, history, "rejected submission must not persist")
}

func TestSubmit_CancelledDuringProcessing(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewService(repo, rand.New(rand.NewSource(1)), Config{ProcessingDelay: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := svc.Submit(ctx, validRequest())
	assert.ErrorIs(t, err, ErrProcessingAborted)

	history, loadErr := repo.LoadTransactions()
	require.NoError(t, loadErr)
	assert.Empty(t, history)
}

func TestLookupAccountName(t *testing.T) {
	svc, _ := newTestService(t)

	t.Run("ten digit number picks from the pool", func(t *testing.T) {
		name := svc.LookupAccountName("1234567890")
		assert.Contains(t, models.AccountNames, name)
	})

	t.Run("short number resolves to nothing", func(t *testing.T) {
		assert.Empty(t, svc.LookupAccountName("12345"))
	})

	t.Run("non digits resolve to nothing", func(t *testing.T) {
		assert.Empty(t, svc.LookupAccountName("12345678ab"))
	})
}

func TestHistory_SurvivesRestart(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	// A fresh service over the same repository sees the same history.
	again := NewService(repo, rand.New(rand.NewSource(2)), Config{ProcessingDelay: 0})
	history, err := again.History(context.Background())
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
