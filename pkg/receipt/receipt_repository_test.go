package receipt

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"riocaja-smart-backend/domain"
	"riocaja-smart-backend/entities"
)

var (
	testDB     *gorm.DB
	testDBErr  error
	testDBOnce sync.Once
)

// getTestDB connects to TEST_DATABASE_URL and resets the receipts table.
func getTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testDBOnce.Do(func() {
		testDB, testDBErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Silent),
		})
		if testDBErr == nil {
			testDBErr = testDB.AutoMigrate(&entities.Receipt{})
		}
	})
	require.NoError(t, testDBErr)
	require.NoError(t, testDB.Exec("DELETE FROM receipts").Error)
	return testDB
}

func newTestRepository(t *testing.T) *receiptRepository {
	repo := NewReceiptRepository(getTestDB(t), time.Second).(*receiptRepository)

	clock := time.Date(2025, 4, 25, 8, 0, 0, 0, time.UTC)
	repo.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return repo
}

func testReceipt(transactionNumber, date, receiptType string, value float64) *entities.Receipt {
	return &entities.Receipt{
		Bank:              entities.DefaultBank,
		Date:              date,
		Time:              "10:30:45",
		Type:              receiptType,
		TransactionNumber: transactionNumber,
		ControlNumber:     "987654321",
		Location:          "Comercial XYZ",
		Correspondent:     "12345",
		TotalValue:        value,
	}
}

func TestReceiptRepository_CreateAndFind(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testReceipt("123", "25/04/2025", "A", 45.99))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, time.Date(2025, 4, 25, 8, 0, 1, 0, time.UTC), created.CreatedAt.UTC())

	found, err := repo.FindByTransaction(ctx, "123")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, 45.99, found.TotalValue)

	missing, err := repo.FindByTransaction(ctx, "999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestReceiptRepository_UniqueTransactionNumber(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, testReceipt("123", "25/04/2025", "A", 1))
	require.NoError(t, err)

	_, err = repo.Create(ctx, testReceipt("123", "25/04/2025", "A", 1))
	assert.ErrorIs(t, err, domain.ErrDuplicateTransaction)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestReceiptRepository_ListByDate(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, r := range []*entities.Receipt{
		testReceipt("1", "25/04/2025", "A", 1),
		testReceipt("2", "2025-04-25", "A", 1),
		testReceipt("3", "25/04/2025", "A", 1),
	} {
		_, err := repo.Create(ctx, r)
		require.NoError(t, err)
	}

	receipts, err := repo.ListByDate(ctx, "25/04/2025")
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	assert.Equal(t, "3", receipts[0].TransactionNumber)
	assert.Equal(t, "1", receipts[1].TransactionNumber)
}

func TestReceiptRepository_DeleteByTransaction(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, testReceipt("1", "25/04/2025", "A", 1))
	require.NoError(t, err)

	deleted, err := repo.DeleteByTransaction(ctx, "1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteByTransaction(ctx, "1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestReceiptRepository_ReadDefaults(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, testReceipt("1", "25/04/2025", "A", 1))
	require.NoError(t, err)
	require.NoError(t, repo.db.Exec("UPDATE receipts SET receipt_type = '', bank = ''").Error)

	found, err := repo.FindByTransaction(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, entities.UnknownReceiptType, found.Type)
	assert.Equal(t, entities.DefaultBank, found.Bank)
}
