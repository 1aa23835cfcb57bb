package receipt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"riocaja-smart-backend/domain"
	"riocaja-smart-backend/entities"
)

const defaultOperationTimeout = 5 * time.Second

type (
	ReceiptRepository interface {
		ListAll(ctx context.Context) ([]*entities.Receipt, error)
		ListByDate(ctx context.Context, date string) ([]*entities.Receipt, error)
		FindByTransaction(ctx context.Context, transactionNumber string) (*entities.Receipt, error)
		Create(ctx context.Context, receipt *entities.Receipt) (*entities.Receipt, error)
		DeleteByTransaction(ctx context.Context, transactionNumber string) (bool, error)
	}

	receiptRepository struct {
		db      *gorm.DB
		timeout time.Duration
		now     func() time.Time
	}
)

// NewReceiptRepository expects db to be opened with TranslateError enabled
// so unique index violations come back as gorm.ErrDuplicatedKey.
func NewReceiptRepository(db *gorm.DB, timeout time.Duration) ReceiptRepository {
	if timeout <= 0 {
		timeout = defaultOperationTimeout
	}
	return &receiptRepository{
		db:      db,
		timeout: timeout,
		now:     time.Now,
	}
}

func (r *receiptRepository) ListAll(ctx context.Context) ([]*entities.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var receipts []*entities.Receipt
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&receipts).Error; err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	return receipts, nil
}

func (r *receiptRepository) ListByDate(ctx context.Context, date string) ([]*entities.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var receipts []*entities.Receipt
	if err := r.db.WithContext(ctx).
		Where("receipt_date = ?", date).
		Order("created_at DESC").
		Find(&receipts).Error; err != nil {
		return nil, fmt.Errorf("list receipts for %s: %w", date, err)
	}
	return receipts, nil
}

func (r *receiptRepository) FindByTransaction(ctx context.Context, transactionNumber string) (*entities.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var receipt entities.Receipt
	if err := r.db.WithContext(ctx).
		Where("transaction_number = ?", transactionNumber).
		First(&receipt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find receipt %s: %w", transactionNumber, err)
	}
	return &receipt, nil
}

func (r *receiptRepository) Create(ctx context.Context, receipt *entities.Receipt) (*entities.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	receipt.CreatedAt = r.now()
	if err := r.db.WithContext(ctx).Create(receipt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateTransaction
		}
		return nil, fmt.Errorf("create receipt %s: %w", receipt.TransactionNumber, err)
	}
	return receipt, nil
}

func (r *receiptRepository) DeleteByTransaction(ctx context.Context, transactionNumber string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result := r.db.WithContext(ctx).
		Where("transaction_number = ?", transactionNumber).
		Delete(&entities.Receipt{})
	if result.Error != nil {
		return false, fmt.Errorf("delete receipt %s: %w", transactionNumber, result.Error)
	}
	return result.RowsAffected == 1, nil
}
