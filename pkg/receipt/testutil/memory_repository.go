package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"riocaja-smart-backend/domain"
	"riocaja-smart-backend/entities"
)

// MemoryRepository is an in-memory receipt store for tests. Set Err to make
// every operation fail with it.
type MemoryRepository struct {
	mu       sync.Mutex
	receipts []entities.Receipt
	clock    time.Time

	Err error
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		clock: time.Date(2025, 4, 25, 8, 0, 0, 0, time.UTC),
	}
}

func (m *MemoryRepository) ListAll(ctx context.Context) ([]*entities.Receipt, error) {
	return m.list(func(*entities.Receipt) bool { return true })
}

func (m *MemoryRepository) ListByDate(ctx context.Context, date string) ([]*entities.Receipt, error) {
	return m.list(func(r *entities.Receipt) bool { return r.Date == date })
}

func (m *MemoryRepository) FindByTransaction(ctx context.Context, transactionNumber string) (*entities.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.receipts {
		if m.receipts[i].TransactionNumber == transactionNumber {
			found := m.receipts[i]
			found.ApplyReadDefaults()
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MemoryRepository) Create(ctx context.Context, receipt *entities.Receipt) (*entities.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	for _, r := range m.receipts {
		if r.TransactionNumber == receipt.TransactionNumber {
			return nil, domain.ErrDuplicateTransaction
		}
	}

	// one second per insert keeps created_at strictly ordered
	m.clock = m.clock.Add(time.Second)
	receipt.ID = uuid.New()
	receipt.CreatedAt = m.clock
	m.receipts = append(m.receipts, *receipt)
	return receipt, nil
}

func (m *MemoryRepository) DeleteByTransaction(ctx context.Context, transactionNumber string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return false, m.Err
	}
	for i, r := range m.receipts {
		if r.TransactionNumber == transactionNumber {
			m.receipts = append(m.receipts[:i], m.receipts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Seed stores receipts as given, bypassing the clock and the duplicate check.
func (m *MemoryRepository) Seed(receipts ...entities.Receipt) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.receipts = append(m.receipts, receipts...)
}

func (m *MemoryRepository) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.receipts)
}

func (m *MemoryRepository) list(match func(*entities.Receipt) bool) ([]*entities.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	result := []*entities.Receipt{}
	for i := range m.receipts {
		r := m.receipts[i]
		r.ApplyReadDefaults()
		if match(&r) {
			result = append(result, &r)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
