package testutil

import (
	"context"

	"riocaja-smart-backend/entities"
)

// FaultyRepository wraps a MemoryRepository to reproduce storage outcomes a
// healthy store rarely produces.
type FaultyRepository struct {
	*MemoryRepository

	// DropDeletes makes DeleteByTransaction report that nothing was removed.
	DropDeletes bool
	// HideExisting makes FindByTransaction miss, the way a lookup does when a
	// concurrent insert of the same transaction number has not committed yet.
	HideExisting bool
}

func NewFaultyRepository() *FaultyRepository {
	return &FaultyRepository{MemoryRepository: NewMemoryRepository()}
}

func (f *FaultyRepository) FindByTransaction(ctx context.Context, transactionNumber string) (*entities.Receipt, error) {
	if f.HideExisting {
		return nil, nil
	}
	return f.MemoryRepository.FindByTransaction(ctx, transactionNumber)
}

func (f *FaultyRepository) DeleteByTransaction(ctx context.Context, transactionNumber string) (bool, error) {
	if f.DropDeletes {
		return false, nil
	}
	return f.MemoryRepository.DeleteByTransaction(ctx, transactionNumber)
}
