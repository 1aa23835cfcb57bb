package receipt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"

	"riocaja-smart-backend/domain"
	"riocaja-smart-backend/entities"
)

type (
	ReceiptService interface {
		GetAllReceipts(ctx context.Context) ([]domain.ReceiptResponse, error)
		GetReceiptsByDate(ctx context.Context, date string) ([]domain.ReceiptResponse, error)
		CreateReceipt(ctx context.Context, req domain.CreateReceiptRequest) (domain.ReceiptResponse, error)
		DeleteReceipt(ctx context.Context, transactionNumber string) error
		GenerateClosingReport(ctx context.Context, date string) (domain.ClosingReport, error)
		ExportClosingReport(ctx context.Context, date string) ([]byte, error)
	}

	receiptService struct {
		receiptRepository ReceiptRepository
	}
)

func NewReceiptService(receiptRepository ReceiptRepository) ReceiptService {
	return &receiptService{
		receiptRepository: receiptRepository,
	}
}

func (s *receiptService) GetAllReceipts(ctx context.Context) ([]domain.ReceiptResponse, error) {
	receipts, err := s.receiptRepository.ListAll(ctx)
	if err != nil {
		return nil, storageFailure("list receipts", err)
	}
	return toResponses(receipts), nil
}

func (s *receiptService) GetReceiptsByDate(ctx context.Context, date string) ([]domain.ReceiptResponse, error) {
	if strings.TrimSpace(date) == "" {
		return nil, domain.ErrInvalidDate
	}

	receipts, err := s.receiptRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, storageFailure("list receipts by date", err, "date", date)
	}
	return toResponses(receipts), nil
}

func (s *receiptService) CreateReceipt(ctx context.Context, req domain.CreateReceiptRequest) (domain.ReceiptResponse, error) {
	existing, err := s.receiptRepository.FindByTransaction(ctx, req.TransactionNumber)
	if err != nil {
		return domain.ReceiptResponse{}, storageFailure("find receipt", err, "transaction_number", req.TransactionNumber)
	}
	if existing != nil {
		return domain.ReceiptResponse{}, domain.ErrDuplicateTransaction
	}

	receipt := &entities.Receipt{
		Bank:              req.Bank,
		Date:              req.Date,
		Time:              req.Time,
		Type:              req.Type,
		TransactionNumber: req.TransactionNumber,
		ControlNumber:     req.ControlNumber,
		Location:          req.Location,
		AlternateDate:     req.AlternateDate,
		Correspondent:     req.Correspondent,
		AccountType:       req.AccountType,
		FullText:          req.FullText,
	}
	if receipt.Bank == "" {
		receipt.Bank = entities.DefaultBank
	}
	if receipt.Type == "" {
		receipt.Type = entities.DefaultReceiptType
	}
	if req.TotalValue != nil {
		receipt.TotalValue = *req.TotalValue
	}

	// the unique index still rejects a duplicate that raced past the lookup
	created, err := s.receiptRepository.Create(ctx, receipt)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateTransaction) {
			return domain.ReceiptResponse{}, err
		}
		return domain.ReceiptResponse{}, storageFailure("create receipt", err, "transaction_number", req.TransactionNumber)
	}

	log.Infow("receipt created", "transaction_number", created.TransactionNumber, "date", created.Date)
	return toResponse(created), nil
}

func (s *receiptService) DeleteReceipt(ctx context.Context, transactionNumber string) error {
	existing, err := s.receiptRepository.FindByTransaction(ctx, transactionNumber)
	if err != nil {
		return storageFailure("find receipt", err, "transaction_number", transactionNumber)
	}
	if existing == nil {
		return domain.ErrReceiptNotFound
	}

	deleted, err := s.receiptRepository.DeleteByTransaction(ctx, transactionNumber)
	if err != nil {
		return storageFailure("delete receipt", err, "transaction_number", transactionNumber)
	}
	if !deleted {
		return domain.ErrDeleteReceiptFailed
	}

	log.Infow("receipt deleted", "transaction_number", transactionNumber)
	return nil
}

func (s *receiptService) GenerateClosingReport(ctx context.Context, date string) (domain.ClosingReport, error) {
	_, report, err := s.closingReport(ctx, date)
	return report, err
}

func (s *receiptService) ExportClosingReport(ctx context.Context, date string) ([]byte, error) {
	receipts, report, err := s.closingReport(ctx, date)
	if err != nil {
		return nil, err
	}

	workbook, err := ClosingReportWorkbook(report, receipts)
	if err != nil {
		return nil, fmt.Errorf("export closing report for %s: %w", date, err)
	}
	return workbook, nil
}

func (s *receiptService) closingReport(ctx context.Context, date string) ([]*entities.Receipt, domain.ClosingReport, error) {
	if strings.TrimSpace(date) == "" {
		return nil, domain.ClosingReport{}, domain.ErrInvalidDate
	}

	receipts, err := s.receiptRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, domain.ClosingReport{}, storageFailure("closing report", err, "date", date)
	}
	return receipts, GenerateClosingReport(date, receipts), nil
}

// storageFailure logs the underlying cause and hides it behind
// ErrStorageUnavailable so handlers can map every storage fault the same way.
func storageFailure(op string, err error, keysAndValues ...interface{}) error {
	log.Errorw(op+" failed", append(keysAndValues, "error", err)...)
	return fmt.Errorf("%s: %w", op, domain.ErrStorageUnavailable)
}

func toResponses(receipts []*entities.Receipt) []domain.ReceiptResponse {
	response := make([]domain.ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		response = append(response, toResponse(r))
	}
	return response
}

func toResponse(r *entities.Receipt) domain.ReceiptResponse {
	return domain.ReceiptResponse{
		ID:                r.ID.String(),
		Bank:              r.Bank,
		Date:              r.Date,
		Time:              r.Time,
		Type:              r.Type,
		TransactionNumber: r.TransactionNumber,
		ControlNumber:     r.ControlNumber,
		Location:          r.Location,
		AlternateDate:     r.AlternateDate,
		Correspondent:     r.Correspondent,
		AccountType:       r.AccountType,
		TotalValue:        r.TotalValue,
		FullText:          r.FullText,
		CreatedAt:         r.CreatedAt,
	}
}
