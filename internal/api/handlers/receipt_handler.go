package handlers

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"riocaja-smart-backend/domain"
	"riocaja-smart-backend/internal/api/presenters"
	"riocaja-smart-backend/pkg/receipt"
)

type (
	ReceiptHandler interface {
		GetReceipts(c *fiber.Ctx) error
		GetReceiptsByDate(c *fiber.Ctx) error
		CreateReceipt(c *fiber.Ctx) error
		DeleteReceipt(c *fiber.Ctx) error
		GetClosingReport(c *fiber.Ctx) error
	}

	receiptHandler struct {
		receiptService receipt.ReceiptService
		validator      *validator.Validate
	}
)

func NewReceiptHandler(receiptService receipt.ReceiptService, validator *validator.Validate) ReceiptHandler {
	return &receiptHandler{
		receiptService: receiptService,
		validator:      validator,
	}
}

func (h *receiptHandler) GetReceipts(c *fiber.Ctx) error {
	receipts, err := h.receiptService.GetAllReceipts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, readStatus(err), domain.MessageFailedGetReceipts, err)
	}

	return presenters.ListResponse(c, receipts, len(receipts), fiber.StatusOK, domain.MessageSuccessGetReceipts)
}

func (h *receiptHandler) GetReceiptsByDate(c *fiber.Ctx) error {
	date, err := dateParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReceipts, err)
	}

	receipts, err := h.receiptService.GetReceiptsByDate(c.Context(), date)
	if err != nil {
		return presenters.ErrorResponse(c, readStatus(err), domain.MessageFailedGetReceipts, err)
	}

	return presenters.ListResponse(c, receipts, len(receipts), fiber.StatusOK, domain.MessageSuccessGetReceipts)
}

func (h *receiptHandler) CreateReceipt(c *fiber.Ctx) error {
	req := new(domain.CreateReceiptRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReceipt, err)
	}

	res, err := h.receiptService.CreateReceipt(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateTransaction) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageDuplicateTransaction, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateReceipt, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateReceipt)
}

func (h *receiptHandler) DeleteReceipt(c *fiber.Ctx) error {
	transactionNumber, err := url.PathUnescape(c.Params("transaction_number"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteReceipt, err)
	}

	if err := h.receiptService.DeleteReceipt(c.Context(), transactionNumber); err != nil {
		if errors.Is(err, domain.ErrReceiptNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound,
				fmt.Sprintf("receipt with transaction number %s not found", transactionNumber), err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteReceipt, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteReceipt)
}

func (h *receiptHandler) GetClosingReport(c *fiber.Ctx) error {
	date, err := dateParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetClosingReport, err)
	}

	if c.Query("format") == "xlsx" {
		workbook, err := h.receiptService.ExportClosingReport(c.Context(), date)
		if err != nil {
			return presenters.ErrorResponse(c, readStatus(err), domain.MessageFailedGetClosingReport, err)
		}
		c.Attachment(closingReportFilename(date))
		c.Set(fiber.HeaderContentType, receipt.ClosingReportContentType)
		return c.Status(fiber.StatusOK).Send(workbook)
	}

	report, err := h.receiptService.GenerateClosingReport(c.Context(), date)
	if err != nil {
		return presenters.ErrorResponse(c, readStatus(err), domain.MessageFailedGetClosingReport, err)
	}

	return presenters.SuccessResponse(c, report, fiber.StatusOK, domain.MessageSuccessGetClosingReport)
}

// dateParam reads the wildcard date segment. Dates are dd/mm/yyyy, so clients
// may send them raw (25/04/2025) or escaped (25%2F04%2F2025).
func dateParam(c *fiber.Ctx) (string, error) {
	date, err := url.PathUnescape(c.Params("*"))
	if err != nil {
		return "", err
	}
	if date == "" {
		return "", domain.ErrInvalidDate
	}
	return date, nil
}

func readStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrStorageUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func closingReportFilename(date string) string {
	name := []rune("cierre_" + date + ".xlsx")
	for i, r := range name {
		if r == '/' || r == '\\' {
			name[i] = '-'
		}
	}
	return string(name)
}
