package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	MessageSuccessGetReceipts      = "receipts retrieved successfully"
	MessageSuccessCreateReceipt    = "receipt created successfully"
	MessageSuccessDeleteReceipt    = "receipt deleted successfully"
	MessageSuccessGetClosingReport = "closing report generated successfully"

	MessageFailedGetReceipts      = "failed to retrieve receipts"
	MessageFailedCreateReceipt    = "failed to create receipt"
	MessageFailedDeleteReceipt    = "failed to delete receipt"
	MessageFailedGetClosingReport = "failed to generate closing report"
	MessageDuplicateTransaction   = "a receipt with this transaction number already exists"
	MessageReceiptNotFound        = "receipt not found"

	ErrReceiptNotFound      = errors.New("receipt not found")
	ErrDuplicateTransaction = errors.New("duplicate transaction number")
	ErrDeleteReceiptFailed  = errors.New("receipt was not deleted")
)

type (
	CreateReceiptRequest struct {
		Bank              string   `json:"banco"`
		Date              string   `json:"fecha" validate:"required"`
		Time              string   `json:"hora" validate:"required"`
		Type              string   `json:"tipo"`
		TransactionNumber string   `json:"nro_transaccion" validate:"required"`
		ControlNumber     string   `json:"nro_control" validate:"required"`
		Location          string   `json:"local" validate:"required"`
		AlternateDate     string   `json:"fecha_alternativa"`
		Correspondent     string   `json:"corresponsal" validate:"required"`
		AccountType       string   `json:"tipo_cuenta"`
		TotalValue        *float64 `json:"valor_total" validate:"required,gte=0"`
		FullText          string   `json:"full_text"`
	}

	ReceiptResponse struct {
		ID                string    `json:"id"`
		Bank              string    `json:"banco"`
		Date              string    `json:"fecha"`
		Time              string    `json:"hora"`
		Type              string    `json:"tipo"`
		TransactionNumber string    `json:"nro_transaccion"`
		ControlNumber     string    `json:"nro_control"`
		Location          string    `json:"local"`
		AlternateDate     string    `json:"fecha_alternativa"`
		Correspondent     string    `json:"corresponsal"`
		AccountType       string    `json:"tipo_cuenta"`
		TotalValue        float64   `json:"valor_total"`
		FullText          string    `json:"full_text"`
		CreatedAt         time.Time `json:"created_at"`
	}

	// ClosingReport sums receipt values for one day, grouped by receipt type.
	ClosingReport struct {
		Summary map[string]float64 `json:"summary"`
		Total   float64            `json:"total"`
		Date    string             `json:"date"`
		Count   int                `json:"count"`
	}
)

// UnmarshalJSON accepts the camelCase names older scanner builds send
// (nroTransaccion, valorTotal, ...) next to the snake_case ones. The
// snake_case value wins when both are present.
func (r *CreateReceiptRequest) UnmarshalJSON(data []byte) error {
	type request CreateReceiptRequest
	var body struct {
		request
		NroTransaccion   string   `json:"nroTransaccion"`
		NroControl       string   `json:"nroControl"`
		FechaAlternativa string   `json:"fechaAlternativa"`
		TipoCuenta       string   `json:"tipoCuenta"`
		ValorTotal       *float64 `json:"valorTotal"`
		FullTextCamel    string   `json:"fullText"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}

	*r = CreateReceiptRequest(body.request)
	if r.TransactionNumber == "" {
		r.TransactionNumber = body.NroTransaccion
	}
	if r.ControlNumber == "" {
		r.ControlNumber = body.NroControl
	}
	if r.AlternateDate == "" {
		r.AlternateDate = body.FechaAlternativa
	}
	if r.AccountType == "" {
		r.AccountType = body.TipoCuenta
	}
	if r.TotalValue == nil {
		r.TotalValue = body.ValorTotal
	}
	if r.FullText == "" {
		r.FullText = body.FullTextCamel
	}
	return nil
}
