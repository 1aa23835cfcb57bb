package receipt

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"riocaja-smart-backend/domain"
	"riocaja-smart-backend/entities"
)

const (
	summarySheet  = "Resumen"
	receiptsSheet = "Comprobantes"

	ClosingReportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var receiptColumns = []interface{}{
	"Fecha", "Hora", "Tipo", "Nro. Transaccion", "Nro. Control", "Local",
	"Corresponsal", "Banco", "Tipo Cuenta", "Valor Total",
}

// ClosingReportWorkbook renders report as an xlsx workbook with one sheet
// for the per-type summary and one listing the receipts it was built from.
func ClosingReportWorkbook(report domain.ClosingReport, receipts []*entities.Receipt) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("rename summary sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Cierre del", report.Date},
		{},
		{"Tipo", "Total"},
	}
	types := make([]string, 0, len(report.Summary))
	for t := range report.Summary {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		rows = append(rows, []interface{}{t, report.Summary[t]})
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Total", report.Total},
		[]interface{}{"Comprobantes", report.Count},
	)
	if err := writeRows(f, summarySheet, rows); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(receiptsSheet); err != nil {
		return nil, fmt.Errorf("create receipts sheet: %w", err)
	}
	rows = [][]interface{}{receiptColumns}
	for _, r := range receipts {
		if r == nil {
			continue
		}
		rows = append(rows, []interface{}{
			r.Date, r.Time, r.Type, r.TransactionNumber, r.ControlNumber, r.Location,
			r.Correspondent, r.Bank, r.AccountType, r.TotalValue,
		})
	}
	if err := writeRows(f, receiptsSheet, rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
