package receipt

import (
	"github.com/shopspring/decimal"

	"riocaja-smart-backend/domain"
	"riocaja-smart-backend/entities"
)

// GenerateClosingReport totals the receipts of one day and groups the totals
// by receipt type. It does not filter by date; callers pass the receipts
// already selected for that date.
func GenerateClosingReport(date string, receipts []*entities.Receipt) domain.ClosingReport {
	report := domain.ClosingReport{
		Summary: map[string]float64{},
		Date:    date,
	}

	total := decimal.Zero
	byType := map[string]decimal.Decimal{}
	for _, r := range receipts {
		if r == nil {
			continue
		}

		receiptType := r.Type
		if receiptType == "" {
			receiptType = entities.UnknownReceiptType
		}

		value := decimal.NewFromFloat(r.TotalValue)
		total = total.Add(value)
		byType[receiptType] = byType[receiptType].Add(value)
		report.Count++
	}

	for receiptType, sum := range byType {
		report.Summary[receiptType] = sum.InexactFloat64()
	}
	report.Total = total.InexactFloat64()

	return report
}
