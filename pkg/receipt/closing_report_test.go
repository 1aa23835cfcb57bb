package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"riocaja-smart-backend/entities"
)

func TestGenerateClosingReport_Empty(t *testing.T) {
	report := GenerateClosingReport("25/04/2025", nil)

	assert.Equal(t, "25/04/2025", report.Date)
	assert.Equal(t, 0, report.Count)
	assert.Equal(t, 0.0, report.Total)
	assert.NotNil(t, report.Summary)
	assert.Empty(t, report.Summary)
}

func TestGenerateClosingReport_GroupsByType(t *testing.T) {
	receipts := []*entities.Receipt{
		{Type: "A", TotalValue: 10.0},
		{Type: "A", TotalValue: 5.0},
		{Type: "B", TotalValue: 2.5},
	}

	report := GenerateClosingReport("25/04/2025", receipts)

	assert.Equal(t, map[string]float64{"A": 15.0, "B": 2.5}, report.Summary)
	assert.Equal(t, 17.5, report.Total)
	assert.Equal(t, 3, report.Count)
	assert.Equal(t, "25/04/2025", report.Date)
}

func TestGenerateClosingReport_NoFloatDrift(t *testing.T) {
	receipts := []*entities.Receipt{
		{Type: "Deposito", TotalValue: 0.1},
		{Type: "Deposito", TotalValue: 0.2},
	}

	report := GenerateClosingReport("01/05/2025", receipts)

	assert.Equal(t, 0.3, report.Total)
	assert.Equal(t, 0.3, report.Summary["Deposito"])
}

func TestGenerateClosingReport_MalformedRecords(t *testing.T) {
	receipts := []*entities.Receipt{
		nil,
		{Type: "", TotalValue: 4.25},
		{Type: "Retiro"},
	}

	report := GenerateClosingReport("02/05/2025", receipts)

	assert.Equal(t, 2, report.Count)
	assert.Equal(t, 4.25, report.Total)
	assert.Equal(t, map[string]float64{entities.UnknownReceiptType: 4.25, "Retiro": 0}, report.Summary)
}
