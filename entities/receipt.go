package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultBank        = "Banco del Barrio | Banco Guayaquil"
	DefaultReceiptType = "Pago de Servicio"
	UnknownReceiptType = "Unknown"
)

type Receipt struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Bank              string    `gorm:"not null" json:"banco"`
	Date              string    `gorm:"column:receipt_date;type:varchar(10);not null;index:idx_receipts_date" json:"fecha"` // dd/mm/yyyy
	Time              string    `gorm:"column:receipt_time;type:varchar(8);not null" json:"hora"`
	Type              string    `gorm:"column:receipt_type;not null" json:"tipo"`
	TransactionNumber string    `gorm:"not null;uniqueIndex:idx_receipts_transaction_number" json:"nro_transaccion"`
	ControlNumber     string    `gorm:"not null" json:"nro_control"`
	Location          string    `gorm:"not null" json:"local"`
	AlternateDate     string    `json:"fecha_alternativa"`
	Correspondent     string    `gorm:"not null" json:"corresponsal"`
	AccountType       string    `json:"tipo_cuenta"`
	TotalValue        float64   `gorm:"not null;default:0" json:"valor_total"`
	FullText          string    `gorm:"type:text" json:"full_text"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime:false;index:idx_receipts_created_at" json:"created_at"`
}

func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// AfterFind resolves defaults for rows written before the columns had them,
// so readers never see an empty bank or type.
func (r *Receipt) AfterFind(tx *gorm.DB) error {
	r.ApplyReadDefaults()
	return nil
}

func (r *Receipt) ApplyReadDefaults() {
	if r.Bank == "" {
		r.Bank = DefaultBank
	}
	if r.Type == "" {
		r.Type = UnknownReceiptType
	}
}
