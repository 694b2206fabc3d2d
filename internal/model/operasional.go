package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Operasional is an operational expense record with line items.
// Total = Σ item.Amount, computed on create.
type Operasional struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TokoID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	Tanggal   time.Time       `gorm:"index;not null"`
	Total     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Kasir     string
	Catatan   *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []OperasionalItem `gorm:"foreignKey:OperasionalID"`
}

func (Operasional) TableName() string { return "operasional" }

// OperasionalItem is one expense line. Type is free text ("listrik", "gaji",
// …) and may be empty; the laporan drops empty types from the breakdown but
// still counts the amount in the grand total.
type OperasionalItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OperasionalID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Description   string
	Type          string
}

func (OperasionalItem) TableName() string { return "operasional_items" }
