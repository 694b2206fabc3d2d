package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Retur is a return document (outgoing stock correction).
type Retur struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TokoID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	Tanggal    time.Time       `gorm:"index;not null"`
	TotalRetur decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Items []ReturItem `gorm:"foreignKey:ReturID"`
}

func (Retur) TableName() string { return "retur" }

// ReturItem snapshots the product name and purchase price at return time.
// Subtotal = JumlahRetur × HargaBeli, computed on create.
type ReturItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReturID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProdukID    uuid.UUID       `gorm:"type:uuid;column:id_produk"`
	Nama        string          `gorm:"not null"`
	HargaBeli   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	JumlahRetur int             `gorm:"not null"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

func (ReturItem) TableName() string { return "retur_items" }
