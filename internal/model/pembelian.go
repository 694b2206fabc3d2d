package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pembelian is a purchase (incoming stock) document.
// Status: "draft" | "pending" | "confirmed" | "rejected".
// Checkout always writes "pending"; confirmed/rejected are set by the status
// endpoint. "draft" is reserved and never written.
type Pembelian struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TokoID         uuid.UUID       `gorm:"type:uuid;index;not null"`
	Invoice        string          `gorm:"not null"`
	Status         string          `gorm:"type:varchar(20);not null;default:'pending'"`
	TotalPembelian decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	// Aggregates over the items' reconciliation subtotals; NULL until the
	// first reconciliation write.
	TotalRetur  *decimal.Decimal `gorm:"type:decimal(14,2)"`
	TotalTambah *decimal.Decimal `gorm:"type:decimal(14,2)"`
	ConfirmedBy *string
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	Items []PembelianItem `gorm:"foreignKey:PembelianID"`
}

func (Pembelian) TableName() string { return "pembelian" }

// PembelianItem is one ordered line with post-hoc reconciliation fields.
// The nullable quantities default to NULL meaning "not yet reconciled";
// SubtotalRetur/SubtotalTambah mirror their quantity: jumlah × harga when the
// quantity is set, NULL otherwise.
type PembelianItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PembelianID uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProdukID    *uuid.UUID      `gorm:"type:uuid"`
	Nama        string          `gorm:"not null"` // product name snapshot
	Harga       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	JumlahDipesan  int              `gorm:"not null"`
	JumlahDiterima *int
	JumlahDiretur  *int
	JumlahDitambah *int
	Subtotal       decimal.Decimal  `gorm:"type:decimal(14,2);not null"`
	SubtotalRetur  *decimal.Decimal `gorm:"type:decimal(14,2)"`
	SubtotalTambah *decimal.Decimal `gorm:"type:decimal(14,2)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (PembelianItem) TableName() string { return "pembelian_items" }
