package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Produk is a catalog item. Stok is a plain counter written directly by
// catalog edits and bulk import — there is no stock movement ledger.
type Produk struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TokoID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Nama      string    `gorm:"index;not null"`
	Barcode   string    `gorm:"index"`
	HargaBeli decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	// Up to four tiered sale prices (grosir/eceran tiers).
	HargaJual1 decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	HargaJual2 decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	HargaJual3 decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	HargaJual4 decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Stok       int             `gorm:"not null;default:0"`
	Kategori   string
	CreatedAt  time.Time
	UpdatedAt  time.Time `gorm:"index"`
}

func (Produk) TableName() string { return "produk" }
