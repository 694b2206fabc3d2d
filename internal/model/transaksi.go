package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaksi is a sale record, the data source of the laporan penjualan.
// Metode: "tunai" | "qris" | "transfer".
//
// Waktu is the native timestamp. Rows imported from the legacy store may have
// Waktu NULL and only WaktuRaw set — an ISO-like string or the locale export
// format ("August 21, 2025 at 11:12:10 PM UTC+7"). Timestamp resolution is in
// service.ParseTanggal.
type Transaksi struct {
	ID     uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TokoID uuid.UUID  `gorm:"type:uuid;index;not null"`
	Waktu  *time.Time `gorm:"index"`
	WaktuRaw *string  `gorm:"column:waktu_raw"`
	Kasir  string
	Metode string          `gorm:"type:varchar(20);not null;default:'tunai'"`
	Total  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Laba   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []TransaksiItem `gorm:"foreignKey:TransaksiID"`
}

func (Transaksi) TableName() string { return "transaksi" }

// TransaksiItem is one sold line. Laba = (Harga − HargaBeli) × Quantity,
// snapshotted at sale time.
type TransaksiItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TransaksiID uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProdukID    *uuid.UUID      `gorm:"type:uuid"`
	Nama        string          `gorm:"not null"`
	Harga       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	HargaBeli   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Quantity    int             `gorm:"not null"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Laba        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
}

func (TransaksiItem) TableName() string { return "transaksi_items" }
