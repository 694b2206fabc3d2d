package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Setoran is a cash-deposit reconciliation record: the amounts handed over
// per payment channel at the end of a shift. Total is computed server-side as
// cash+qris+transfer on create, but legacy rows may carry a diverging total —
// the laporan flags those instead of rejecting them.
type Setoran struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TokoID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	Tanggal  time.Time       `gorm:"index;not null"`
	Cash     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Qris     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Transfer decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Total    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Kasir    string
	Catatan  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Setoran) TableName() string { return "setoran" }
