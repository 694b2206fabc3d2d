package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateSetoranRequest — total is never accepted from the client; it is
// always cash+qris+transfer.
type CreateSetoranRequest struct {
	Tanggal  string          `json:"tanggal"  validate:"required"` // YYYY-MM-DD
	Cash     decimal.Decimal `json:"cash"     validate:"min=0"`
	Qris     decimal.Decimal `json:"qris"     validate:"min=0"`
	Transfer decimal.Decimal `json:"transfer" validate:"min=0"`
	Kasir    string          `json:"kasir"`
	Catatan  *string         `json:"catatan"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SetoranResponse struct {
	ID       string          `json:"id"`
	Tanggal  string          `json:"tanggal"`
	Cash     decimal.Decimal `json:"cash"`
	Qris     decimal.Decimal `json:"qris"`
	Transfer decimal.Decimal `json:"transfer"`
	Total    decimal.Decimal `json:"total"`
	Kasir    string          `json:"kasir"`
	Catatan  *string         `json:"catatan"`
	// Selisih is set when the stored total differs from cash+qris+transfer
	// (legacy rows): declared minus channel sum.
	Selisih *decimal.Decimal `json:"selisih,omitempty"`
}

type LaporanSetoranResponse struct {
	TotalCash        decimal.Decimal   `json:"total_cash"`
	TotalQris        decimal.Decimal   `json:"total_qris"`
	TotalTransfer    decimal.Decimal   `json:"total_transfer"`
	TotalKeseluruhan decimal.Decimal   `json:"total_keseluruhan"`
	JumlahSetoran    int               `json:"jumlah_setoran"`
	RataRataSetoran  decimal.Decimal   `json:"rata_rata_setoran"`
	Setoran          []SetoranResponse `json:"setoran"`
}
