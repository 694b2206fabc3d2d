package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type OperasionalItemRequest struct {
	Amount      decimal.Decimal `json:"amount"      validate:"min=0"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
}

// CreateOperasionalRequest — total is always Σ item.amount, never accepted
// from the client.
type CreateOperasionalRequest struct {
	Tanggal string                   `json:"tanggal" validate:"required"` // YYYY-MM-DD
	Items   []OperasionalItemRequest `json:"items"   validate:"required,min=1,dive"`
	Kasir   string                   `json:"kasir"`
	Catatan *string                  `json:"catatan"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OperasionalItemResponse struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
}

type OperasionalResponse struct {
	ID      string                    `json:"id"`
	Tanggal string                    `json:"tanggal"`
	Total   decimal.Decimal           `json:"total"`
	Kasir   string                    `json:"kasir"`
	Catatan *string                   `json:"catatan"`
	Items   []OperasionalItemResponse `json:"items,omitempty"`
}

type LaporanOperasionalResponse struct {
	TotalPengeluaran    decimal.Decimal            `json:"total_pengeluaran"`
	JumlahTransaksi     int                        `json:"jumlah_transaksi"`
	RataRataPengeluaran decimal.Decimal            `json:"rata_rata_pengeluaran"`
	BreakdownByType     map[string]decimal.Decimal `json:"breakdown_by_type"`
	Operasional         []OperasionalResponse      `json:"operasional"`
}
