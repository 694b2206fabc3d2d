package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CheckoutItemRequest is one cart line at checkout. Harga overrides the
// catalog purchase price for this purchase only; pushing the new price back
// into the catalog is a separate produk endpoint.
type CheckoutItemRequest struct {
	ProdukID string           `json:"produk_id" validate:"required,uuid"`
	Jumlah   int              `json:"jumlah"    validate:"min=1"`
	Harga    *decimal.Decimal `json:"harga"`
}

type CheckoutPembelianRequest struct {
	Items []CheckoutItemRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateStatusPembelianRequest struct {
	Status      string `json:"status"       validate:"required,oneof=confirmed rejected"`
	ConfirmedBy string `json:"confirmed_by" validate:"required"`
}

// UpdateItemFieldRequest mirrors the original per-field reconciliation write:
// one nullable field at a time. Value nil clears the field back to
// "not yet reconciled".
type UpdateItemFieldRequest struct {
	Field string           `json:"field" validate:"required,oneof=jumlah_diterima jumlah_diretur jumlah_ditambah harga"`
	Value *decimal.Decimal `json:"value"`
}

type AddPembelianItemRequest struct {
	ProdukID *string         `json:"produk_id" validate:"omitempty,uuid"`
	Nama     string          `json:"nama"      validate:"required"`
	Harga    decimal.Decimal `json:"harga"     validate:"min=0"`
	Jumlah   int             `json:"jumlah"    validate:"min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PembelianItemResponse struct {
	ID             string           `json:"id"`
	ProdukID       *string          `json:"produk_id"`
	Nama           string           `json:"nama"`
	Harga          decimal.Decimal  `json:"harga"`
	JumlahDipesan  int              `json:"jumlah_dipesan"`
	JumlahDiterima *int             `json:"jumlah_diterima"`
	JumlahDiretur  *int             `json:"jumlah_diretur"`
	JumlahDitambah *int             `json:"jumlah_ditambah"`
	Subtotal       decimal.Decimal  `json:"subtotal"`
	SubtotalRetur  *decimal.Decimal `json:"subtotal_retur"`
	SubtotalTambah *decimal.Decimal `json:"subtotal_tambah"`
	// Selisih is set when jumlah_diterima is filled and differs from
	// jumlah_dipesan: the absolute delta to chase with the supplier.
	Selisih *int `json:"selisih,omitempty"`
}

type PembelianResponse struct {
	ID             string                  `json:"id"`
	Invoice        string                  `json:"invoice"`
	Status         string                  `json:"status"`
	TotalPembelian decimal.Decimal         `json:"total_pembelian"`
	TotalRetur     *decimal.Decimal        `json:"total_retur"`
	TotalTambah    *decimal.Decimal        `json:"total_tambah"`
	ConfirmedBy    *string                 `json:"confirmed_by"`
	CreatedAt      string                  `json:"created_at"`
	Items          []PembelianItemResponse `json:"items,omitempty"`
}

type PembelianListResponse struct {
	Data  []PembelianResponse `json:"data"`
	Total int                 `json:"total"`
}
