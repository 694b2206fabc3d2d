package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ReturItemRequest struct {
	ProdukID    string          `json:"id_produk"     validate:"required,uuid"`
	Nama        string          `json:"nama"          validate:"required"`
	HargaBeli   decimal.Decimal `json:"harga_beli"    validate:"min=0"`
	JumlahRetur int             `json:"jumlah_retur"  validate:"min=1"`
}

type CreateReturRequest struct {
	Tanggal string             `json:"tanggal" validate:"required"` // YYYY-MM-DD
	Items   []ReturItemRequest `json:"items"   validate:"required,min=1,dive"`
}

type UpdateReturRequest struct {
	Tanggal *string `json:"tanggal"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ReturItemResponse struct {
	ID          string          `json:"id"`
	ProdukID    string          `json:"id_produk"`
	Nama        string          `json:"nama"`
	HargaBeli   decimal.Decimal `json:"harga_beli"`
	JumlahRetur int             `json:"jumlah_retur"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type ReturResponse struct {
	ID         string              `json:"id"`
	Tanggal    string              `json:"tanggal"`
	TotalRetur decimal.Decimal     `json:"total_retur"`
	Items      []ReturItemResponse `json:"items,omitempty"`
}

type ReturListResponse struct {
	Data  []ReturResponse `json:"data"`
	Total int             `json:"total"`
}
