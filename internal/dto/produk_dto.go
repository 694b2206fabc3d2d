package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProdukRequest struct {
	Nama       string          `json:"nama"        validate:"required,min=1,max=120"`
	Barcode    string          `json:"barcode"`
	HargaBeli  decimal.Decimal `json:"harga_beli"  validate:"min=0"`
	HargaJual1 decimal.Decimal `json:"harga_jual1" validate:"min=0"`
	HargaJual2 decimal.Decimal `json:"harga_jual2" validate:"min=0"`
	HargaJual3 decimal.Decimal `json:"harga_jual3" validate:"min=0"`
	HargaJual4 decimal.Decimal `json:"harga_jual4" validate:"min=0"`
	Stok       int             `json:"stok"        validate:"min=0"`
	Kategori   string          `json:"kategori"`
}

type UpdateProdukRequest struct {
	Nama       *string          `json:"nama"        validate:"omitempty,min=1,max=120"`
	Barcode    *string          `json:"barcode"`
	HargaBeli  *decimal.Decimal `json:"harga_beli"`
	HargaJual1 *decimal.Decimal `json:"harga_jual1"`
	HargaJual2 *decimal.Decimal `json:"harga_jual2"`
	HargaJual3 *decimal.Decimal `json:"harga_jual3"`
	HargaJual4 *decimal.Decimal `json:"harga_jual4"`
	Stok       *int             `json:"stok"        validate:"omitempty,min=0"`
	Kategori   *string          `json:"kategori"`
}

// SetStokRequest writes the absolute stock count — there is no ledger.
type SetStokRequest struct {
	Stok int `json:"stok" validate:"min=0"`
}

// SetHargaBeliRequest is the explicit "update catalog price" step, separate
// from editing a price inside a purchase cart.
type SetHargaBeliRequest struct {
	HargaBeli decimal.Decimal `json:"harga_beli" validate:"required"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type ProdukFilter struct {
	Nama     string `form:"nama"`
	Kategori string `form:"kategori"`
	Barcode  string `form:"barcode"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProdukResponse struct {
	ID         string          `json:"id"`
	Nama       string          `json:"nama"`
	Barcode    string          `json:"barcode"`
	HargaBeli  decimal.Decimal `json:"harga_beli"`
	HargaJual1 decimal.Decimal `json:"harga_jual1"`
	HargaJual2 decimal.Decimal `json:"harga_jual2"`
	HargaJual3 decimal.Decimal `json:"harga_jual3"`
	HargaJual4 decimal.Decimal `json:"harga_jual4"`
	Stok       int             `json:"stok"`
	Kategori   string          `json:"kategori"`
	UpdatedAt  string          `json:"updated_at"`
}

type ProdukListResponse struct {
	Data  []ProdukResponse `json:"data"`
	Total int              `json:"total"`
}

// ImportProdukResponse summarizes a bulk spreadsheet import.
type ImportProdukResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
