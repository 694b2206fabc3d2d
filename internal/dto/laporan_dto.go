package dto

import "github.com/shopspring/decimal"

// ─── Transaksi ───────────────────────────────────────────────────────────────

type TransaksiItemRequest struct {
	ProdukID  *string         `json:"produk_id" validate:"omitempty,uuid"`
	Nama      string          `json:"nama"      validate:"required"`
	Harga     decimal.Decimal `json:"harga"     validate:"min=0"`
	HargaBeli decimal.Decimal `json:"harga_beli" validate:"min=0"`
	Quantity  int             `json:"quantity"  validate:"min=1"`
}

type CreateTransaksiRequest struct {
	Kasir  string                 `json:"kasir"`
	Metode string                 `json:"metode" validate:"required,oneof=tunai qris transfer"`
	Items  []TransaksiItemRequest `json:"items"  validate:"required,min=1,dive"`
}

type TransaksiItemResponse struct {
	Nama     string          `json:"nama"`
	Harga    decimal.Decimal `json:"harga"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Laba     decimal.Decimal `json:"laba"`
}

type TransaksiResponse struct {
	ID     string                  `json:"id"`
	Waktu  string                  `json:"waktu"`
	Kasir  string                  `json:"kasir"`
	Metode string                  `json:"metode"`
	Total  decimal.Decimal         `json:"total"`
	Laba   decimal.Decimal         `json:"laba"`
	Items  []TransaksiItemResponse `json:"items,omitempty"`
}

// ─── Laporan penjualan ───────────────────────────────────────────────────────

type LaporanPenjualanResponse struct {
	OmsetKeseluruhan  decimal.Decimal     `json:"omset_keseluruhan"`
	OmsetTunai        decimal.Decimal     `json:"omset_tunai"`
	OmsetQris         decimal.Decimal     `json:"omset_qris"`
	OmsetTransfer     decimal.Decimal     `json:"omset_transfer"`
	LabaKeseluruhan   decimal.Decimal     `json:"laba_keseluruhan"`
	TotalTransaksi    int                 `json:"total_transaksi"`
	RataRataTransaksi decimal.Decimal     `json:"rata_rata_transaksi"`
	// TanggalInvalid counts rows whose legacy date could not be parsed and
	// were therefore excluded from every aggregate above.
	TanggalInvalid int                 `json:"tanggal_invalid"`
	Penjualan      []TransaksiResponse `json:"penjualan"`
}

// EmailLaporanRequest asks the worker pool to render the sales report PDF and
// mail it.
type EmailLaporanRequest struct {
	ToEmail string `json:"to_email" validate:"required,email"`
	Start   string `json:"start"    validate:"required"` // YYYY-MM-DD
	End     string `json:"end"      validate:"required"` // YYYY-MM-DD
}
