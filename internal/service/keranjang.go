package service

import (
	"tokopos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BarisKeranjang is one line of an in-memory purchase cart. Nothing here is
// persisted; checkout snapshots the lines into PembelianItem rows.
type BarisKeranjang struct {
	ProdukID  uuid.UUID
	Nama      string
	Barcode   string
	HargaBeli decimal.Decimal
	Jumlah    int
}

// Subtotal is always derived, never stored on the line.
func (b BarisKeranjang) Subtotal() decimal.Decimal {
	return b.HargaBeli.Mul(decimal.NewFromInt(int64(b.Jumlah)))
}

// Keranjang accumulates purchase cart lines. Lines keep insertion order.
// A quantity below 1 removes the line — quantity never persists at 0.
type Keranjang struct {
	baris []BarisKeranjang
}

func NewKeranjang() *Keranjang { return &Keranjang{} }

// Tambah adds one unit of the product: increments the existing line, or
// inserts a new line with quantity 1.
func (k *Keranjang) Tambah(p *model.Produk) {
	for i := range k.baris {
		if k.baris[i].ProdukID == p.ID {
			k.baris[i].Jumlah++
			return
		}
	}
	k.baris = append(k.baris, BarisKeranjang{
		ProdukID:  p.ID,
		Nama:      p.Nama,
		Barcode:   p.Barcode,
		HargaBeli: p.HargaBeli,
		Jumlah:    1,
	})
}

// SetJumlah replaces the quantity of a line. jumlah < 1 removes it.
func (k *Keranjang) SetJumlah(produkID uuid.UUID, jumlah int) {
	if jumlah < 1 {
		k.Hapus(produkID)
		return
	}
	for i := range k.baris {
		if k.baris[i].ProdukID == produkID {
			k.baris[i].Jumlah = jumlah
			return
		}
	}
}

// SetHarga edits the unit purchase price of a line. The edit is local to the
// cart; pushing it into the catalog is a separate, explicit produk update.
func (k *Keranjang) SetHarga(produkID uuid.UUID, harga decimal.Decimal) {
	for i := range k.baris {
		if k.baris[i].ProdukID == produkID {
			k.baris[i].HargaBeli = harga
			return
		}
	}
}

// Hapus removes a line entirely.
func (k *Keranjang) Hapus(produkID uuid.UUID) {
	for i := range k.baris {
		if k.baris[i].ProdukID == produkID {
			k.baris = append(k.baris[:i], k.baris[i+1:]...)
			return
		}
	}
}

// Baris returns the current lines.
func (k *Keranjang) Baris() []BarisKeranjang { return k.baris }

// Kosong reports whether the cart has no lines.
func (k *Keranjang) Kosong() bool { return len(k.baris) == 0 }

// Total = Σ harga_beli × jumlah over all lines.
func (k *Keranjang) Total() decimal.Decimal {
	total := decimal.Zero
	for _, b := range k.baris {
		total = total.Add(b.Subtotal())
	}
	return total
}
