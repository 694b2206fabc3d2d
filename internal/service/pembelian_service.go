package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tokopos/internal/dto"
	"tokopos/internal/model"
	"tokopos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PembelianService struct {
	repo   repository.PembelianRepository
	produk repository.ProdukRepository
}

func NewPembelianService(repo repository.PembelianRepository, produk repository.ProdukRepository) *PembelianService {
	return &PembelianService{repo: repo, produk: produk}
}

// runTx wraps fn in a database transaction. A nil DB (stub repos in unit
// tests) runs fn directly.
func (s *PembelianService) runTx(fn func(tx *gorm.DB) error) error {
	db := s.repo.DB()
	if db == nil {
		return fn(nil)
	}
	return db.Transaction(fn)
}

// Checkout snapshots the cart into a pending purchase. Every line resolves
// against the catalog; an optional harga override applies to this purchase
// only and leaves the catalog untouched.
func (s *PembelianService) Checkout(ctx context.Context, tokoID uuid.UUID, req dto.CheckoutPembelianRequest) (*dto.PembelianResponse, error) {
	cart := NewKeranjang()
	for _, it := range req.Items {
		pid, err := uuid.Parse(it.ProdukID)
		if err != nil {
			return nil, ErrProdukNotFound
		}
		p, err := s.produk.FindByID(ctx, tokoID, pid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProdukNotFound
			}
			return nil, err
		}
		cart.Tambah(p)
		cart.SetJumlah(p.ID, it.Jumlah)
		if it.Harga != nil {
			cart.SetHarga(p.ID, *it.Harga)
		}
	}
	if cart.Kosong() {
		return nil, ErrKeranjangKosong
	}

	pembelian := &model.Pembelian{
		TokoID:         tokoID,
		Invoice:        fmt.Sprintf("INV-%d", time.Now().UnixMilli()),
		Status:         "pending",
		TotalPembelian: cart.Total(),
	}
	for _, b := range cart.Baris() {
		pid := b.ProdukID
		pembelian.Items = append(pembelian.Items, model.PembelianItem{
			ProdukID:      &pid,
			Nama:          b.Nama,
			Harga:         b.HargaBeli,
			JumlahDipesan: b.Jumlah,
			Subtotal:      b.Subtotal(),
		})
	}

	if err := s.runTx(func(tx *gorm.DB) error {
		return s.repo.CreateTx(tx, pembelian)
	}); err != nil {
		return nil, err
	}
	return mapPembelian(pembelian, true), nil
}

func (s *PembelianService) List(ctx context.Context, tokoID uuid.UUID) (*dto.PembelianListResponse, error) {
	rows, err := s.repo.List(ctx, tokoID)
	if err != nil {
		return nil, err
	}
	resp := &dto.PembelianListResponse{Data: make([]dto.PembelianResponse, 0, len(rows)), Total: len(rows)}
	for i := range rows {
		resp.Data = append(resp.Data, *mapPembelian(&rows[i], false))
	}
	return resp, nil
}

func (s *PembelianService) Get(ctx context.Context, tokoID, id uuid.UUID) (*dto.PembelianResponse, error) {
	p, err := s.findPembelian(ctx, tokoID, id)
	if err != nil {
		return nil, err
	}
	return mapPembelian(p, true), nil
}

// UpdateStatus moves a pending purchase to confirmed or rejected. Both are
// final: no transition out of them.
func (s *PembelianService) UpdateStatus(ctx context.Context, tokoID, id uuid.UUID, req dto.UpdateStatusPembelianRequest) error {
	p, err := s.findPembelian(ctx, tokoID, id)
	if err != nil {
		return err
	}
	if p.Status == "confirmed" || p.Status == "rejected" {
		return ErrStatusFinal
	}
	return s.repo.UpdateStatus(ctx, tokoID, id, req.Status, req.ConfirmedBy)
}

func (s *PembelianService) Delete(ctx context.Context, tokoID, id uuid.UUID) error {
	if _, err := s.findPembelian(ctx, tokoID, id); err != nil {
		return err
	}
	return s.runTx(func(tx *gorm.DB) error {
		return s.repo.DeleteTx(tx, tokoID, id)
	})
}

// UpdateItemField writes one reconciliation field of one line, then
// recomputes the parent totals, all in a single transaction.
//
// jumlah_diretur and jumlah_ditambah keep their subtotal column in lockstep:
// jumlah × harga when set, NULL when cleared. A harga edit does NOT touch the
// stored subtotals; they remain snapshots of the prices they were written
// under.
func (s *PembelianService) UpdateItemField(ctx context.Context, tokoID, pembelianID, itemID uuid.UUID, req dto.UpdateItemFieldRequest) (*dto.PembelianResponse, error) {
	if _, err := s.findPembelian(ctx, tokoID, pembelianID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListItems(ctx, pembelianID)
	if err != nil {
		return nil, err
	}
	target := -1
	for i := range items {
		if items[i].ID == itemID {
			target = i
			break
		}
	}
	if target < 0 {
		return nil, ErrItemNotFound
	}

	updates := map[string]interface{}{}
	item := &items[target]
	switch req.Field {
	case "jumlah_diterima":
		item.JumlahDiterima = intPtrFromValue(req.Value)
		updates["jumlah_diterima"] = item.JumlahDiterima
	case "jumlah_diretur":
		item.JumlahDiretur = intPtrFromValue(req.Value)
		item.SubtotalRetur = subtotalFor(item.JumlahDiretur, item.Harga)
		updates["jumlah_diretur"] = item.JumlahDiretur
		updates["subtotal_retur"] = item.SubtotalRetur
	case "jumlah_ditambah":
		item.JumlahDitambah = intPtrFromValue(req.Value)
		item.SubtotalTambah = subtotalFor(item.JumlahDitambah, item.Harga)
		updates["jumlah_ditambah"] = item.JumlahDitambah
		updates["subtotal_tambah"] = item.SubtotalTambah
	case "harga":
		if req.Value == nil {
			return nil, ErrHargaKosong
		}
		item.Harga = *req.Value
		updates["harga"] = item.Harga
	default:
		return nil, ErrFieldTidakDikenal
	}

	if err := s.writeItemAndTotals(pembelianID, itemID, updates, items); err != nil {
		return nil, err
	}
	return s.Get(ctx, tokoID, pembelianID)
}

// AddItem appends a free-form line to an existing purchase.
func (s *PembelianService) AddItem(ctx context.Context, tokoID, pembelianID uuid.UUID, req dto.AddPembelianItemRequest) (*dto.PembelianResponse, error) {
	if _, err := s.findPembelian(ctx, tokoID, pembelianID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListItems(ctx, pembelianID)
	if err != nil {
		return nil, err
	}

	item := model.PembelianItem{
		PembelianID:   pembelianID,
		Nama:          req.Nama,
		Harga:         req.Harga,
		JumlahDipesan: req.Jumlah,
		Subtotal:      req.Harga.Mul(decimal.NewFromInt(int64(req.Jumlah))),
	}
	if req.ProdukID != nil {
		if pid, err := uuid.Parse(*req.ProdukID); err == nil {
			item.ProdukID = &pid
		}
	}
	items = append(items, item)

	if err := s.runTx(func(tx *gorm.DB) error {
		if err := s.repo.AddItemTx(tx, &item); err != nil {
			return err
		}
		return s.repo.UpdateTotalsTx(tx, pembelianID, totalUpdates(items))
	}); err != nil {
		return nil, err
	}
	return s.Get(ctx, tokoID, pembelianID)
}

// DeleteItem removes a line and recomputes the parent totals.
func (s *PembelianService) DeleteItem(ctx context.Context, tokoID, pembelianID, itemID uuid.UUID) (*dto.PembelianResponse, error) {
	if _, err := s.findPembelian(ctx, tokoID, pembelianID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListItems(ctx, pembelianID)
	if err != nil {
		return nil, err
	}
	remaining := items[:0:0]
	found := false
	for _, it := range items {
		if it.ID == itemID {
			found = true
			continue
		}
		remaining = append(remaining, it)
	}
	if !found {
		return nil, ErrItemNotFound
	}

	if err := s.runTx(func(tx *gorm.DB) error {
		if err := s.repo.DeleteItemTx(tx, itemID); err != nil {
			return err
		}
		return s.repo.UpdateTotalsTx(tx, pembelianID, totalUpdates(remaining))
	}); err != nil {
		return nil, err
	}
	return s.Get(ctx, tokoID, pembelianID)
}

func (s *PembelianService) writeItemAndTotals(pembelianID, itemID uuid.UUID, updates map[string]interface{}, items []model.PembelianItem) error {
	return s.runTx(func(tx *gorm.DB) error {
		if err := s.repo.UpdateItemTx(tx, itemID, updates); err != nil {
			return err
		}
		return s.repo.UpdateTotalsTx(tx, pembelianID, totalUpdates(items))
	})
}

func (s *PembelianService) findPembelian(ctx context.Context, tokoID, id uuid.UUID) (*model.Pembelian, error) {
	p, err := s.repo.FindByID(ctx, tokoID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPembelianNotFound
		}
		return nil, err
	}
	return p, nil
}

// AggregatePembelian recomputes the three parent totals from the item set.
// total_pembelian sums harga × jumlah_dipesan; total_retur and total_tambah
// sum the reconciliation subtotals with NULL counted as zero.
func AggregatePembelian(items []model.PembelianItem) (totalPembelian, totalRetur, totalTambah decimal.Decimal) {
	for i := range items {
		it := &items[i]
		totalPembelian = totalPembelian.Add(it.Harga.Mul(decimal.NewFromInt(int64(it.JumlahDipesan))))
		if it.SubtotalRetur != nil {
			totalRetur = totalRetur.Add(*it.SubtotalRetur)
		}
		if it.SubtotalTambah != nil {
			totalTambah = totalTambah.Add(*it.SubtotalTambah)
		}
	}
	return totalPembelian, totalRetur, totalTambah
}

func totalUpdates(items []model.PembelianItem) map[string]interface{} {
	totalPembelian, totalRetur, totalTambah := AggregatePembelian(items)
	return map[string]interface{}{
		"total_pembelian": totalPembelian,
		"total_retur":     totalRetur,
		"total_tambah":    totalTambah,
	}
}

func intPtrFromValue(v *decimal.Decimal) *int {
	if v == nil {
		return nil
	}
	n := int(v.IntPart())
	return &n
}

func subtotalFor(jumlah *int, harga decimal.Decimal) *decimal.Decimal {
	if jumlah == nil {
		return nil
	}
	sub := harga.Mul(decimal.NewFromInt(int64(*jumlah)))
	return &sub
}

func mapPembelian(p *model.Pembelian, withItems bool) *dto.PembelianResponse {
	resp := &dto.PembelianResponse{
		ID:             p.ID.String(),
		Invoice:        p.Invoice,
		Status:         p.Status,
		TotalPembelian: p.TotalPembelian,
		TotalRetur:     p.TotalRetur,
		TotalTambah:    p.TotalTambah,
		ConfirmedBy:    p.ConfirmedBy,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
	if withItems {
		for i := range p.Items {
			resp.Items = append(resp.Items, *mapPembelianItem(&p.Items[i]))
		}
	}
	return resp
}

func mapPembelianItem(it *model.PembelianItem) *dto.PembelianItemResponse {
	resp := &dto.PembelianItemResponse{
		ID:             it.ID.String(),
		Nama:           it.Nama,
		Harga:          it.Harga,
		JumlahDipesan:  it.JumlahDipesan,
		JumlahDiterima: it.JumlahDiterima,
		JumlahDiretur:  it.JumlahDiretur,
		JumlahDitambah: it.JumlahDitambah,
		Subtotal:       it.Subtotal,
		SubtotalRetur:  it.SubtotalRetur,
		SubtotalTambah: it.SubtotalTambah,
	}
	if it.ProdukID != nil {
		s := it.ProdukID.String()
		resp.ProdukID = &s
	}
	if it.JumlahDiterima != nil && *it.JumlahDiterima != it.JumlahDipesan {
		d := it.JumlahDipesan - *it.JumlahDiterima
		if d < 0 {
			d = -d
		}
		resp.Selisih = &d
	}
	return resp
}
