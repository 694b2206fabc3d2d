package service

import (
	"context"
	"errors"
	"time"

	"tokopos/internal/dto"
	"tokopos/internal/model"
	"tokopos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransaksiService struct {
	repo repository.TransaksiRepository
}

func NewTransaksiService(repo repository.TransaksiRepository) *TransaksiService {
	return &TransaksiService{repo: repo}
}

// Create records a sale. Subtotal and profit per line are derived server-side
// from the snapshotted prices, never trusted from the client.
func (s *TransaksiService) Create(ctx context.Context, tokoID uuid.UUID, req dto.CreateTransaksiRequest) (*dto.TransaksiResponse, error) {
	now := time.Now()
	t := &model.Transaksi{
		TokoID: tokoID,
		Waktu:  &now,
		Kasir:  req.Kasir,
		Metode: req.Metode,
	}
	for _, it := range req.Items {
		qty := decimal.NewFromInt(int64(it.Quantity))
		subtotal := it.Harga.Mul(qty)
		laba := it.Harga.Sub(it.HargaBeli).Mul(qty)
		item := model.TransaksiItem{
			Nama:      it.Nama,
			Harga:     it.Harga,
			HargaBeli: it.HargaBeli,
			Quantity:  it.Quantity,
			Subtotal:  subtotal,
			Laba:      laba,
		}
		if it.ProdukID != nil {
			if pid, err := uuid.Parse(*it.ProdukID); err == nil {
				item.ProdukID = &pid
			}
		}
		t.Items = append(t.Items, item)
		t.Total = t.Total.Add(subtotal)
		t.Laba = t.Laba.Add(laba)
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return mapTransaksi(t, true), nil
}

func (s *TransaksiService) Get(ctx context.Context, tokoID, id uuid.UUID) (*dto.TransaksiResponse, error) {
	t, err := s.repo.FindByID(ctx, tokoID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransaksiNotFound
		}
		return nil, err
	}
	return mapTransaksi(t, true), nil
}

// mapTransaksi renders a transaction for the API. The effective timestamp is
// the native column when set, otherwise the parsed legacy string; a row whose
// legacy string cannot be parsed keeps the raw text verbatim.
func mapTransaksi(t *model.Transaksi, withItems bool) *dto.TransaksiResponse {
	resp := &dto.TransaksiResponse{
		ID:     t.ID.String(),
		Kasir:  t.Kasir,
		Metode: t.Metode,
		Total:  t.Total,
		Laba:   effectiveLaba(t),
	}
	if waktu, ok := ResolveWaktu(t); ok {
		resp.Waktu = waktu.Format(time.RFC3339)
	} else if t.WaktuRaw != nil {
		resp.Waktu = *t.WaktuRaw
	}
	if withItems {
		for _, it := range t.Items {
			resp.Items = append(resp.Items, dto.TransaksiItemResponse{
				Nama:     it.Nama,
				Harga:    it.Harga,
				Quantity: it.Quantity,
				Subtotal: it.Subtotal,
				Laba:     it.Laba,
			})
		}
	}
	return resp
}

// effectiveLaba prefers the header profit; legacy rows that only carry
// per-line profit fall back to the item sum.
func effectiveLaba(t *model.Transaksi) decimal.Decimal {
	if !t.Laba.IsZero() || len(t.Items) == 0 {
		return t.Laba
	}
	sum := decimal.Zero
	for _, it := range t.Items {
		sum = sum.Add(it.Laba)
	}
	return sum
}
