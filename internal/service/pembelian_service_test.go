package service

import (
	"context"
	"strings"
	"testing"

	"tokopos/internal/dto"
	"tokopos/internal/model"
	"tokopos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory ProdukRepository stub ──────────────────────────────────────────

type stubProdukRepo struct {
	produk map[uuid.UUID]*model.Produk
}

var _ repository.ProdukRepository = (*stubProdukRepo)(nil)

func newStubProdukRepo() *stubProdukRepo {
	return &stubProdukRepo{produk: make(map[uuid.UUID]*model.Produk)}
}

func (r *stubProdukRepo) tambah(p *model.Produk) *model.Produk {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.produk[p.ID] = p
	return p
}

func (r *stubProdukRepo) Create(_ context.Context, p *model.Produk) error {
	r.tambah(p)
	return nil
}

func (r *stubProdukRepo) CreateBatch(_ context.Context, produk []model.Produk) error {
	for i := range produk {
		cloned := produk[i]
		r.tambah(&cloned)
	}
	return nil
}

func (r *stubProdukRepo) FindByID(_ context.Context, tokoID, id uuid.UUID) (*model.Produk, error) {
	p, ok := r.produk[id]
	if !ok || p.TokoID != tokoID {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *p
	return &cloned, nil
}

func (r *stubProdukRepo) List(_ context.Context, tokoID uuid.UUID, _ dto.ProdukFilter) ([]model.Produk, error) {
	var out []model.Produk
	for _, p := range r.produk {
		if p.TokoID == tokoID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProdukRepo) Update(_ context.Context, p *model.Produk) error {
	cloned := *p
	r.produk[p.ID] = &cloned
	return nil
}

func (r *stubProdukRepo) UpdateStok(_ context.Context, _, id uuid.UUID, stok int) error {
	if p, ok := r.produk[id]; ok {
		p.Stok = stok
	}
	return nil
}

func (r *stubProdukRepo) UpdateHargaBeli(_ context.Context, _, id uuid.UUID, harga decimal.Decimal) error {
	if p, ok := r.produk[id]; ok {
		p.HargaBeli = harga
	}
	return nil
}

func (r *stubProdukRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	delete(r.produk, id)
	return nil
}

// ── In-memory PembelianRepository stub ───────────────────────────────────────

type stubPembelianRepo struct {
	pembelian map[uuid.UUID]*model.Pembelian
	items     map[uuid.UUID]*model.PembelianItem
}

var _ repository.PembelianRepository = (*stubPembelianRepo)(nil)

func newStubPembelianRepo() *stubPembelianRepo {
	return &stubPembelianRepo{
		pembelian: make(map[uuid.UUID]*model.Pembelian),
		items:     make(map[uuid.UUID]*model.PembelianItem),
	}
}

func (r *stubPembelianRepo) DB() *gorm.DB { return nil }

func (r *stubPembelianRepo) CreateTx(_ *gorm.DB, p *model.Pembelian) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for i := range p.Items {
		if p.Items[i].ID == uuid.Nil {
			p.Items[i].ID = uuid.New()
		}
		p.Items[i].PembelianID = p.ID
		cloned := p.Items[i]
		r.items[cloned.ID] = &cloned
	}
	header := *p
	header.Items = nil
	r.pembelian[p.ID] = &header
	return nil
}

func (r *stubPembelianRepo) FindByID(_ context.Context, tokoID, id uuid.UUID) (*model.Pembelian, error) {
	p, ok := r.pembelian[id]
	if !ok || p.TokoID != tokoID {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *p
	for _, it := range r.items {
		if it.PembelianID == id {
			cloned.Items = append(cloned.Items, *it)
		}
	}
	return &cloned, nil
}

func (r *stubPembelianRepo) List(_ context.Context, tokoID uuid.UUID) ([]model.Pembelian, error) {
	var out []model.Pembelian
	for _, p := range r.pembelian {
		if p.TokoID == tokoID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPembelianRepo) UpdateStatus(_ context.Context, _, id uuid.UUID, status, confirmedBy string) error {
	p, ok := r.pembelian[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Status = status
	p.ConfirmedBy = &confirmedBy
	return nil
}

func (r *stubPembelianRepo) FindItemByID(_ context.Context, pembelianID, itemID uuid.UUID) (*model.PembelianItem, error) {
	it, ok := r.items[itemID]
	if !ok || it.PembelianID != pembelianID {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *it
	return &cloned, nil
}

func (r *stubPembelianRepo) ListItems(_ context.Context, pembelianID uuid.UUID) ([]model.PembelianItem, error) {
	var out []model.PembelianItem
	for _, it := range r.items {
		if it.PembelianID == pembelianID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *stubPembelianRepo) UpdateItemTx(_ *gorm.DB, itemID uuid.UUID, updates map[string]interface{}) error {
	it, ok := r.items[itemID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for col, v := range updates {
		switch col {
		case "jumlah_diterima":
			it.JumlahDiterima, _ = v.(*int)
		case "jumlah_diretur":
			it.JumlahDiretur, _ = v.(*int)
		case "jumlah_ditambah":
			it.JumlahDitambah, _ = v.(*int)
		case "subtotal_retur":
			it.SubtotalRetur, _ = v.(*decimal.Decimal)
		case "subtotal_tambah":
			it.SubtotalTambah, _ = v.(*decimal.Decimal)
		case "harga":
			it.Harga, _ = v.(decimal.Decimal)
		}
	}
	return nil
}

func (r *stubPembelianRepo) AddItemTx(_ *gorm.DB, item *model.PembelianItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cloned := *item
	r.items[cloned.ID] = &cloned
	return nil
}

func (r *stubPembelianRepo) DeleteItemTx(_ *gorm.DB, itemID uuid.UUID) error {
	delete(r.items, itemID)
	return nil
}

func (r *stubPembelianRepo) UpdateTotalsTx(_ *gorm.DB, pembelianID uuid.UUID, updates map[string]interface{}) error {
	p, ok := r.pembelian[pembelianID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for col, v := range updates {
		switch col {
		case "total_pembelian":
			p.TotalPembelian = v.(decimal.Decimal)
		case "total_retur":
			d := v.(decimal.Decimal)
			p.TotalRetur = &d
		case "total_tambah":
			d := v.(decimal.Decimal)
			p.TotalTambah = &d
		}
	}
	return nil
}

func (r *stubPembelianRepo) DeleteTx(_ *gorm.DB, tokoID, id uuid.UUID) error {
	for itemID, it := range r.items {
		if it.PembelianID == id {
			delete(r.items, itemID)
		}
	}
	delete(r.pembelian, id)
	return nil
}

// ── Test setup ───────────────────────────────────────────────────────────────

func setupPembelian(t *testing.T) (*PembelianService, *stubProdukRepo, uuid.UUID) {
	t.Helper()
	produkRepo := newStubProdukRepo()
	repo := newStubPembelianRepo()
	return NewPembelianService(repo, produkRepo), produkRepo, uuid.New()
}

func checkoutSatuItem(t *testing.T, svc *PembelianService, produkRepo *stubProdukRepo, tokoID uuid.UUID, harga int64, jumlah int) *dto.PembelianResponse {
	t.Helper()
	p := produkRepo.tambah(&model.Produk{TokoID: tokoID, Nama: "Teh Botol", HargaBeli: decimal.NewFromInt(harga)})
	resp, err := svc.Checkout(context.Background(), tokoID, dto.CheckoutPembelianRequest{
		Items: []dto.CheckoutItemRequest{{ProdukID: p.ID.String(), Jumlah: jumlah}},
	})
	require.NoError(t, err)
	return resp
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCheckoutCreatesPendingWithInvoice(t *testing.T) {
	svc, produkRepo, tokoID := setupPembelian(t)

	resp := checkoutSatuItem(t, svc, produkRepo, tokoID, 5000, 10)

	assert.Equal(t, "pending", resp.Status)
	assert.True(t, strings.HasPrefix(resp.Invoice, "INV-"))
	assert.True(t, resp.TotalPembelian.Equal(decimal.NewFromInt(50000)))
	require.Len(t, resp.Items, 1)
	item := resp.Items[0]
	assert.Nil(t, item.JumlahDiterima)
	assert.Nil(t, item.JumlahDiretur)
	assert.Nil(t, item.JumlahDitambah)
	assert.Nil(t, item.SubtotalRetur)
	assert.Nil(t, item.SubtotalTambah)
	assert.Nil(t, resp.TotalRetur)
	assert.Nil(t, resp.TotalTambah)
}

func TestCheckoutHargaOverrideDoesNotTouchCatalog(t *testing.T) {
	svc, produkRepo, tokoID := setupPembelian(t)
	p := produkRepo.tambah(&model.Produk{TokoID: tokoID, Nama: "Sabun", HargaBeli: decimal.NewFromInt(4000)})

	override := decimal.NewFromInt(3500)
	resp, err := svc.Checkout(context.Background(), tokoID, dto.CheckoutPembelianRequest{
		Items: []dto.CheckoutItemRequest{{ProdukID: p.ID.String(), Jumlah: 2, Harga: &override}},
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalPembelian.Equal(decimal.NewFromInt(7000)))
	assert.True(t, produkRepo.produk[p.ID].HargaBeli.Equal(decimal.NewFromInt(4000)))
}

func TestCheckoutUnknownProdukFails(t *testing.T) {
	svc, _, tokoID := setupPembelian(t)

	_, err := svc.Checkout(context.Background(), tokoID, dto.CheckoutPembelianRequest{
		Items: []dto.CheckoutItemRequest{{ProdukID: uuid.NewString(), Jumlah: 1}},
	})
	assert.ErrorIs(t, err, ErrProdukNotFound)
}

func TestCheckoutEmptyCartFails(t *testing.T) {
	svc, _, tokoID := setupPembelian(t)

	_, err := svc.Checkout(context.Background(), tokoID, dto.CheckoutPembelianRequest{})
	assert.ErrorIs(t, err, ErrKeranjangKosong)
}

func TestUpdateItemFieldDiterimaComputesSelisih(t *testing.T) {
	svc, produkRepo, tokoID := setupPembelian(t)
	created := checkoutSatuItem(t, svc, produkRepo, tokoID, 1000, 10)
	pembelianID := uuid.MustParse(created.ID)
	itemID := uuid.MustParse(created.Items[0].ID)

	v := decimal.NewFromInt(8)
	resp, err := svc.UpdateItemField(context.Background(), tokoID, pembelianID, itemID, dto.UpdateItemFieldRequest{
		Field: "jumlah_diterima",
		Value: &v,
	})
	require.NoError(t, err)

	item := resp.Items[0]
	require.NotNil(t, item.JumlahDiterima)
	assert.Equal(t, 8, *item.JumlahDiterima)
	require.NotNil(t, item.Selisih)
	assert.Equal(t, 2, *item.Selisih)
}

func TestUpdateItemFieldDiterimaEqualMeansNoSelisih(t *testing.T) {
	svc, produkRepo, tokoID := setupPembelian(t)
	created := checkoutSatuItem(t, svc, produkRepo, tokoID, 1000, 10)
	pembelianID := uuid.MustParse(created.ID)
	itemID := uuid.MustParse(created.Items[0].ID)

	v := decimal.NewFromInt(10)
	resp, err := svc.UpdateItemField(context.Background(), tokoID, pembelianID, itemID, dto.UpdateItemFieldRequest{
		Field: "jumlah_diterima",
		Value: &v,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Items[0].Selisih)
}

func TestUpdateItemFieldReturKeepsSubtotalInLockstep(t *testing.T) {
	svc, produkRepo, tokoID := setupPembelian(t)
	created := checkoutSatuItem(t, svc, produkRepo, tokoID, 2500, 10)
	pembelianID := uuid.MustParse(created.ID)
	itemID := uuid.MustParse(created.Items[0].ID)

	v := decimal.NewFromInt(2)
	resp, err := svc.UpdateItemField(context.Background(), tokoID, pembelianID, itemID, dto.UpdateItemFieldRequest{
		Field: "jumlah_diretur",
		Value: &v,
	})
	require.NoError(t, err)

	item := resp.Items[0]
	require.NotNil(t, item.SubtotalRetur)
	assert.True(t, item.SubtotalRetur.Equal(decimal.NewFromInt(5000)))
	require.NotNil(t, resp.TotalRetur)
	assert.True(t, resp.TotalRetur.Equal(decimal.NewFromInt(5000)))

	// clearing the quantity clears the subtotal and zeroes the parent total
	resp, err = svc.UpdateItemField(context.Background(), tokoID, pembelianID, itemID, dto.UpdateItemFieldRequest{
		Field: "jumlah_diretur",
		Value: nil,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Items[0].JumlahDiretur)
	assert.Nil(t, resp.Items[0].SubtotalRetur)
	require.NotNil(t, resp.TotalRetur)
	assert.True(t, resp.TotalRetur.IsZero())
}

func TestUpdateItemFieldHargaDoesNotRewriteStoredSubtotals(t *testing.T) {
	svc, produkRepo, tokoID := setupPembelian(t)
	created := checkoutSatuItem(t, svc, produkRepo, tokoID, 1000, 10)
	pembelianID := uuid.MustParse(created.ID)
	itemID := uuid.MustParse(created.Items[0].ID)

	// reconcile first so a subtotal snapshot exists under the old price
	v := decimal.NewFromInt(2)
	_, err := svc.UpdateItemField(context.Background(), tokoID, pembelianID, itemID, dto.UpdateItemFieldRequest{
		Field: "jumlah_diretur", Value: &v,
	})
	require.NoError(t, err)

	harga := decimal.NewFromInt(1200)
	resp, err := svc.UpdateItemField(context.Background(), tokoID, pembelianID, itemID, dto.UpdateItemFieldRequest{
		Field: "harga", Value: &harga,
	})
	require.NoError(t, err)

	item := resp.Items[0]
	assert.True(t, item.Harga.Equal(decimal.NewFromInt(1200)))
	// ordered-total follows the new price, the old retur snapshot does not
	assert.True(t, resp.TotalPembelian.Equal(decimal.NewFromInt(12000)))
	require.NotNil(t, item.SubtotalRetur)
	assert.True(t, item.SubtotalRetur.Equal(decimal.NewFromInt(2000)))
}

func TestUpdateItemFieldHargaNilFails(t *testing.T) {
	svc, produkRepo, tokoID := setupPembelian(t)
	created := checkoutSatuItem(t, svc, produkRepo, tokoID, 1000, 1)
	pembelianID := uuid.MustParse(created.ID)
	itemID := uuid.MustParse(created.Items[0].ID)

	_, err := svc.UpdateItemField(context.Background(), tokoID, pembelianID, itemID, dto.UpdateItemFieldRequest{
		Field: "harga", Value: nil,
	})
	assert.ErrorIs(t, err, ErrHargaKosong)
}

func TestDeleteItemRecomputesTotal(t *testing.T) {
	svc, produkRepo, tokoID := setupPembelian(t)
	a := produkRepo.tambah(&model.Produk{TokoID: tokoID, Nama: "A", HargaBeli: decimal.NewFromInt(100)})
	b := produkRepo.tambah(&model.Produk{TokoID: tokoID, Nama: "B", HargaBeli: decimal.NewFromInt(50)})

	created, err := svc.Checkout(context.Background(), tokoID, dto.CheckoutPembelianRequest{
		Items: []dto.CheckoutItemRequest{
			{ProdukID: a.ID.String(), Jumlah: 2},
			{ProdukID: b.ID.String(), Jumlah: 1},
		},
	})
	require.NoError(t, err)
	require.True(t, created.TotalPembelian.Equal(decimal.NewFromInt(250)))

	pembelianID := uuid.MustParse(created.ID)
	var itemA string
	for _, it := range created.Items {
		if it.Nama == "A" {
			itemA = it.ID
		}
	}
	require.NotEmpty(t, itemA)

	resp, err := svc.DeleteItem(context.Background(), tokoID, pembelianID, uuid.MustParse(itemA))
	require.NoError(t, err)
	assert.True(t, resp.TotalPembelian.Equal(decimal.NewFromInt(50)))
	assert.Len(t, resp.Items, 1)
}

func TestAddItemRecomputesTotal(t *testing.T) {
	svc, produkRepo, tokoID := setupPembelian(t)
	created := checkoutSatuItem(t, svc, produkRepo, tokoID, 1000, 1)
	pembelianID := uuid.MustParse(created.ID)

	resp, err := svc.AddItem(context.Background(), tokoID, pembelianID, dto.AddPembelianItemRequest{
		Nama:   "Tambahan",
		Harga:  decimal.NewFromInt(500),
		Jumlah: 3,
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalPembelian.Equal(decimal.NewFromInt(2500)))
	assert.Len(t, resp.Items, 2)
}

func TestUpdateStatusIsFinal(t *testing.T) {
	svc, produkRepo, tokoID := setupPembelian(t)
	created := checkoutSatuItem(t, svc, produkRepo, tokoID, 1000, 1)
	pembelianID := uuid.MustParse(created.ID)

	err := svc.UpdateStatus(context.Background(), tokoID, pembelianID, dto.UpdateStatusPembelianRequest{
		Status: "confirmed", ConfirmedBy: "Budi",
	})
	require.NoError(t, err)

	resp, err := svc.Get(context.Background(), tokoID, pembelianID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	require.NotNil(t, resp.ConfirmedBy)
	assert.Equal(t, "Budi", *resp.ConfirmedBy)

	err = svc.UpdateStatus(context.Background(), tokoID, pembelianID, dto.UpdateStatusPembelianRequest{
		Status: "rejected", ConfirmedBy: "Sari",
	})
	assert.ErrorIs(t, err, ErrStatusFinal)
}

func TestPembelianScopedByToko(t *testing.T) {
	svc, produkRepo, tokoID := setupPembelian(t)
	created := checkoutSatuItem(t, svc, produkRepo, tokoID, 1000, 1)

	_, err := svc.Get(context.Background(), uuid.New(), uuid.MustParse(created.ID))
	assert.ErrorIs(t, err, ErrPembelianNotFound)
}
