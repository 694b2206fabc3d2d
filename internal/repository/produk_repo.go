package repository

import (
	"context"

	"tokopos/internal/dto"
	"tokopos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProdukRepository interface {
	Create(ctx context.Context, p *model.Produk) error
	// CreateBatch inserts imported rows in one transaction so a half-failed
	// import never leaves partial catalog state.
	CreateBatch(ctx context.Context, produk []model.Produk) error
	FindByID(ctx context.Context, tokoID, id uuid.UUID) (*model.Produk, error)
	List(ctx context.Context, tokoID uuid.UUID, filter dto.ProdukFilter) ([]model.Produk, error)
	Update(ctx context.Context, p *model.Produk) error
	UpdateStok(ctx context.Context, tokoID, id uuid.UUID, stok int) error
	UpdateHargaBeli(ctx context.Context, tokoID, id uuid.UUID, harga decimal.Decimal) error
	Delete(ctx context.Context, tokoID, id uuid.UUID) error
}

type produkRepo struct{ db *gorm.DB }

func NewProdukRepository(db *gorm.DB) ProdukRepository { return &produkRepo{db: db} }

func (r *produkRepo) Create(ctx context.Context, p *model.Produk) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produkRepo) CreateBatch(ctx context.Context, produk []model.Produk) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&produk).Error
	})
}

func (r *produkRepo) FindByID(ctx context.Context, tokoID, id uuid.UUID) (*model.Produk, error) {
	var p model.Produk
	err := r.db.WithContext(ctx).Where("toko_id = ?", tokoID).First(&p, id).Error
	return &p, err
}

func (r *produkRepo) List(ctx context.Context, tokoID uuid.UUID, filter dto.ProdukFilter) ([]model.Produk, error) {
	var produk []model.Produk

	q := r.db.WithContext(ctx).Where("toko_id = ?", tokoID)
	if filter.Nama != "" {
		q = q.Where("nama ILIKE ?", "%"+filter.Nama+"%")
	}
	if filter.Kategori != "" {
		q = q.Where("kategori = ?", filter.Kategori)
	}
	if filter.Barcode != "" {
		q = q.Where("barcode = ?", filter.Barcode)
	}

	// Most recently touched first, matching the catalog screen ordering.
	err := q.Order("updated_at DESC").Find(&produk).Error
	return produk, err
}

func (r *produkRepo) Update(ctx context.Context, p *model.Produk) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *produkRepo) UpdateStok(ctx context.Context, tokoID, id uuid.UUID, stok int) error {
	return r.db.WithContext(ctx).Model(&model.Produk{}).
		Where("toko_id = ? AND id = ?", tokoID, id).
		Update("stok", stok).Error
}

func (r *produkRepo) UpdateHargaBeli(ctx context.Context, tokoID, id uuid.UUID, harga decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.Produk{}).
		Where("toko_id = ? AND id = ?", tokoID, id).
		Update("harga_beli", harga).Error
}

func (r *produkRepo) Delete(ctx context.Context, tokoID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("toko_id = ?", tokoID).Delete(&model.Produk{}, id).Error
}
