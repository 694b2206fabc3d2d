package repository

import (
	"context"

	"tokopos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PembelianRepository interface {
	// CreateTx inserts the header and its items; callers pass the tx so the
	// whole checkout is one atomic write.
	CreateTx(tx *gorm.DB, p *model.Pembelian) error
	FindByID(ctx context.Context, tokoID, id uuid.UUID) (*model.Pembelian, error)
	List(ctx context.Context, tokoID uuid.UUID) ([]model.Pembelian, error)
	UpdateStatus(ctx context.Context, tokoID, id uuid.UUID, status, confirmedBy string) error

	FindItemByID(ctx context.Context, pembelianID, itemID uuid.UUID) (*model.PembelianItem, error)
	ListItems(ctx context.Context, pembelianID uuid.UUID) ([]model.PembelianItem, error)

	// Item and parent-total writes happen inside the same tx; callers open it
	// via DB().Transaction.
	UpdateItemTx(tx *gorm.DB, itemID uuid.UUID, updates map[string]interface{}) error
	AddItemTx(tx *gorm.DB, item *model.PembelianItem) error
	DeleteItemTx(tx *gorm.DB, itemID uuid.UUID) error
	UpdateTotalsTx(tx *gorm.DB, pembelianID uuid.UUID, updates map[string]interface{}) error
	DeleteTx(tx *gorm.DB, tokoID, id uuid.UUID) error

	// DB exposes the underlying *gorm.DB so the service can open transactions.
	DB() *gorm.DB
}

type pembelianRepo struct{ db *gorm.DB }

func NewPembelianRepository(db *gorm.DB) PembelianRepository { return &pembelianRepo{db: db} }

func (r *pembelianRepo) DB() *gorm.DB { return r.db }

func (r *pembelianRepo) CreateTx(tx *gorm.DB, p *model.Pembelian) error {
	return tx.Create(p).Error
}

func (r *pembelianRepo) FindByID(ctx context.Context, tokoID, id uuid.UUID) (*model.Pembelian, error) {
	var p model.Pembelian
	err := r.db.WithContext(ctx).Preload("Items").
		Where("toko_id = ?", tokoID).First(&p, id).Error
	return &p, err
}

func (r *pembelianRepo) List(ctx context.Context, tokoID uuid.UUID) ([]model.Pembelian, error) {
	var pembelian []model.Pembelian
	err := r.db.WithContext(ctx).Where("toko_id = ?", tokoID).
		Order("created_at DESC").Find(&pembelian).Error
	return pembelian, err
}

func (r *pembelianRepo) UpdateStatus(ctx context.Context, tokoID, id uuid.UUID, status, confirmedBy string) error {
	return r.db.WithContext(ctx).Model(&model.Pembelian{}).
		Where("toko_id = ? AND id = ?", tokoID, id).
		Updates(map[string]interface{}{"status": status, "confirmed_by": confirmedBy}).Error
}

func (r *pembelianRepo) FindItemByID(ctx context.Context, pembelianID, itemID uuid.UUID) (*model.PembelianItem, error) {
	var item model.PembelianItem
	err := r.db.WithContext(ctx).Where("pembelian_id = ?", pembelianID).First(&item, itemID).Error
	return &item, err
}

func (r *pembelianRepo) ListItems(ctx context.Context, pembelianID uuid.UUID) ([]model.PembelianItem, error) {
	var items []model.PembelianItem
	err := r.db.WithContext(ctx).Where("pembelian_id = ?", pembelianID).
		Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *pembelianRepo) UpdateItemTx(tx *gorm.DB, itemID uuid.UUID, updates map[string]interface{}) error {
	return tx.Model(&model.PembelianItem{}).Where("id = ?", itemID).Updates(updates).Error
}

func (r *pembelianRepo) AddItemTx(tx *gorm.DB, item *model.PembelianItem) error {
	return tx.Create(item).Error
}

func (r *pembelianRepo) DeleteItemTx(tx *gorm.DB, itemID uuid.UUID) error {
	return tx.Delete(&model.PembelianItem{}, itemID).Error
}

func (r *pembelianRepo) UpdateTotalsTx(tx *gorm.DB, pembelianID uuid.UUID, updates map[string]interface{}) error {
	return tx.Model(&model.Pembelian{}).Where("id = ?", pembelianID).Updates(updates).Error
}

func (r *pembelianRepo) DeleteTx(tx *gorm.DB, tokoID, id uuid.UUID) error {
	if err := tx.Where("pembelian_id = ?", id).Delete(&model.PembelianItem{}).Error; err != nil {
		return err
	}
	return tx.Where("toko_id = ?", tokoID).Delete(&model.Pembelian{}, id).Error
}
