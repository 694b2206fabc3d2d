package repository

import (
	"context"

	"tokopos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReturRepository interface {
	// Create inserts the header and all items in one transaction.
	Create(ctx context.Context, r *model.Retur) error
	FindByID(ctx context.Context, tokoID, id uuid.UUID) (*model.Retur, error)
	List(ctx context.Context, tokoID uuid.UUID) ([]model.Retur, error)
	Update(ctx context.Context, r *model.Retur) error
	// Delete removes the header and its items together.
	Delete(ctx context.Context, tokoID, id uuid.UUID) error
}

type returRepo struct{ db *gorm.DB }

func NewReturRepository(db *gorm.DB) ReturRepository { return &returRepo{db: db} }

func (r *returRepo) Create(ctx context.Context, ret *model.Retur) error {
	// GORM writes the associated Items rows in the same transaction as the
	// header when created through the parent struct.
	return r.db.WithContext(ctx).Create(ret).Error
}

func (r *returRepo) FindByID(ctx context.Context, tokoID, id uuid.UUID) (*model.Retur, error) {
	var ret model.Retur
	err := r.db.WithContext(ctx).Preload("Items").
		Where("toko_id = ?", tokoID).First(&ret, id).Error
	return &ret, err
}

func (r *returRepo) List(ctx context.Context, tokoID uuid.UUID) ([]model.Retur, error) {
	var retur []model.Retur
	err := r.db.WithContext(ctx).Where("toko_id = ?", tokoID).
		Order("tanggal DESC").Find(&retur).Error
	return retur, err
}

func (r *returRepo) Update(ctx context.Context, ret *model.Retur) error {
	return r.db.WithContext(ctx).Model(&model.Retur{}).
		Where("id = ?", ret.ID).
		Updates(map[string]interface{}{"tanggal": ret.Tanggal, "total_retur": ret.TotalRetur}).Error
}

func (r *returRepo) Delete(ctx context.Context, tokoID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("retur_id = ?", id).Delete(&model.ReturItem{}).Error; err != nil {
			return err
		}
		return tx.Where("toko_id = ?", tokoID).Delete(&model.Retur{}, id).Error
	})
}
