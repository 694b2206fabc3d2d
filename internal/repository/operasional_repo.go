package repository

import (
	"context"
	"time"

	"tokopos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OperasionalRepository interface {
	Create(ctx context.Context, o *model.Operasional) error
	FindByID(ctx context.Context, tokoID, id uuid.UUID) (*model.Operasional, error)
	ListByRange(ctx context.Context, tokoID uuid.UUID, start, end time.Time) ([]model.Operasional, error)
	Delete(ctx context.Context, tokoID, id uuid.UUID) error
}

type operasionalRepo struct{ db *gorm.DB }

func NewOperasionalRepository(db *gorm.DB) OperasionalRepository {
	return &operasionalRepo{db: db}
}

func (r *operasionalRepo) Create(ctx context.Context, o *model.Operasional) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *operasionalRepo) FindByID(ctx context.Context, tokoID, id uuid.UUID) (*model.Operasional, error) {
	var o model.Operasional
	err := r.db.WithContext(ctx).Preload("Items").
		Where("toko_id = ?", tokoID).First(&o, id).Error
	return &o, err
}

func (r *operasionalRepo) ListByRange(ctx context.Context, tokoID uuid.UUID, start, end time.Time) ([]model.Operasional, error) {
	var operasional []model.Operasional
	err := r.db.WithContext(ctx).Preload("Items").
		Where("toko_id = ? AND tanggal BETWEEN ? AND ?", tokoID, start, end).
		Order("tanggal DESC").Limit(laporanFetchCap).Find(&operasional).Error
	return operasional, err
}

func (r *operasionalRepo) Delete(ctx context.Context, tokoID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("operasional_id = ?", id).Delete(&model.OperasionalItem{}).Error; err != nil {
			return err
		}
		return tx.Where("toko_id = ?", tokoID).Delete(&model.Operasional{}, id).Error
	})
}
