package repository

import (
	"context"
	"time"

	"tokopos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransaksiRepository interface {
	Create(ctx context.Context, t *model.Transaksi) error
	FindByID(ctx context.Context, tokoID, id uuid.UUID) (*model.Transaksi, error)
	// ListForRange returns rows whose native timestamp falls in [start, end],
	// plus every legacy row that only has a raw string date — those cannot be
	// filtered in SQL and are resolved by the aggregator.
	ListForRange(ctx context.Context, tokoID uuid.UUID, start, end time.Time) ([]model.Transaksi, error)
}

type transaksiRepo struct{ db *gorm.DB }

func NewTransaksiRepository(db *gorm.DB) TransaksiRepository { return &transaksiRepo{db: db} }

func (r *transaksiRepo) Create(ctx context.Context, t *model.Transaksi) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *transaksiRepo) FindByID(ctx context.Context, tokoID, id uuid.UUID) (*model.Transaksi, error) {
	var t model.Transaksi
	err := r.db.WithContext(ctx).Preload("Items").
		Where("toko_id = ?", tokoID).First(&t, id).Error
	return &t, err
}

func (r *transaksiRepo) ListForRange(ctx context.Context, tokoID uuid.UUID, start, end time.Time) ([]model.Transaksi, error) {
	var transaksi []model.Transaksi
	err := r.db.WithContext(ctx).Preload("Items").
		Where("toko_id = ?", tokoID).
		Where("(waktu BETWEEN ? AND ?) OR (waktu IS NULL AND waktu_raw IS NOT NULL)", start, end).
		Order("waktu DESC NULLS LAST").Limit(laporanFetchCap).
		Find(&transaksi).Error
	return transaksi, err
}
