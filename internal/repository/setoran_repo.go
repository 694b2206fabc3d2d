package repository

import (
	"context"
	"time"

	"tokopos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// laporanFetchCap bounds every report query. The legacy client pulled the
// 1000 most recent rows and filtered locally; here the range is pushed into
// SQL and the cap only guards runaway result sets.
const laporanFetchCap = 1000

type SetoranRepository interface {
	Create(ctx context.Context, s *model.Setoran) error
	List(ctx context.Context, tokoID uuid.UUID) ([]model.Setoran, error)
	// ListByRange pushes the date filter into the query, date descending.
	ListByRange(ctx context.Context, tokoID uuid.UUID, start, end time.Time) ([]model.Setoran, error)
}

type setoranRepo struct{ db *gorm.DB }

func NewSetoranRepository(db *gorm.DB) SetoranRepository { return &setoranRepo{db: db} }

func (r *setoranRepo) Create(ctx context.Context, s *model.Setoran) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *setoranRepo) List(ctx context.Context, tokoID uuid.UUID) ([]model.Setoran, error) {
	var setoran []model.Setoran
	err := r.db.WithContext(ctx).Where("toko_id = ?", tokoID).
		Order("tanggal DESC").Limit(laporanFetchCap).Find(&setoran).Error
	return setoran, err
}

func (r *setoranRepo) ListByRange(ctx context.Context, tokoID uuid.UUID, start, end time.Time) ([]model.Setoran, error) {
	var setoran []model.Setoran
	err := r.db.WithContext(ctx).
		Where("toko_id = ? AND tanggal BETWEEN ? AND ?", tokoID, start, end).
		Order("tanggal DESC").Limit(laporanFetchCap).Find(&setoran).Error
	return setoran, err
}
