package repository

import (
	"context"

	"tokopos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokoRepository defines data access for stores. Services depend on this
// interface, not on the concrete GORM implementation, enabling clean unit
// testing via stubs.
type TokoRepository interface {
	Create(ctx context.Context, t *model.Toko) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Toko, error)
	List(ctx context.Context) ([]model.Toko, error)
	Update(ctx context.Context, t *model.Toko) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type tokoRepo struct{ db *gorm.DB }

func NewTokoRepository(db *gorm.DB) TokoRepository { return &tokoRepo{db: db} }

func (r *tokoRepo) Create(ctx context.Context, t *model.Toko) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tokoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Toko, error) {
	var t model.Toko
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *tokoRepo) List(ctx context.Context) ([]model.Toko, error) {
	var toko []model.Toko
	err := r.db.WithContext(ctx).Order("updated_at DESC").Find(&toko).Error
	return toko, err
}

func (r *tokoRepo) Update(ctx context.Context, t *model.Toko) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *tokoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Toko{}, id).Error
}
