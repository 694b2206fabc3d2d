package service

import (
	"context"
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

type stubReturRepo struct {
	rows map[uuid.UUID]*model.Retur
}

var _ repository.ReturRepository = (*stubReturRepo)(nil)

func newStubReturRepo() *stubReturRepo {
	return &stubReturRepo{rows: make(map[uuid.UUID]*model.Retur)}
}

func (r *stubReturRepo) Create(_ context.Context, ret *model.Retur) error {
	if ret.ID == uuid.Nil {
		ret.ID = uuid.New()
	}
	cloned := *ret
	r.rows[ret.ID] = &cloned
	return nil
}

func (r *stubReturRepo) FindByID(_ context.Context, tokoID, id uuid.UUID) (*model.Retur, error) {
	ret, ok := r.rows[id]
	if !ok || ret.TokoID != tokoID {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *ret
	return &cloned, nil
}

func (r *stubReturRepo) List(_ context.Context, tokoID uuid.UUID) ([]model.Retur, error) {
	var out []model.Retur
	for _, ret := range r.rows {
		if ret.TokoID == tokoID {
			out = append(out, *ret)
		}
	}
	return out, nil
}

func (r *stubReturRepo) Update(_ context.Context, ret *model.Retur) error {
	cloned := *ret
	r.rows[ret.ID] = &cloned
	return nil
}

func (r *stubReturRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	delete(r.rows, id)
	return nil
}

func TestReturCreateDerivesSubtotals(t *testing.T) {
	svc := NewReturService(newStubReturRepo())

	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateReturRequest{
		Tanggal: "2025-08-21",
		Items: []dto.ReturItemRequest{
			{ProdukID: uuid.NewString(), Nama: "Teh Botol", HargaBeli: decimal.NewFromInt(3000), JumlahRetur: 4},
			{ProdukID: uuid.NewString(), Nama: "Sabun", HargaBeli: decimal.NewFromInt(2500), JumlahRetur: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-08-21", resp.Tanggal)
	assert.True(t, resp.TotalRetur.Equal(decimal.NewFromInt(17000)))
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[0].Subtotal.Equal(decimal.NewFromInt(12000)))
	assert.True(t, resp.Items[1].Subtotal.Equal(decimal.NewFromInt(5000)))
}

func TestReturCreateBadTanggal(t *testing.T) {
	svc := NewReturService(newStubReturRepo())

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateReturRequest{
		Tanggal: "21-08-2025",
		Items:   []dto.ReturItemRequest{{ProdukID: uuid.NewString(), Nama: "X", JumlahRetur: 1}},
	})
	assert.ErrorIs(t, err, ErrTanggalInvalid)
}

func TestReturUpdateChangesTanggalOnly(t *testing.T) {
	repo := newStubReturRepo()
	svc := NewReturService(repo)
	tokoID := uuid.New()

	created, err := svc.Create(context.Background(), tokoID, dto.CreateReturRequest{
		Tanggal: "2025-08-21",
		Items:   []dto.ReturItemRequest{{ProdukID: uuid.NewString(), Nama: "X", HargaBeli: decimal.NewFromInt(1000), JumlahRetur: 1}},
	})
	require.NoError(t, err)

	tanggal := "2025-08-25"
	updated, err := svc.Update(context.Background(), tokoID, uuid.MustParse(created.ID), dto.UpdateReturRequest{Tanggal: &tanggal})
	require.NoError(t, err)

	assert.Equal(t, "2025-08-25", updated.Tanggal)
	assert.True(t, updated.TotalRetur.Equal(created.TotalRetur))
}

func TestReturScopedByToko(t *testing.T) {
	repo := newStubReturRepo()
	svc := NewReturService(repo)

	created, err := svc.Create(context.Background(), uuid.New(), dto.CreateReturRequest{
		Tanggal: "2025-08-21",
		Items:   []dto.ReturItemRequest{{ProdukID: uuid.NewString(), Nama: "X", HargaBeli: decimal.NewFromInt(1000), JumlahRetur: 1}},
	})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), uuid.New(), uuid.MustParse(created.ID))
	assert.ErrorIs(t, err, ErrReturNotFound)
}
