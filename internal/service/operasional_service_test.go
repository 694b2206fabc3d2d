package service

import (
	"context"
	"testing"
	"time"

	"tokopos/internal/dto"
	"tokopos/internal/model"
	"tokopos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubOperasionalRepo struct {
	rows map[uuid.UUID]*model.Operasional
}

var _ repository.OperasionalRepository = (*stubOperasionalRepo)(nil)

func newStubOperasionalRepo() *stubOperasionalRepo {
	return &stubOperasionalRepo{rows: make(map[uuid.UUID]*model.Operasional)}
}

func (r *stubOperasionalRepo) Create(_ context.Context, o *model.Operasional) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	cloned := *o
	r.rows[o.ID] = &cloned
	return nil
}

func (r *stubOperasionalRepo) FindByID(_ context.Context, tokoID, id uuid.UUID) (*model.Operasional, error) {
	o, ok := r.rows[id]
	if !ok || o.TokoID != tokoID {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *o
	return &cloned, nil
}

func (r *stubOperasionalRepo) ListByRange(_ context.Context, tokoID uuid.UUID, start, end time.Time) ([]model.Operasional, error) {
	var out []model.Operasional
	for _, o := range r.rows {
		if o.TokoID == tokoID && !o.Tanggal.Before(start) && !o.Tanggal.After(end) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOperasionalRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	delete(r.rows, id)
	return nil
}

func TestOperasionalCreateSumsItems(t *testing.T) {
	svc := NewOperasionalService(newStubOperasionalRepo())

	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateOperasionalRequest{
		Tanggal: "2025-08-21",
		Items: []dto.OperasionalItemRequest{
			{Amount: decimal.NewFromInt(200000), Description: "Token listrik", Type: "listrik"},
			{Amount: decimal.NewFromInt(50000), Description: "Plastik kresek", Type: "perlengkapan"},
		},
		Kasir: "Sari",
	})
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(decimal.NewFromInt(250000)))
	assert.Len(t, resp.Items, 2)
}

func TestOperasionalDeleteThenGetFails(t *testing.T) {
	repo := newStubOperasionalRepo()
	svc := NewOperasionalService(repo)
	tokoID := uuid.New()

	resp, err := svc.Create(context.Background(), tokoID, dto.CreateOperasionalRequest{
		Tanggal: "2025-08-21",
		Items:   []dto.OperasionalItemRequest{{Amount: decimal.NewFromInt(1000)}},
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	require.NoError(t, svc.Delete(context.Background(), tokoID, id))
	_, err = svc.Get(context.Background(), tokoID, id)
	assert.ErrorIs(t, err, ErrOperasionalNotFound)
}

// Lines without a type stay out of the breakdown but their amount still
// counts in the grand total.
func TestAggregateOperasionalBreakdownSkipsEmptyType(t *testing.T) {
	rows := []model.Operasional{
		{
			Tanggal: time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
			Total:   decimal.NewFromInt(300000),
			Items: []model.OperasionalItem{
				{Amount: decimal.NewFromInt(200000), Type: "gaji"},
				{Amount: decimal.NewFromInt(100000), Type: ""},
			},
		},
	}

	resp := AggregateOperasional(rows)

	assert.True(t, resp.TotalPengeluaran.Equal(decimal.NewFromInt(300000)))
	require.Len(t, resp.BreakdownByType, 1)
	assert.True(t, resp.BreakdownByType["gaji"].Equal(decimal.NewFromInt(200000)))
}

// Legacy documents can carry a zero stored total; the report falls back to
// the item sum for those.
func TestAggregateOperasionalZeroTotalFallsBackToItemSum(t *testing.T) {
	rows := []model.Operasional{
		{
			Tanggal: time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
			Items: []model.OperasionalItem{
				{Amount: decimal.NewFromInt(75000), Type: "sewa"},
			},
		},
		{
			Tanggal: time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC),
			Total:   decimal.NewFromInt(25000),
			Items: []model.OperasionalItem{
				{Amount: decimal.NewFromInt(25000), Type: "sewa"},
			},
		},
	}

	resp := AggregateOperasional(rows)

	assert.True(t, resp.TotalPengeluaran.Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, 2, resp.JumlahTransaksi)
	assert.True(t, resp.RataRataPengeluaran.Equal(decimal.NewFromInt(50000)))
}

func TestAggregateOperasionalEmpty(t *testing.T) {
	resp := AggregateOperasional(nil)

	assert.Equal(t, 0, resp.JumlahTransaksi)
	assert.True(t, resp.RataRataPengeluaran.IsZero())
	assert.Empty(t, resp.BreakdownByType)
}
