package service

import (
	"context"
	"time"

	"tokopos/internal/dto"
	"tokopos/internal/model"
	"tokopos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SetoranService struct {
	repo repository.SetoranRepository
}

func NewSetoranService(repo repository.SetoranRepository) *SetoranService {
	return &SetoranService{repo: repo}
}

// Create records a deposit. Total is always cash+qris+transfer.
func (s *SetoranService) Create(ctx context.Context, tokoID uuid.UUID, req dto.CreateSetoranRequest) (*dto.SetoranResponse, error) {
	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return nil, ErrTanggalInvalid
	}
	st := &model.Setoran{
		TokoID:   tokoID,
		Tanggal:  tanggal,
		Cash:     req.Cash,
		Qris:     req.Qris,
		Transfer: req.Transfer,
		Total:    req.Cash.Add(req.Qris).Add(req.Transfer),
		Kasir:    req.Kasir,
		Catatan:  req.Catatan,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return mapSetoran(st), nil
}

func (s *SetoranService) List(ctx context.Context, tokoID uuid.UUID) ([]dto.SetoranResponse, error) {
	rows, err := s.repo.List(ctx, tokoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SetoranResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *mapSetoran(&rows[i]))
	}
	return out, nil
}

// Laporan aggregates deposits over the inclusive date range.
func (s *SetoranService) Laporan(ctx context.Context, tokoID uuid.UUID, start, end time.Time) (*dto.LaporanSetoranResponse, error) {
	from, to := RentangHari(start, end)
	rows, err := s.repo.ListByRange(ctx, tokoID, from, to)
	if err != nil {
		return nil, err
	}
	return AggregateSetoran(rows), nil
}

// AggregateSetoran folds deposit rows into the report. The grand total sums
// the stored totals, so a legacy row whose total diverges from its channel
// sum counts at its stored value; the per-row Selisih flags the divergence.
func AggregateSetoran(rows []model.Setoran) *dto.LaporanSetoranResponse {
	resp := &dto.LaporanSetoranResponse{
		Setoran: []dto.SetoranResponse{},
	}
	for i := range rows {
		st := &rows[i]
		resp.TotalCash = resp.TotalCash.Add(st.Cash)
		resp.TotalQris = resp.TotalQris.Add(st.Qris)
		resp.TotalTransfer = resp.TotalTransfer.Add(st.Transfer)
		resp.TotalKeseluruhan = resp.TotalKeseluruhan.Add(st.Total)
		resp.JumlahSetoran++
		resp.Setoran = append(resp.Setoran, *mapSetoran(st))
	}
	if resp.JumlahSetoran > 0 {
		resp.RataRataSetoran = resp.TotalKeseluruhan.Div(decimal.NewFromInt(int64(resp.JumlahSetoran)))
	}
	return resp
}

func mapSetoran(st *model.Setoran) *dto.SetoranResponse {
	resp := &dto.SetoranResponse{
		ID:       st.ID.String(),
		Tanggal:  st.Tanggal.Format("2006-01-02"),
		Cash:     st.Cash,
		Qris:     st.Qris,
		Transfer: st.Transfer,
		Total:    st.Total,
		Kasir:    st.Kasir,
		Catatan:  st.Catatan,
	}
	if selisih := st.Total.Sub(st.Cash.Add(st.Qris).Add(st.Transfer)); !selisih.IsZero() {
		resp.Selisih = &selisih
	}
	return resp
}
