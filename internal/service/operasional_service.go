package service

import (
	"context"
	"errors"
	"time"

	"tokopos/internal/dto"
	"tokopos/internal/model"
	"tokopos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OperasionalService struct {
	repo repository.OperasionalRepository
}

func NewOperasionalService(repo repository.OperasionalRepository) *OperasionalService {
	return &OperasionalService{repo: repo}
}

// Create records an expense document. Total is always the item sum.
func (s *OperasionalService) Create(ctx context.Context, tokoID uuid.UUID, req dto.CreateOperasionalRequest) (*dto.OperasionalResponse, error) {
	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return nil, ErrTanggalInvalid
	}
	op := &model.Operasional{
		TokoID:  tokoID,
		Tanggal: tanggal,
		Kasir:   req.Kasir,
		Catatan: req.Catatan,
	}
	for _, it := range req.Items {
		op.Items = append(op.Items, model.OperasionalItem{
			Amount:      it.Amount,
			Description: it.Description,
			Type:        it.Type,
		})
		op.Total = op.Total.Add(it.Amount)
	}
	if err := s.repo.Create(ctx, op); err != nil {
		return nil, err
	}
	return mapOperasional(op, true), nil
}

func (s *OperasionalService) Get(ctx context.Context, tokoID, id uuid.UUID) (*dto.OperasionalResponse, error) {
	op, err := s.repo.FindByID(ctx, tokoID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOperasionalNotFound
		}
		return nil, err
	}
	return mapOperasional(op, true), nil
}

func (s *OperasionalService) Delete(ctx context.Context, tokoID, id uuid.UUID) error {
	if _, err := s.Get(ctx, tokoID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, tokoID, id)
}

// Laporan aggregates expenses over the inclusive date range.
func (s *OperasionalService) Laporan(ctx context.Context, tokoID uuid.UUID, start, end time.Time) (*dto.LaporanOperasionalResponse, error) {
	from, to := RentangHari(start, end)
	rows, err := s.repo.ListByRange(ctx, tokoID, from, to)
	if err != nil {
		return nil, err
	}
	return AggregateOperasional(rows), nil
}

// AggregateOperasional folds expense documents into the report. Lines with an
// empty type are dropped from the per-type breakdown but still count in the
// grand total; legacy documents with a zero stored total fall back to their
// item sum.
func AggregateOperasional(rows []model.Operasional) *dto.LaporanOperasionalResponse {
	resp := &dto.LaporanOperasionalResponse{
		BreakdownByType: map[string]decimal.Decimal{},
		Operasional:     []dto.OperasionalResponse{},
	}
	for i := range rows {
		op := &rows[i]
		resp.TotalPengeluaran = resp.TotalPengeluaran.Add(effectiveTotalOperasional(op))
		resp.JumlahTransaksi++
		for _, it := range op.Items {
			if it.Type == "" {
				continue
			}
			resp.BreakdownByType[it.Type] = resp.BreakdownByType[it.Type].Add(it.Amount)
		}
		resp.Operasional = append(resp.Operasional, *mapOperasional(op, true))
	}
	if resp.JumlahTransaksi > 0 {
		resp.RataRataPengeluaran = resp.TotalPengeluaran.Div(decimal.NewFromInt(int64(resp.JumlahTransaksi)))
	}
	return resp
}

func effectiveTotalOperasional(op *model.Operasional) decimal.Decimal {
	if !op.Total.IsZero() || len(op.Items) == 0 {
		return op.Total
	}
	sum := decimal.Zero
	for _, it := range op.Items {
		sum = sum.Add(it.Amount)
	}
	return sum
}

func mapOperasional(op *model.Operasional, withItems bool) *dto.OperasionalResponse {
	resp := &dto.OperasionalResponse{
		ID:      op.ID.String(),
		Tanggal: op.Tanggal.Format("2006-01-02"),
		Total:   op.Total,
		Kasir:   op.Kasir,
		Catatan: op.Catatan,
	}
	if withItems {
		for _, it := range op.Items {
			resp.Items = append(resp.Items, dto.OperasionalItemResponse{
				Amount:      it.Amount,
				Description: it.Description,
				Type:        it.Type,
			})
		}
	}
	return resp
}
