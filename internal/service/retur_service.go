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

type ReturService struct {
	repo repository.ReturRepository
}

func NewReturService(repo repository.ReturRepository) *ReturService {
	return &ReturService{repo: repo}
}

// Create records a return. Line subtotals and the document total are always
// derived from harga_beli × jumlah_retur, never accepted from the client.
func (s *ReturService) Create(ctx context.Context, tokoID uuid.UUID, req dto.CreateReturRequest) (*dto.ReturResponse, error) {
	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return nil, ErrTanggalInvalid
	}

	ret := &model.Retur{
		TokoID:  tokoID,
		Tanggal: tanggal,
	}
	for _, it := range req.Items {
		pid, err := uuid.Parse(it.ProdukID)
		if err != nil {
			return nil, ErrProdukNotFound
		}
		subtotal := it.HargaBeli.Mul(decimal.NewFromInt(int64(it.JumlahRetur)))
		ret.Items = append(ret.Items, model.ReturItem{
			ProdukID:    pid,
			Nama:        it.Nama,
			HargaBeli:   it.HargaBeli,
			JumlahRetur: it.JumlahRetur,
			Subtotal:    subtotal,
		})
		ret.TotalRetur = ret.TotalRetur.Add(subtotal)
	}

	if err := s.repo.Create(ctx, ret); err != nil {
		return nil, err
	}
	return mapRetur(ret, true), nil
}

func (s *ReturService) List(ctx context.Context, tokoID uuid.UUID) (*dto.ReturListResponse, error) {
	rows, err := s.repo.List(ctx, tokoID)
	if err != nil {
		return nil, err
	}
	resp := &dto.ReturListResponse{Data: make([]dto.ReturResponse, 0, len(rows)), Total: len(rows)}
	for i := range rows {
		resp.Data = append(resp.Data, *mapRetur(&rows[i], false))
	}
	return resp, nil
}

func (s *ReturService) Get(ctx context.Context, tokoID, id uuid.UUID) (*dto.ReturResponse, error) {
	ret, err := s.findRetur(ctx, tokoID, id)
	if err != nil {
		return nil, err
	}
	return mapRetur(ret, true), nil
}

func (s *ReturService) Update(ctx context.Context, tokoID, id uuid.UUID, req dto.UpdateReturRequest) (*dto.ReturResponse, error) {
	ret, err := s.findRetur(ctx, tokoID, id)
	if err != nil {
		return nil, err
	}
	if req.Tanggal != nil {
		tanggal, err := time.Parse("2006-01-02", *req.Tanggal)
		if err != nil {
			return nil, ErrTanggalInvalid
		}
		ret.Tanggal = tanggal
	}
	if err := s.repo.Update(ctx, ret); err != nil {
		return nil, err
	}
	return mapRetur(ret, true), nil
}

func (s *ReturService) Delete(ctx context.Context, tokoID, id uuid.UUID) error {
	if _, err := s.findRetur(ctx, tokoID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, tokoID, id)
}

func (s *ReturService) findRetur(ctx context.Context, tokoID, id uuid.UUID) (*model.Retur, error) {
	ret, err := s.repo.FindByID(ctx, tokoID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReturNotFound
		}
		return nil, err
	}
	return ret, nil
}

func mapRetur(ret *model.Retur, withItems bool) *dto.ReturResponse {
	resp := &dto.ReturResponse{
		ID:         ret.ID.String(),
		Tanggal:    ret.Tanggal.Format("2006-01-02"),
		TotalRetur: ret.TotalRetur,
	}
	if withItems {
		for _, it := range ret.Items {
			resp.Items = append(resp.Items, dto.ReturItemResponse{
				ID:          it.ID.String(),
				ProdukID:    it.ProdukID.String(),
				Nama:        it.Nama,
				HargaBeli:   it.HargaBeli,
				JumlahRetur: it.JumlahRetur,
				Subtotal:    it.Subtotal,
			})
		}
	}
	return resp
}
