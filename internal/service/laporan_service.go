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

// LaporanEmailJob is the payload queued for the email worker: render the
// sales report for the range and mail the PDF.
type LaporanEmailJob struct {
	TokoID  uuid.UUID `json:"toko_id"`
	ToEmail string    `json:"to_email"`
	Start   string    `json:"start"` // YYYY-MM-DD
	End     string    `json:"end"`   // YYYY-MM-DD
}

// LaporanDispatcher hands jobs to the worker pool. Implemented by
// worker.Dispatcher; an interface here keeps the dependency one-way.
type LaporanDispatcher interface {
	EnqueueLaporanEmail(ctx context.Context, job LaporanEmailJob) error
}

type LaporanService struct {
	transaksi  repository.TransaksiRepository
	dispatcher LaporanDispatcher
}

func NewLaporanService(transaksi repository.TransaksiRepository, dispatcher LaporanDispatcher) *LaporanService {
	return &LaporanService{transaksi: transaksi, dispatcher: dispatcher}
}

// Penjualan builds the sales report for the inclusive date range. The range
// is widened to full days before querying.
func (s *LaporanService) Penjualan(ctx context.Context, tokoID uuid.UUID, start, end time.Time) (*dto.LaporanPenjualanResponse, error) {
	from, to := RentangHari(start, end)
	rows, err := s.transaksi.ListForRange(ctx, tokoID, from, to)
	if err != nil {
		return nil, err
	}
	return AggregatePenjualan(rows, from, to), nil
}

// EmailPenjualan validates the request and queues the render-and-send job.
// Rendering happens off the request path in the worker pool.
func (s *LaporanService) EmailPenjualan(ctx context.Context, tokoID uuid.UUID, req dto.EmailLaporanRequest) error {
	if _, err := time.Parse("2006-01-02", req.Start); err != nil {
		return ErrTanggalInvalid
	}
	if _, err := time.Parse("2006-01-02", req.End); err != nil {
		return ErrTanggalInvalid
	}
	return s.dispatcher.EnqueueLaporanEmail(ctx, LaporanEmailJob{
		TokoID:  tokoID,
		ToEmail: req.ToEmail,
		Start:   req.Start,
		End:     req.End,
	})
}

// AggregatePenjualan folds transaction rows into the report. The SQL range
// filter only covers rows with a native timestamp; legacy rows ride along
// with just a raw string, so the effective timestamp is resolved here and the
// range re-checked. Rows whose raw string cannot be parsed are excluded from
// every figure and surfaced in TanggalInvalid.
func AggregatePenjualan(rows []model.Transaksi, start, end time.Time) *dto.LaporanPenjualanResponse {
	resp := &dto.LaporanPenjualanResponse{
		Penjualan: []dto.TransaksiResponse{},
	}
	for i := range rows {
		t := &rows[i]
		waktu, ok := ResolveWaktu(t)
		if !ok {
			resp.TanggalInvalid++
			continue
		}
		if waktu.Before(start) || waktu.After(end) {
			continue
		}
		laba := effectiveLaba(t)
		resp.OmsetKeseluruhan = resp.OmsetKeseluruhan.Add(t.Total)
		resp.LabaKeseluruhan = resp.LabaKeseluruhan.Add(laba)
		switch t.Metode {
		case "qris":
			resp.OmsetQris = resp.OmsetQris.Add(t.Total)
		case "transfer":
			resp.OmsetTransfer = resp.OmsetTransfer.Add(t.Total)
		default:
			resp.OmsetTunai = resp.OmsetTunai.Add(t.Total)
		}
		resp.TotalTransaksi++
		resp.Penjualan = append(resp.Penjualan, *mapTransaksi(t, true))
	}
	if resp.TotalTransaksi > 0 {
		resp.RataRataTransaksi = resp.OmsetKeseluruhan.Div(decimal.NewFromInt(int64(resp.TotalTransaksi)))
	}
	return resp
}
