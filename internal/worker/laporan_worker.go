package worker

// laporan_worker.go
// Renders the sales report PDF for a date range and emails it. Runs off the
// request path; the HTTP handler only enqueues.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tokopos/internal/infra"
	"tokopos/internal/service"

	"github.com/rs/zerolog/log"
)

type LaporanWorker struct {
	laporan        *service.LaporanService
	toko           *service.TokoService
	mailer         *infra.Mailer
	pdfStoragePath string
}

func NewLaporanWorker(laporan *service.LaporanService, toko *service.TokoService, mailer *infra.Mailer, pdfStoragePath string) *LaporanWorker {
	return &LaporanWorker{
		laporan:        laporan,
		toko:           toko,
		mailer:         mailer,
		pdfStoragePath: pdfStoragePath,
	}
}

// Process handles a single report job: build the aggregates, render the PDF,
// send the mail. Any failure is returned so the pool can DLQ the job.
func (w *LaporanWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var job service.LaporanEmailJob
	if err := json.Unmarshal(raw, &job); err != nil {
		return fmt.Errorf("laporan_worker: invalid payload: %w", err)
	}

	start, err := time.Parse("2006-01-02", job.Start)
	if err != nil {
		return fmt.Errorf("laporan_worker: invalid start date %q", job.Start)
	}
	end, err := time.Parse("2006-01-02", job.End)
	if err != nil {
		return fmt.Errorf("laporan_worker: invalid end date %q", job.End)
	}

	toko, err := w.toko.Get(ctx, job.TokoID)
	if err != nil {
		return fmt.Errorf("laporan_worker: toko lookup: %w", err)
	}
	laporan, err := w.laporan.Penjualan(ctx, job.TokoID, start, end)
	if err != nil {
		return fmt.Errorf("laporan_worker: aggregate: %w", err)
	}

	pdfPath, err := infra.GenerateLaporanPDF(laporan, toko.Nama, start, end, w.pdfStoragePath)
	if err != nil {
		return fmt.Errorf("laporan_worker: pdf: %w", err)
	}

	subject := fmt.Sprintf("Laporan Penjualan %s — %s s/d %s", toko.Nama, job.Start, job.End)
	body := fmt.Sprintf(
		"Terlampir laporan penjualan %s periode %s sampai %s.\nOmset: Rp %s\nLaba: Rp %s\nJumlah transaksi: %d",
		toko.Nama, job.Start, job.End,
		laporan.OmsetKeseluruhan.StringFixed(2),
		laporan.LabaKeseluruhan.StringFixed(2),
		laporan.TotalTransaksi,
	)
	if err := w.mailer.SendLaporan(job.ToEmail, subject, body, pdfPath); err != nil {
		return fmt.Errorf("laporan_worker: send: %w", err)
	}

	log.Info().Str("to", job.ToEmail).Str("pdf", pdfPath).Msg("laporan_worker: laporan sent")
	return nil
}
