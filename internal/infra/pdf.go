package infra

// pdf.go — Sales report PDF generation using go-pdf/fpdf.
// An A4 page with the summary block (omset per channel, laba, transaction
// count) followed by the transaction table. Saved to
// storagePath/laporan_{start}_{end}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tokopos/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateLaporanPDF renders the sales report for the given range.
// storagePath is created if needed. Returns the path of the written file.
func GenerateLaporanPDF(laporan *dto.LaporanPenjualanResponse, tokoNama string, start, end time.Time, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("laporan_%s_%s.pdf", start.Format("20060102"), end.Format("20060102"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Laporan Penjualan", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, tokoNama, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	periode := fmt.Sprintf("%s s/d %s", start.Format("02/01/2006"), end.Format("02/01/2006"))
	pdf.CellFormat(contentW, 5, periode, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Summary block ─────────────────────────────────────────────────────────
	labelW := contentW * 0.45
	valueW := contentW * 0.55
	summary := []struct {
		label string
		value string
	}{
		{"Omset keseluruhan", "Rp " + laporan.OmsetKeseluruhan.StringFixed(2)},
		{"Omset tunai", "Rp " + laporan.OmsetTunai.StringFixed(2)},
		{"Omset QRIS", "Rp " + laporan.OmsetQris.StringFixed(2)},
		{"Omset transfer", "Rp " + laporan.OmsetTransfer.StringFixed(2)},
		{"Laba keseluruhan", "Rp " + laporan.LabaKeseluruhan.StringFixed(2)},
		{"Jumlah transaksi", fmt.Sprintf("%d", laporan.TotalTransaksi)},
		{"Rata-rata transaksi", "Rp " + laporan.RataRataTransaksi.StringFixed(2)},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range summary {
		pdf.CellFormat(labelW, 6, row.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 6, row.value, "", 1, "R", false, 0, "")
	}
	if laporan.TanggalInvalid > 0 {
		pdf.SetFont("Helvetica", "I", 9)
		note := fmt.Sprintf("%d transaksi dikecualikan karena tanggal tidak valid", laporan.TanggalInvalid)
		pdf.CellFormat(contentW, 6, note, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// ── Transaction table ─────────────────────────────────────────────────────
	col1 := contentW * 0.28 // waktu
	col2 := contentW * 0.22 // kasir
	col3 := contentW * 0.14 // metode
	col4 := contentW * 0.18 // total
	col5 := contentW * 0.18 // laba

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Waktu", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Kasir", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "Metode", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col4, 6, "Total", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col5, 6, "Laba", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, t := range laporan.Penjualan {
		waktu := t.Waktu
		if parsed, err := time.Parse(time.RFC3339, waktu); err == nil {
			waktu = parsed.Format("02/01/2006 15:04")
		}
		kasir := t.Kasir
		if len(kasir) > 18 {
			kasir = kasir[:17] + "…"
		}
		pdf.CellFormat(col1, 5, waktu, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, kasir, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, t.Metode, "", 0, "C", false, 0, "")
		pdf.CellFormat(col4, 5, t.Total.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col5, 5, t.Laba.StringFixed(2), "", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
