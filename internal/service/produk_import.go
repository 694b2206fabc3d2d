package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"tokopos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Spreadsheet import. Store owners hand over price lists in whatever shape
// their supplier exported, so column matching is by synonym and numbers are
// coerced out of formatted strings ("Rp 12.500,00" → 12500.00).

var kolomSinonim = map[string][]string{
	"nama":       {"nama", "nama produk", "nama barang", "produk", "barang", "name", "item"},
	"barcode":    {"barcode", "kode", "kode barang", "sku"},
	"harga_beli": {"harga beli", "harga_beli", "hargabeli", "harga modal", "modal", "beli"},
	"harga_jual1": {"harga jual", "harga_jual", "harga jual 1", "harga_jual1", "jual", "jual 1", "harga"},
	"harga_jual2": {"harga jual 2", "harga_jual2", "jual 2", "grosir"},
	"harga_jual3": {"harga jual 3", "harga_jual3", "jual 3"},
	"harga_jual4": {"harga jual 4", "harga_jual4", "jual 4"},
	"stok":        {"stok", "stock", "qty", "jumlah"},
	"kategori":    {"kategori", "category", "jenis"},
}

// MapBarisImport turns header+rows into catalog models. Rows without a name
// are skipped and counted; rows with unparseable numbers import with that
// field zeroed and a note in errs.
func MapBarisImport(tokoID uuid.UUID, headers []string, rows [][]string) (produk []model.Produk, skipped int, errs []string) {
	idx := matchKolom(headers)

	for n, row := range rows {
		nama := strings.TrimSpace(cell(row, idx["nama"]))
		if nama == "" {
			skipped++
			continue
		}
		p := model.Produk{
			TokoID:   tokoID,
			Nama:     nama,
			Barcode:  strings.TrimSpace(cell(row, idx["barcode"])),
			Kategori: strings.TrimSpace(cell(row, idx["kategori"])),
		}
		p.HargaBeli = angkaKolom(row, idx, "harga_beli", n+2, &errs)
		p.HargaJual1 = angkaKolom(row, idx, "harga_jual1", n+2, &errs)
		p.HargaJual2 = angkaKolom(row, idx, "harga_jual2", n+2, &errs)
		p.HargaJual3 = angkaKolom(row, idx, "harga_jual3", n+2, &errs)
		p.HargaJual4 = angkaKolom(row, idx, "harga_jual4", n+2, &errs)
		if i, ok := idx["stok"]; ok {
			stok, err := ParseAngka(cell(row, i))
			if err != nil {
				errs = append(errs, fmt.Sprintf("baris %d: stok tidak valid", n+2))
			} else {
				p.Stok = int(stok.IntPart())
			}
		}
		produk = append(produk, p)
	}
	return produk, skipped, errs
}

// matchKolom maps canonical field names to header column indexes.
func matchKolom(headers []string) map[string]int {
	idx := make(map[string]int)
	for i, h := range headers {
		h = strings.ToLower(strings.TrimSpace(h))
		for field, synonyms := range kolomSinonim {
			if _, taken := idx[field]; taken {
				continue
			}
			for _, syn := range synonyms {
				if h == syn {
					idx[field] = i
					break
				}
			}
		}
	}
	return idx
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// idx lookup variant: missing key means the column is absent entirely, which
// is not an error.
func angkaKolom(row []string, idx map[string]int, field string, rowNum int, errs *[]string) decimal.Decimal {
	i, ok := idx[field]
	if !ok {
		return decimal.Zero
	}
	v, err := ParseAngka(cell(row, i))
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("baris %d: %s tidak valid", rowNum, field))
		return decimal.Zero
	}
	return v
}

var angkaBersih = regexp.MustCompile(`[^0-9,.\-]`)

// ParseAngka coerces a formatted currency/number string to a decimal. The
// Indonesian convention uses "." for thousands and "," for decimals; a lone
// "." followed by exactly three digits at the end is ambiguous and treated as
// a thousands separator.
func ParseAngka(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	s = angkaBersih.ReplaceAllString(s, "")
	if s == "" || s == "-" {
		return decimal.Zero, fmt.Errorf("bukan angka")
	}

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		// "12.500,75": dots are thousands, comma is the decimal point.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case hasComma:
		s = strings.Replace(s, ",", ".", 1)
	case hasDot:
		if i := strings.LastIndex(s, "."); len(s)-i-1 == 3 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}
	// strconv first to reject leftovers like "1.2.3".
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return decimal.Zero, fmt.Errorf("bukan angka")
	}
	return decimal.NewFromString(s)
}

func readXLSX(r io.Reader) (headers []string, rows [][]string, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("file xlsx tidak bisa dibaca: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("file xlsx kosong")
	}
	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("sheet pertama kosong")
	}
	return all[0], all[1:], nil
}

func readCSV(r io.Reader) (headers []string, rows [][]string, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	all, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("file csv tidak bisa dibaca: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("file csv kosong")
	}
	return all[0], all[1:], nil
}
