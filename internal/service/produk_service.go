package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"tokopos/internal/dto"
	"tokopos/internal/model"
	"tokopos/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProdukService struct {
	repo     repository.ProdukRepository
	rdb      *redis.Client
	cacheTTL time.Duration
}

func NewProdukService(repo repository.ProdukRepository, rdb *redis.Client, cacheTTL time.Duration) *ProdukService {
	return &ProdukService{repo: repo, rdb: rdb, cacheTTL: cacheTTL}
}

func (s *ProdukService) Create(ctx context.Context, tokoID uuid.UUID, req dto.CreateProdukRequest) (*dto.ProdukResponse, error) {
	p := &model.Produk{
		TokoID:     tokoID,
		Nama:       req.Nama,
		Barcode:    req.Barcode,
		HargaBeli:  req.HargaBeli,
		HargaJual1: req.HargaJual1,
		HargaJual2: req.HargaJual2,
		HargaJual3: req.HargaJual3,
		HargaJual4: req.HargaJual4,
		Stok:       req.Stok,
		Kategori:   req.Kategori,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx, tokoID)
	return mapProduk(p), nil
}

// List serves the unfiltered catalog from Redis when possible; filtered
// queries always hit the database.
func (s *ProdukService) List(ctx context.Context, tokoID uuid.UUID, filter dto.ProdukFilter) (*dto.ProdukListResponse, error) {
	unfiltered := filter.Nama == "" && filter.Kategori == "" && filter.Barcode == ""
	if unfiltered {
		if cached, ok := s.listFromCache(ctx, tokoID); ok {
			return cached, nil
		}
	}
	rows, err := s.repo.List(ctx, tokoID, filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProdukListResponse{Data: make([]dto.ProdukResponse, 0, len(rows)), Total: len(rows)}
	for i := range rows {
		resp.Data = append(resp.Data, *mapProduk(&rows[i]))
	}
	if unfiltered {
		s.storeCache(ctx, tokoID, resp)
	}
	return resp, nil
}

func (s *ProdukService) Get(ctx context.Context, tokoID, id uuid.UUID) (*dto.ProdukResponse, error) {
	p, err := s.findProduk(ctx, tokoID, id)
	if err != nil {
		return nil, err
	}
	return mapProduk(p), nil
}

func (s *ProdukService) Update(ctx context.Context, tokoID, id uuid.UUID, req dto.UpdateProdukRequest) (*dto.ProdukResponse, error) {
	p, err := s.findProduk(ctx, tokoID, id)
	if err != nil {
		return nil, err
	}
	if req.Nama != nil {
		p.Nama = *req.Nama
	}
	if req.Barcode != nil {
		p.Barcode = *req.Barcode
	}
	if req.HargaBeli != nil {
		p.HargaBeli = *req.HargaBeli
	}
	if req.HargaJual1 != nil {
		p.HargaJual1 = *req.HargaJual1
	}
	if req.HargaJual2 != nil {
		p.HargaJual2 = *req.HargaJual2
	}
	if req.HargaJual3 != nil {
		p.HargaJual3 = *req.HargaJual3
	}
	if req.HargaJual4 != nil {
		p.HargaJual4 = *req.HargaJual4
	}
	if req.Stok != nil {
		p.Stok = *req.Stok
	}
	if req.Kategori != nil {
		p.Kategori = *req.Kategori
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx, tokoID)
	return mapProduk(p), nil
}

// SetStok writes the absolute stock count.
func (s *ProdukService) SetStok(ctx context.Context, tokoID, id uuid.UUID, stok int) error {
	if _, err := s.findProduk(ctx, tokoID, id); err != nil {
		return err
	}
	if err := s.repo.UpdateStok(ctx, tokoID, id, stok); err != nil {
		return err
	}
	s.invalidateCache(ctx, tokoID)
	return nil
}

// SetHargaBeli pushes a new purchase price into the catalog. This is the
// deliberate counterpart of editing a price inside a cart: cart edits stay in
// the cart, this endpoint changes the catalog.
func (s *ProdukService) SetHargaBeli(ctx context.Context, tokoID, id uuid.UUID, harga decimal.Decimal) error {
	if _, err := s.findProduk(ctx, tokoID, id); err != nil {
		return err
	}
	if err := s.repo.UpdateHargaBeli(ctx, tokoID, id, harga); err != nil {
		return err
	}
	s.invalidateCache(ctx, tokoID)
	return nil
}

func (s *ProdukService) Delete(ctx context.Context, tokoID, id uuid.UUID) error {
	if _, err := s.findProduk(ctx, tokoID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, tokoID, id); err != nil {
		return err
	}
	s.invalidateCache(ctx, tokoID)
	return nil
}

// Import bulk-loads catalog rows from an .xlsx or .csv upload. Rows without a
// product name are skipped and counted, not rejected.
func (s *ProdukService) Import(ctx context.Context, tokoID uuid.UUID, filename string, r io.Reader) (*dto.ImportProdukResponse, error) {
	var (
		headers []string
		rows    [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		headers, rows, err = readXLSX(r)
	case ".csv":
		headers, rows, err = readCSV(r)
	default:
		return nil, fmt.Errorf("format file tidak didukung: %s", filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}

	produk, skipped, rowErrs := MapBarisImport(tokoID, headers, rows)
	if len(produk) > 0 {
		if err := s.repo.CreateBatch(ctx, produk); err != nil {
			return nil, err
		}
		s.invalidateCache(ctx, tokoID)
	}
	return &dto.ImportProdukResponse{
		Imported: len(produk),
		Skipped:  skipped,
		Errors:   rowErrs,
	}, nil
}

func (s *ProdukService) findProduk(ctx context.Context, tokoID, id uuid.UUID) (*model.Produk, error) {
	p, err := s.repo.FindByID(ctx, tokoID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProdukNotFound
		}
		return nil, err
	}
	return p, nil
}

func produkCacheKey(tokoID uuid.UUID) string {
	return "tokopos:produk:list:" + tokoID.String()
}

func (s *ProdukService) listFromCache(ctx context.Context, tokoID uuid.UUID) (*dto.ProdukListResponse, bool) {
	if s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, produkCacheKey(tokoID)).Bytes()
	if err != nil {
		return nil, false
	}
	var out dto.ProdukListResponse
	if json.Unmarshal(raw, &out) != nil {
		return nil, false
	}
	return &out, true
}

func (s *ProdukService) storeCache(ctx context.Context, tokoID uuid.UUID, resp *dto.ProdukListResponse) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, produkCacheKey(tokoID), raw, s.cacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("produk cache write failed")
	}
}

func (s *ProdukService) invalidateCache(ctx context.Context, tokoID uuid.UUID) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, produkCacheKey(tokoID)).Err(); err != nil {
		log.Warn().Err(err).Msg("produk cache invalidation failed")
	}
}

func mapProduk(p *model.Produk) *dto.ProdukResponse {
	return &dto.ProdukResponse{
		ID:         p.ID.String(),
		Nama:       p.Nama,
		Barcode:    p.Barcode,
		HargaBeli:  p.HargaBeli,
		HargaJual1: p.HargaJual1,
		HargaJual2: p.HargaJual2,
		HargaJual3: p.HargaJual3,
		HargaJual4: p.HargaJual4,
		Stok:       p.Stok,
		Kategori:   p.Kategori,
		UpdatedAt:  p.UpdatedAt.Format(time.RFC3339),
	}
}
