package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tokopos/internal/dto"
	"tokopos/internal/infra"
	"tokopos/internal/model"
	"tokopos/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokoListCacheKey = "tokopos:toko:list"

// SesiTokoClaims is the JWT payload issued on store selection. TokoID scopes
// every subsequent request.
type SesiTokoClaims struct {
	TokoID string `json:"toko_id"`
	Nama   string `json:"nama"`
	jwt.RegisteredClaims
}

type TokoService struct {
	repo      repository.TokoRepository
	rdb       *redis.Client
	breaker   *infra.CircuitBreaker
	jwtSecret []byte
	sesiTTL   time.Duration
	cacheTTL  time.Duration
}

func NewTokoService(repo repository.TokoRepository, rdb *redis.Client, breaker *infra.CircuitBreaker, jwtSecret string, sesiTTL, cacheTTL time.Duration) *TokoService {
	return &TokoService{
		repo:      repo,
		rdb:       rdb,
		breaker:   breaker,
		jwtSecret: []byte(jwtSecret),
		sesiTTL:   sesiTTL,
		cacheTTL:  cacheTTL,
	}
}

func (s *TokoService) Create(ctx context.Context, req dto.CreateTokoRequest) (*dto.TokoResponse, error) {
	t := &model.Toko{
		Nama:    req.Nama,
		Alamat:  req.Alamat,
		Telepon: req.Telepon,
	}
	if req.PIN != nil {
		hash, err := hashPIN(*req.PIN)
		if err != nil {
			return nil, err
		}
		t.PINHash = &hash
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	s.invalidateListCache(ctx)
	return mapToko(t), nil
}

// List returns all stores, newest activity first. DB reads go through the
// circuit breaker; when it trips the Redis snapshot is served so cashier
// terminals can still pick their store.
func (s *TokoService) List(ctx context.Context) ([]dto.TokoResponse, error) {
	var rows []model.Toko
	err := s.breaker.Execute(func() error {
		var dbErr error
		rows, dbErr = s.repo.List(ctx)
		return dbErr
	})
	if err != nil {
		if cached, ok := s.listFromCache(ctx); ok {
			log.Warn().Err(err).Msg("serving toko list from cache")
			return cached, nil
		}
		return nil, err
	}

	out := make([]dto.TokoResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *mapToko(&rows[i]))
	}
	s.storeListCache(ctx, out)
	return out, nil
}

func (s *TokoService) Get(ctx context.Context, id uuid.UUID) (*dto.TokoResponse, error) {
	t, err := s.findToko(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapToko(t), nil
}

func (s *TokoService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateTokoRequest) (*dto.TokoResponse, error) {
	t, err := s.findToko(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nama != nil {
		t.Nama = *req.Nama
	}
	if req.Alamat != nil {
		t.Alamat = *req.Alamat
	}
	if req.Telepon != nil {
		t.Telepon = *req.Telepon
	}
	if req.PIN != nil {
		hash, err := hashPIN(*req.PIN)
		if err != nil {
			return nil, err
		}
		t.PINHash = &hash
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	s.invalidateListCache(ctx)
	return mapToko(t), nil
}

func (s *TokoService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findToko(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListCache(ctx)
	return nil
}

// Pilih verifies the store PIN and issues a session token. Stores without a
// PIN accept any input, including empty.
func (s *TokoService) Pilih(ctx context.Context, id uuid.UUID, req dto.PilihTokoRequest) (*dto.SesiTokoResponse, error) {
	t, err := s.findToko(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.PINHash != nil {
		if bcrypt.CompareHashAndPassword([]byte(*t.PINHash), []byte(req.PIN)) != nil {
			return nil, ErrPINSalah
		}
	}

	now := time.Now()
	claims := SesiTokoClaims{
		TokoID: t.ID.String(),
		Nama:   t.Nama,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "tokopos",
			Subject:   t.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sesiTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}
	return &dto.SesiTokoResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(s.sesiTTL.Seconds()),
		Toko:      *mapToko(t),
	}, nil
}

func (s *TokoService) findToko(ctx context.Context, id uuid.UUID) (*model.Toko, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokoNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TokoService) listFromCache(ctx context.Context) ([]dto.TokoResponse, bool) {
	if s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, tokoListCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var out []dto.TokoResponse
	if json.Unmarshal(raw, &out) != nil {
		return nil, false
	}
	return out, true
}

func (s *TokoService) storeListCache(ctx context.Context, list []dto.TokoResponse) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, tokoListCacheKey, raw, s.cacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("toko list cache write failed")
	}
}

func (s *TokoService) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, tokoListCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("toko list cache invalidation failed")
	}
}

func hashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func mapToko(t *model.Toko) *dto.TokoResponse {
	return &dto.TokoResponse{
		ID:        t.ID.String(),
		Nama:      t.Nama,
		Alamat:    t.Alamat,
		Telepon:   t.Telepon,
		PunyaPIN:  t.PINHash != nil,
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}
