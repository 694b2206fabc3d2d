package service

import (
	"context"
	"testing"
	"time"

	"tokopos/internal/dto"
	"tokopos/internal/infra"
	"tokopos/internal/model"
	"tokopos/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubTokoRepo struct {
	toko map[uuid.UUID]*model.Toko
}

var _ repository.TokoRepository = (*stubTokoRepo)(nil)

func newStubTokoRepo() *stubTokoRepo {
	return &stubTokoRepo{toko: make(map[uuid.UUID]*model.Toko)}
}

func (r *stubTokoRepo) Create(_ context.Context, t *model.Toko) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	cloned := *t
	r.toko[t.ID] = &cloned
	return nil
}

func (r *stubTokoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Toko, error) {
	t, ok := r.toko[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *t
	return &cloned, nil
}

func (r *stubTokoRepo) List(_ context.Context) ([]model.Toko, error) {
	var out []model.Toko
	for _, t := range r.toko {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTokoRepo) Update(_ context.Context, t *model.Toko) error {
	cloned := *t
	r.toko[t.ID] = &cloned
	return nil
}

func (r *stubTokoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.toko, id)
	return nil
}

const testJWTSecret = "test-secret"

func setupToko(t *testing.T) (*TokoService, *stubTokoRepo) {
	t.Helper()
	repo := newStubTokoRepo()
	svc := NewTokoService(repo, nil, infra.NewCircuitBreaker(infra.DefaultCBConfig()), testJWTSecret, 12*time.Hour, 5*time.Minute)
	return svc, repo
}

func buatToko(t *testing.T, svc *TokoService, pin *string) *dto.TokoResponse {
	t.Helper()
	resp, err := svc.Create(context.Background(), dto.CreateTokoRequest{
		Nama:   "Toko Berkah",
		Alamat: "Jl. Melati 12",
		PIN:    pin,
	})
	require.NoError(t, err)
	return resp
}

func TestTokoCreateHashesPIN(t *testing.T) {
	svc, repo := setupToko(t)
	pin := "1234"

	resp := buatToko(t, svc, &pin)

	assert.True(t, resp.PunyaPIN)
	stored := repo.toko[uuid.MustParse(resp.ID)]
	require.NotNil(t, stored.PINHash)
	assert.NotContains(t, *stored.PINHash, "1234")
}

func TestTokoPilihWithCorrectPIN(t *testing.T) {
	svc, _ := setupToko(t)
	pin := "1234"
	created := buatToko(t, svc, &pin)
	id := uuid.MustParse(created.ID)

	sesi, err := svc.Pilih(context.Background(), id, dto.PilihTokoRequest{PIN: "1234"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer", sesi.TokenType)
	assert.Equal(t, int((12 * time.Hour).Seconds()), sesi.ExpiresIn)
	assert.Equal(t, created.ID, sesi.Toko.ID)

	claims := &SesiTokoClaims{}
	_, err = jwt.ParseWithClaims(sesi.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.TokoID)
	assert.Equal(t, "Toko Berkah", claims.Nama)
}

func TestTokoPilihWrongPIN(t *testing.T) {
	svc, _ := setupToko(t)
	pin := "1234"
	created := buatToko(t, svc, &pin)

	_, err := svc.Pilih(context.Background(), uuid.MustParse(created.ID), dto.PilihTokoRequest{PIN: "9999"})
	assert.ErrorIs(t, err, ErrPINSalah)
}

func TestTokoPilihWithoutPINAcceptsAnything(t *testing.T) {
	svc, _ := setupToko(t)
	created := buatToko(t, svc, nil)

	assert.False(t, created.PunyaPIN)
	sesi, err := svc.Pilih(context.Background(), uuid.MustParse(created.ID), dto.PilihTokoRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, sesi.Token)
}

func TestTokoPilihUnknownStore(t *testing.T) {
	svc, _ := setupToko(t)

	_, err := svc.Pilih(context.Background(), uuid.New(), dto.PilihTokoRequest{})
	assert.ErrorIs(t, err, ErrTokoNotFound)
}

func TestTokoUpdateSetsPIN(t *testing.T) {
	svc, _ := setupToko(t)
	created := buatToko(t, svc, nil)
	id := uuid.MustParse(created.ID)

	pin := "4321"
	updated, err := svc.Update(context.Background(), id, dto.UpdateTokoRequest{PIN: &pin})
	require.NoError(t, err)
	assert.True(t, updated.PunyaPIN)

	_, err = svc.Pilih(context.Background(), id, dto.PilihTokoRequest{PIN: "0000"})
	assert.ErrorIs(t, err, ErrPINSalah)
	_, err = svc.Pilih(context.Background(), id, dto.PilihTokoRequest{PIN: "4321"})
	assert.NoError(t, err)
}

func TestTokoListServedThroughBreaker(t *testing.T) {
	svc, _ := setupToko(t)
	buatToko(t, svc, nil)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
