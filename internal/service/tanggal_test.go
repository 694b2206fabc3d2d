package service

import (
	"testing"
	"time"

	"tokopos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTanggalISO(t *testing.T) {
	got, ok := ParseTanggal("2025-08-21T23:12:10+07:00")
	require.True(t, ok)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.August, got.Month())
	assert.Equal(t, 21, got.Day())
	assert.Equal(t, 23, got.Hour())
}

func TestParseTanggalPlainDate(t *testing.T) {
	got, ok := ParseTanggal("2025-08-21")
	require.True(t, ok)
	assert.Equal(t, 21, got.Day())
}

func TestParseTanggalLocaleFormat(t *testing.T) {
	got, ok := ParseTanggal("August 21, 2025 at 11:12:10 PM UTC+7")
	require.True(t, ok)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.August, got.Month())
	assert.Equal(t, 21, got.Day())
	assert.Equal(t, 23, got.Hour())
	_, offset := got.Zone()
	assert.Equal(t, 7*3600, offset)
}

func TestParseTanggalLocaleNegativeOffset(t *testing.T) {
	got, ok := ParseTanggal("January 2, 2026 at 9:05:00 AM UTC-3")
	require.True(t, ok)
	_, offset := got.Zone()
	assert.Equal(t, -3*3600, offset)
}

func TestParseTanggalGarbageIsNotGuessed(t *testing.T) {
	for _, raw := range []string{"", "kemarin", "21/08/2025", "bukan tanggal"} {
		_, ok := ParseTanggal(raw)
		assert.False(t, ok, "raw=%q", raw)
	}
}

func TestResolveWaktuPrefersNativeColumn(t *testing.T) {
	native := time.Date(2025, 8, 21, 10, 0, 0, 0, time.UTC)
	raw := "August 1, 2020 at 1:00:00 AM UTC+7"
	tr := &model.Transaksi{Waktu: &native, WaktuRaw: &raw}

	got, ok := ResolveWaktu(tr)
	require.True(t, ok)
	assert.True(t, got.Equal(native))
}

func TestRentangHariWidensToFullDays(t *testing.T) {
	start := time.Date(2025, 8, 1, 14, 30, 0, 0, time.Local)
	end := time.Date(2025, 8, 3, 9, 0, 0, 0, time.Local)

	from, to := RentangHari(start, end)
	assert.Equal(t, 0, from.Hour())
	assert.Equal(t, 0, from.Minute())
	assert.Equal(t, 23, to.Hour())
	assert.Equal(t, 59, to.Minute())
	assert.Equal(t, 59, to.Second())
}
