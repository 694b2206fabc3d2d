package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"tokopos/internal/model"
)

// Legacy transaction rows carry their timestamp as free text in waktu_raw.
// Three shapes exist in the wild, tried in order:
//
//  1. RFC 3339 / ISO 8601 ("2025-08-21T23:12:10+07:00", with or without zone)
//  2. plain date or datetime ("2025-08-21", "2025-08-21 23:12:10")
//  3. an English locale dump: "August 21, 2025 at 11:12:10 PM UTC+7"
//
// Anything else is unparseable and the row is reported, not guessed at.

var utcOffsetRe = regexp.MustCompile(`UTC([+-])(\d{1,2})(?::?(\d{2}))?$`)

var tanggalLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTanggal parses a raw legacy timestamp string. ok is false when no
// known layout matches; callers must not substitute the current time.
func ParseTanggal(raw string) (t time.Time, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range tanggalLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return parseTanggalLocale(s)
}

// parseTanggalLocale handles the "August 21, 2025 at 11:12:10 PM UTC+7"
// shape. The " at " connective is dropped and the UTC±H suffix rewritten to
// a numeric offset before handing off to time.Parse.
func parseTanggalLocale(s string) (time.Time, bool) {
	s = strings.Replace(s, " at ", " ", 1)
	if m := utcOffsetRe.FindStringSubmatch(s); m != nil {
		min := m[3]
		if min == "" {
			min = "00"
		}
		numeric := fmt.Sprintf("%s%02s%s", m[1], m[2], min)
		s = utcOffsetRe.ReplaceAllLiteralString(s, numeric)
		if parsed, err := time.Parse("January 2, 2006 3:04:05 PM -0700", s); err == nil {
			return parsed, true
		}
		return time.Time{}, false
	}
	if parsed, err := time.Parse("January 2, 2006 3:04:05 PM", s); err == nil {
		return parsed, true
	}
	return time.Time{}, false
}

// ResolveWaktu yields the effective timestamp of a transaction: the native
// column when set, otherwise the parsed legacy string.
func ResolveWaktu(t *model.Transaksi) (time.Time, bool) {
	if t.Waktu != nil {
		return *t.Waktu, true
	}
	if t.WaktuRaw != nil {
		return ParseTanggal(*t.WaktuRaw)
	}
	return time.Time{}, false
}

// RentangHari widens a start/end date pair to the full local days they name:
// [start 00:00:00.000, end 23:59:59.999].
func RentangHari(start, end time.Time) (time.Time, time.Time) {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	e := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999_000_000, end.Location())
	return s, e
}
