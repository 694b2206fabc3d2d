package model

import (
	"time"

	"github.com/google/uuid"
)

// Toko is the root tenant entity. Every other business table carries a
// TokoID column and is logically scoped under one store.
type Toko struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nama    string    `gorm:"not null"`
	Alamat  string
	Telepon string
	// PINHash is a bcrypt hash of the optional 4-digit access code.
	// NULL means the store has no PIN and selection passes automatically.
	PINHash   *string `gorm:"column:pin_hash"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default pluralization (tokos → toko).
func (Toko) TableName() string { return "toko" }
