package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateTokoRequest struct {
	Nama    string  `json:"nama"    validate:"required,min=2,max=120"`
	Alamat  string  `json:"alamat"`
	Telepon string  `json:"telepon"`
	PIN     *string `json:"pin"     validate:"omitempty,len=4,numeric"`
}

type UpdateTokoRequest struct {
	Nama    *string `json:"nama"    validate:"omitempty,min=2,max=120"`
	Alamat  *string `json:"alamat"`
	Telepon *string `json:"telepon"`
	PIN     *string `json:"pin"     validate:"omitempty,len=4,numeric"`
}

// PilihTokoRequest carries the PIN entered on store selection. Empty is valid
// for stores without a PIN.
type PilihTokoRequest struct {
	PIN string `json:"pin"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TokoResponse struct {
	ID        string `json:"id"`
	Nama      string `json:"nama"`
	Alamat    string `json:"alamat"`
	Telepon   string `json:"telepon"`
	PunyaPIN  bool   `json:"punya_pin"`
	UpdatedAt string `json:"updated_at"`
}

// SesiTokoResponse is returned on successful store selection. The token
// carries the toko id; every store-scoped endpoint requires it.
type SesiTokoResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresIn int          `json:"expires_in"`
	Toko      TokoResponse `json:"toko"`
}
