package service

import "errors"

// Domain errors. Handlers map these onto HTTP statuses; anything not listed
// here surfaces as a 500 through the error handler middleware.
var (
	ErrTokoNotFound        = errors.New("toko tidak ditemukan")
	ErrProdukNotFound      = errors.New("produk tidak ditemukan")
	ErrPembelianNotFound   = errors.New("pembelian tidak ditemukan")
	ErrItemNotFound        = errors.New("item pembelian tidak ditemukan")
	ErrReturNotFound       = errors.New("retur tidak ditemukan")
	ErrOperasionalNotFound = errors.New("data operasional tidak ditemukan")
	ErrTransaksiNotFound   = errors.New("transaksi tidak ditemukan")

	ErrPINSalah         = errors.New("PIN salah")
	ErrKeranjangKosong  = errors.New("keranjang masih kosong")
	ErrStatusFinal      = errors.New("status pembelian sudah final")
	ErrTanggalInvalid    = errors.New("format tanggal tidak valid")
	ErrFieldTidakDikenal = errors.New("field tidak dikenal")
	ErrHargaKosong       = errors.New("harga tidak boleh kosong")
)
