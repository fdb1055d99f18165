package service

import (
	"errors"
	"fmt"
)

// Sentinel errors, dipakai dengan errors.Is di handler.
var (
	ErrProdukNotFound       = errors.New("produk tidak ditemukan")
	ErrTransaksiNotFound    = errors.New("transaksi tidak ditemukan")
	ErrStokTidakCukup       = errors.New("stok tidak cukup")
	ErrPembayaranTidakValid = errors.New("pembayaran tidak valid")

	// ErrTransaksiGagal dikembalikan saat retry konflik habis.
	ErrTransaksiGagal = errors.New("transaksi gagal")
)

// StokTidakCukupError membawa konteks produk yang gagal divalidasi.
type StokTidakCukupError struct {
	ProdukID uint
	Kode     string
	Tersedia int
	Diminta  int
}

func (e *StokTidakCukupError) Error() string {
	return fmt.Sprintf("stok produk %s tidak mencukupi (sisa stok: %d, diminta: %d)",
		e.Kode, e.Tersedia, e.Diminta)
}

func (e *StokTidakCukupError) Unwrap() error { return ErrStokTidakCukup }

type PembayaranTidakValidError struct {
	Alasan string
	Sisa   int64
}

func (e *PembayaranTidakValidError) Error() string {
	return fmt.Sprintf("pembayaran tidak valid: %s (sisa utang: %d)", e.Alasan, e.Sisa)
}

func (e *PembayaranTidakValidError) Unwrap() error { return ErrPembayaranTidakValid }
