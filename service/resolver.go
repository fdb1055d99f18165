package service

import (
	"errors"

	"go-postgres-trading/models"

	"gorm.io/gorm"
)

type Jenis string

const (
	JenisPenjualan Jenis = "penjualan"
	JenisPembelian Jenis = "pembelian"
)

// ItemInput adalah baris transaksi dari caller. Mode "produk" memakai
// ProdukID; mode "supplier_produk" memakai SupplierProdukID. Harga 0
// berarti pakai harga master / daftar harga.
type ItemInput struct {
	ProdukID         uint  `json:"produk_id"`
	SupplierProdukID uint  `json:"supplier_produk_id"`
	Qty              int   `json:"qty" binding:"required,gt=0"`
	Harga            int64 `json:"harga"`
}

type resolvedItem struct {
	ProdukID         uint
	SupplierProdukID *uint
	Qty              int
	Harga            int64
}

func (r resolvedItem) Subtotal() int64 { return int64(r.Qty) * r.Harga }

// ItemResolver menyeragamkan dua varian referensi item menjadi satu
// langkah resolusi: apapun bentuk referensinya, hasilnya produk + harga
// satuan. Stok selalu di Produk.
type ItemResolver interface {
	Resolve(tx *gorm.DB, it ItemInput, jenis Jenis) (resolvedItem, error)
}

// Referensi langsung ke produk.
type produkResolver struct{}

func (produkResolver) Resolve(tx *gorm.DB, it ItemInput, jenis Jenis) (resolvedItem, error) {
	var p models.Produk
	if err := tx.First(&p, it.ProdukID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resolvedItem{}, ErrProdukNotFound
		}
		return resolvedItem{}, err
	}

	harga := it.Harga
	if harga == 0 {
		if jenis == JenisPembelian {
			harga = p.HargaBeli
		} else {
			harga = p.HargaJual
		}
	}
	return resolvedItem{ProdukID: p.ID, Qty: it.Qty, Harga: harga}, nil
}

// Referensi lewat daftar harga supplier.
type supplierProdukResolver struct{}

func (supplierProdukResolver) Resolve(tx *gorm.DB, it ItemInput, jenis Jenis) (resolvedItem, error) {
	var sp models.SupplierProduk
	if err := tx.First(&sp, it.SupplierProdukID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resolvedItem{}, ErrProdukNotFound
		}
		return resolvedItem{}, err
	}

	harga := it.Harga
	if harga == 0 {
		if jenis == JenisPembelian {
			harga = sp.HargaBeli
		} else {
			harga = sp.HargaJual
		}
	}
	spID := sp.ID
	return resolvedItem{ProdukID: sp.ProdukID, SupplierProdukID: &spID, Qty: it.Qty, Harga: harga}, nil
}
