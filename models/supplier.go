package models

import "time"

type Supplier struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Kode   string `gorm:"uniqueIndex;size:20;not null" json:"kode"`
	Nama   string `gorm:"size:180;not null" json:"nama"`
	Alamat string `gorm:"size:255" json:"alamat"`
	Telp   string `gorm:"size:30" json:"telp"`
	Status bool   `gorm:"not null;default:true" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Baris daftar harga per supplier. Mode resolusi "supplier_produk"
// mereferensikan baris ini, bukan produk langsung; stok tetap di Produk.
type SupplierProduk struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	SupplierID uint     `gorm:"index;not null" json:"supplier_id"`
	Supplier   Supplier `json:"supplier"`
	ProdukID   uint     `gorm:"index;not null" json:"produk_id"`
	Produk     Produk   `json:"produk"`

	HargaBeli int64 `gorm:"not null;default:0" json:"harga_beli"`
	HargaJual int64 `gorm:"not null;default:0" json:"harga_jual"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
