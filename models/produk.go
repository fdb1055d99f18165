package models

import "time"

type StatusProduk string

const (
	ProdukAktif    StatusProduk = "aktif"
	ProdukNonaktif StatusProduk = "nonaktif"
)

type Produk struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	IDProduk string `gorm:"uniqueIndex;size:20;not null" json:"id_produk"` // PRD-00001
	Kode     string `gorm:"uniqueIndex;size:20;not null" json:"kode"`      // SKU-00001
	Nama     string `gorm:"size:200;not null" json:"nama"`
	Satuan   string `gorm:"size:30" json:"satuan"` // dus, pcs, kg, liter
	Merek    string `gorm:"size:100" json:"merek"`

	HargaBeli   int64 `gorm:"not null;default:0" json:"harga_beli"`
	HargaJual   int64 `gorm:"not null;default:0" json:"harga_jual"`
	Stok        int   `gorm:"not null;default:0" json:"stok"`
	StokMinimal int   `gorm:"not null;default:0" json:"stok_minimal"`

	Status StatusProduk `gorm:"size:10;not null;default:aktif" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
