package models

import "time"

// Header pembelian (penerimaan barang dari supplier). Simetris dengan
// Penjualan tapi menambah stok; status hanya informasional, tidak ada
// pelacakan hutang.
type Pembelian struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SupplierID uint      `gorm:"index;not null" json:"supplier_id"`
	Supplier   Supplier  `json:"supplier"`
	Tanggal    time.Time `gorm:"not null" json:"tanggal"`

	NoDO         string `gorm:"size:40" json:"no_do,omitempty"`
	NoNPB        string `gorm:"size:40" json:"no_npb,omitempty"`
	NomorInvoice string `gorm:"size:40" json:"nomor_invoice,omitempty"` // nomor invoice dari supplier

	Total  int64  `gorm:"not null" json:"total"`
	Status string `gorm:"size:15" json:"status,omitempty"`

	Details []PembelianDetail `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"details"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PembelianDetail struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	PembelianID uint    `gorm:"index;not null" json:"pembelian_id"`
	ProdukID    uint    `gorm:"index;not null" json:"produk_id"`
	Produk      *Produk `json:"produk,omitempty"`

	SupplierProdukID *uint `gorm:"index" json:"supplier_produk_id,omitempty"`

	Qty      int   `gorm:"not null" json:"qty"`
	Harga    int64 `gorm:"not null" json:"harga"`    // harga beli per unit saat transaksi
	Subtotal int64 `gorm:"not null" json:"subtotal"` // qty * harga
}
