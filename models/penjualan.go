package models

import "time"

type StatusPenjualan string

const (
	StatusLunas      StatusPenjualan = "Lunas"
	StatusBelumLunas StatusPenjualan = "Belum Lunas"
)

type MetodePembayaran string

const (
	PembayaranTunai    MetodePembayaran = "Tunai"
	PembayaranTransfer MetodePembayaran = "Transfer"
)

// Header penjualan. Detail dan pembayaran ikut terhapus bersama header
// (composition, tidak ada lifecycle sendiri).
type Penjualan struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	NomorInvoice    string `gorm:"uniqueIndex;size:40;not null" json:"nomor_invoice"` // INV/20250131/0001
	NomorSuratJalan string `gorm:"size:40" json:"nomor_surat_jalan"`                  // SJ/20250131/0001

	PelangganID uint      `gorm:"index;not null" json:"pelanggan_id"`
	Pelanggan   Pelanggan `json:"pelanggan"`
	Tanggal     time.Time `gorm:"not null" json:"tanggal"`

	Total        int64 `gorm:"not null" json:"total"` // SUM(detail.subtotal)
	Diskon       int64 `gorm:"not null;default:0" json:"diskon"`
	PajakEnabled bool  `gorm:"not null;default:false" json:"pajak_enabled"`
	Pajak        int64 `gorm:"not null;default:0" json:"pajak"`
	TotalAkhir   int64 `gorm:"not null" json:"total_akhir"` // total - diskon + pajak (bila enabled)

	Status           StatusPenjualan  `gorm:"size:15;index;not null" json:"status"`
	MetodePembayaran MetodePembayaran `gorm:"size:10" json:"metode_pembayaran"`
	NamaBank         string           `gorm:"size:60" json:"nama_bank,omitempty"`
	NomorRekening    string           `gorm:"size:40" json:"nomor_rekening,omitempty"`
	AtasNamaRekening string           `gorm:"size:120" json:"atas_nama_rekening,omitempty"`

	TanggalJatuhTempo *time.Time `json:"tanggal_jatuh_tempo,omitempty"`

	TotalDibayar int64 `gorm:"not null;default:0" json:"total_dibayar"` // SUM(pembayaran.jumlah)

	Details    []PenjualanDetail   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"details"`
	Pembayaran []PembayaranPiutang `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pembayaran,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PenjualanDetail struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	PenjualanID uint    `gorm:"index;not null" json:"penjualan_id"`
	ProdukID    uint    `gorm:"index;not null" json:"produk_id"`
	Produk      *Produk `json:"produk,omitempty"`

	// Terisi bila item diresolusi lewat daftar harga supplier.
	SupplierProdukID *uint `gorm:"index" json:"supplier_produk_id,omitempty"`

	Qty      int   `gorm:"not null" json:"qty"`
	Harga    int64 `gorm:"not null" json:"harga"`    // harga jual per unit saat transaksi
	Subtotal int64 `gorm:"not null" json:"subtotal"` // qty * harga
}

// Cicilan pembayaran piutang. Append-only: tidak pernah diubah atau
// dihapus sendiri, hanya ikut terhapus bersama penjualannya.
type PembayaranPiutang struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	PenjualanID uint `gorm:"index;not null" json:"penjualan_id"`

	Tanggal          time.Time `gorm:"not null" json:"tanggal"`
	Jumlah           int64     `gorm:"not null" json:"jumlah"`
	MetodePembayaran string    `gorm:"size:20;not null" json:"metode_pembayaran"` // Transfer / Cash / Debit / Kredit
	AtasNama         string    `gorm:"size:120" json:"atas_nama"`

	CreatedAt time.Time `json:"created_at"`
}
