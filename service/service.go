package service

import (
	"go-postgres-trading/config"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service memegang seluruh logika transaksi stok, piutang, dan counter.
// Semua mutasi multi-baris dibungkus satu db.Transaction: baca dulu semua
// (dengan row lock), baru tulis, commit-or-abort sebagai satu unit.
type Service struct {
	db       *gorm.DB
	cfg      config.App
	resolver ItemResolver
}

func New(db *gorm.DB, cfg config.App) *Service {
	s := &Service{db: db, cfg: cfg}
	if cfg.ModeResolusiItem == config.ResolusiSupplierProduk {
		s.resolver = supplierProdukResolver{}
	} else {
		s.resolver = produkResolver{}
	}
	return s
}

func (s *Service) DB() *gorm.DB { return s.db }

// lockForUpdate menambahkan SELECT ... FOR UPDATE. Hanya dialek postgres
// yang mengenal klausa ini; sqlite (dipakai di test) serialisasi lewat
// satu koneksi sehingga lock baris tidak diperlukan.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
