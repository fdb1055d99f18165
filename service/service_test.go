package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"go-postgres-trading/config"
	"go-postgres-trading/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB sqlite in-memory per test. cache=shared + satu koneksi supaya semua
// transaksi melihat database yang sama dan terserialisasi.
var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Produk{},
		&models.Pelanggan{},
		&models.Supplier{},
		&models.SupplierProduk{},
		&models.Penjualan{},
		&models.PenjualanDetail{},
		&models.PembayaranPiutang{},
		&models.Pembelian{},
		&models.PembelianDetail{},
		&models.Counter{},
	))
	return db
}

func defaultTestConfig() config.App {
	return config.App{
		ModeResolusiItem:   config.ResolusiProduk,
		AllowLunasOverride: true,
		GuardNegativeStock: true,
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return New(newTestDB(t), defaultTestConfig())
}

// ===== Seed helpers =====

var seedSeq atomic.Int64

func buatProduk(t *testing.T, db *gorm.DB, stok int, hargaBeli, hargaJual int64) models.Produk {
	t.Helper()
	n := seedSeq.Add(1)
	p := models.Produk{
		IDProduk:  fmt.Sprintf("PRD-%05d", n),
		Kode:      fmt.Sprintf("SKU-%05d", n),
		Nama:      fmt.Sprintf("Produk %d", n),
		Satuan:    "dus",
		HargaBeli: hargaBeli,
		HargaJual: hargaJual,
		Stok:      stok,
		Status:    models.ProdukAktif,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func buatPelanggan(t *testing.T, db *gorm.DB) models.Pelanggan {
	t.Helper()
	n := seedSeq.Add(1)
	plg := models.Pelanggan{
		IDPelanggan: fmt.Sprintf("PLG-%05d", n),
		Nama:        fmt.Sprintf("Pelanggan %d", n),
		NamaToko:    "Toko Maju",
		Status:      "aktif",
	}
	require.NoError(t, db.Create(&plg).Error)
	return plg
}

func buatSupplier(t *testing.T, db *gorm.DB) models.Supplier {
	t.Helper()
	n := seedSeq.Add(1)
	s := models.Supplier{
		Kode:   fmt.Sprintf("SUP-%05d", n),
		Nama:   fmt.Sprintf("Supplier %d", n),
		Status: true,
	}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func buatSupplierProduk(t *testing.T, db *gorm.DB, supplierID, produkID uint, hargaBeli, hargaJual int64) models.SupplierProduk {
	t.Helper()
	sp := models.SupplierProduk{
		SupplierID: supplierID,
		ProdukID:   produkID,
		HargaBeli:  hargaBeli,
		HargaJual:  hargaJual,
	}
	require.NoError(t, db.Create(&sp).Error)
	return sp
}

func stokProduk(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var p models.Produk
	require.NoError(t, db.First(&p, id).Error)
	return p.Stok
}
