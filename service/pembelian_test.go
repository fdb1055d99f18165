package service

import (
	"testing"

	"go-postgres-trading/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePembelianMenambahStok(t *testing.T) {
	svc := newTestService(t)
	db := svc.DB()

	sup := buatSupplier(t, db)
	p1 := buatProduk(t, db, 5, 8000, 10000)
	p2 := buatProduk(t, db, 0, 4000, 5000)

	hasil, err := svc.CreatePembelian(PembelianInput{
		SupplierID: sup.ID,
		NoDO:       "DO-001",
		Items: []ItemInput{
			{ProdukID: p1.ID, Qty: 10},
			{ProdukID: p2.ID, Qty: 7},
		},
	})
	require.NoError(t, err)

	// Harga 0 = pakai harga beli master.
	assert.Equal(t, int64(10*8000+7*4000), hasil.Total)
	assert.Len(t, hasil.Details, 2)

	assert.Equal(t, 15, stokProduk(t, db, p1.ID))
	assert.Equal(t, 7, stokProduk(t, db, p2.ID))
}

func TestCreatePembelianProdukTidakAda(t *testing.T) {
	svc := newTestService(t)
	sup := buatSupplier(t, svc.DB())

	_, err := svc.CreatePembelian(PembelianInput{
		SupplierID: sup.ID,
		Items:      []ItemInput{{ProdukID: 9999, Qty: 1}},
	})
	assert.ErrorIs(t, err, ErrProdukNotFound)
}

func TestUpdatePembelianGantiItem(t *testing.T) {
	svc := newTestService(t)
	db := svc.DB()

	sup := buatSupplier(t, db)
	p := buatProduk(t, db, 0, 1000, 2000)

	awal, err := svc.CreatePembelian(PembelianInput{
		SupplierID: sup.ID,
		Items:      []ItemInput{{ProdukID: p.ID, Qty: 10}},
	})
	require.NoError(t, err)
	require.Equal(t, 10, stokProduk(t, db, p.ID))

	hasil, err := svc.UpdatePembelian(awal.ID, PembelianInput{
		SupplierID: sup.ID,
		Items:      []ItemInput{{ProdukID: p.ID, Qty: 4}},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, stokProduk(t, db, p.ID))
	assert.Equal(t, int64(4*1000), hasil.Total)
}

func TestUpdatePembelianTolakStokNegatif(t *testing.T) {
	svc := newTestService(t)
	db := svc.DB()

	sup := buatSupplier(t, db)
	plg := buatPelanggan(t, db)
	p := buatProduk(t, db, 0, 1000, 2000)

	awal, err := svc.CreatePembelian(PembelianInput{
		SupplierID: sup.ID,
		Items:      []ItemInput{{ProdukID: p.ID, Qty: 10}},
	})
	require.NoError(t, err)

	// 8 dari 10 sudah terjual; mengecilkan pembelian ke 1 akan membuat
	// stok 2 - 10 + 1 = -7.
	_, err = svc.CreatePenjualan(PenjualanInput{
		PelangganID: plg.ID,
		Items:       []ItemInput{{ProdukID: p.ID, Qty: 8}},
	})
	require.NoError(t, err)

	_, err = svc.UpdatePembelian(awal.ID, PembelianInput{
		SupplierID: sup.ID,
		Items:      []ItemInput{{ProdukID: p.ID, Qty: 1}},
	})
	require.ErrorIs(t, err, ErrStokTidakCukup)
	assert.Equal(t, 2, stokProduk(t, db, p.ID))
}

func TestDeletePembelianMengurangiStokKembali(t *testing.T) {
	svc := newTestService(t)
	db := svc.DB()

	sup := buatSupplier(t, db)
	p := buatProduk(t, db, 3, 1000, 2000)

	awal, err := svc.CreatePembelian(PembelianInput{
		SupplierID: sup.ID,
		Items:      []ItemInput{{ProdukID: p.ID, Qty: 5}},
	})
	require.NoError(t, err)
	require.Equal(t, 8, stokProduk(t, db, p.ID))

	require.NoError(t, svc.DeletePembelian(awal.ID))
	assert.Equal(t, 3, stokProduk(t, db, p.ID))

	var cnt int64
	require.NoError(t, db.Model(&models.PembelianDetail{}).Where("pembelian_id = ?", awal.ID).Count(&cnt).Error)
	assert.Zero(t, cnt)
}

func TestDeletePembelianTolakStokNegatif(t *testing.T) {
	svc := newTestService(t)
	db := svc.DB()

	sup := buatSupplier(t, db)
	plg := buatPelanggan(t, db)
	p := buatProduk(t, db, 0, 1000, 2000)

	awal, err := svc.CreatePembelian(PembelianInput{
		SupplierID: sup.ID,
		Items:      []ItemInput{{ProdukID: p.ID, Qty: 10}},
	})
	require.NoError(t, err)

	_, err = svc.CreatePenjualan(PenjualanInput{
		PelangganID: plg.ID,
		Items:       []ItemInput{{ProdukID: p.ID, Qty: 8}},
	})
	require.NoError(t, err)

	err = svc.DeletePembelian(awal.ID)
	require.ErrorIs(t, err, ErrStokTidakCukup)

	// Header masih ada, stok tidak berubah.
	_, err = svc.GetPembelian(awal.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stokProduk(t, db, p.ID))
}

func TestDeletePembelianGuardNonaktif(t *testing.T) {
	db := newTestDB(t)
	cfg := defaultTestConfig()
	cfg.GuardNegativeStock = false
	svc := New(db, cfg)

	sup := buatSupplier(t, db)
	plg := buatPelanggan(t, db)
	p := buatProduk(t, db, 0, 1000, 2000)

	awal, err := svc.CreatePembelian(PembelianInput{
		SupplierID: sup.ID,
		Items:      []ItemInput{{ProdukID: p.ID, Qty: 10}},
	})
	require.NoError(t, err)

	_, err = svc.CreatePenjualan(PenjualanInput{
		PelangganID: plg.ID,
		Items:       []ItemInput{{ProdukID: p.ID, Qty: 8}},
	})
	require.NoError(t, err)

	// Guard mati: pembatalan tetap jalan dan stok boleh minus.
	require.NoError(t, svc.DeletePembelian(awal.ID))
	assert.Equal(t, -8, stokProduk(t, db, p.ID))
}
