package service

import (
	"testing"

	"go-postgres-trading/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSupplierProdukService(t *testing.T) *Service {
	t.Helper()
	cfg := defaultTestConfig()
	cfg.ModeResolusiItem = config.ResolusiSupplierProduk
	return New(newTestDB(t), cfg)
}

func TestResolusiSupplierProdukPenjualan(t *testing.T) {
	svc := newSupplierProdukService(t)
	db := svc.DB()

	plg := buatPelanggan(t, db)
	sup := buatSupplier(t, db)
	p := buatProduk(t, db, 20, 8000, 10000)
	sp := buatSupplierProduk(t, db, sup.ID, p.ID, 7500, 9500)

	hasil, err := svc.CreatePenjualan(PenjualanInput{
		PelangganID: plg.ID,
		Items:       []ItemInput{{SupplierProdukID: sp.ID, Qty: 3}},
	})
	require.NoError(t, err)

	// Harga dari daftar harga supplier, bukan master produk.
	assert.Equal(t, int64(3*9500), hasil.Total)
	require.Len(t, hasil.Details, 1)
	assert.Equal(t, p.ID, hasil.Details[0].ProdukID)
	require.NotNil(t, hasil.Details[0].SupplierProdukID)
	assert.Equal(t, sp.ID, *hasil.Details[0].SupplierProdukID)

	// Stok tetap turun di produk.
	assert.Equal(t, 17, stokProduk(t, db, p.ID))
}

func TestResolusiSupplierProdukPembelian(t *testing.T) {
	svc := newSupplierProdukService(t)
	db := svc.DB()

	sup := buatSupplier(t, db)
	p := buatProduk(t, db, 0, 8000, 10000)
	sp := buatSupplierProduk(t, db, sup.ID, p.ID, 7500, 9500)

	hasil, err := svc.CreatePembelian(PembelianInput{
		SupplierID: sup.ID,
		Items:      []ItemInput{{SupplierProdukID: sp.ID, Qty: 4}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4*7500), hasil.Total)
	assert.Equal(t, 4, stokProduk(t, db, p.ID))
}

func TestResolusiSupplierProdukValidasiStokGabungan(t *testing.T) {
	svc := newSupplierProdukService(t)
	db := svc.DB()

	plg := buatPelanggan(t, db)
	supA := buatSupplier(t, db)
	supB := buatSupplier(t, db)
	p := buatProduk(t, db, 10, 8000, 10000)
	spA := buatSupplierProduk(t, db, supA.ID, p.ID, 7500, 9500)
	spB := buatSupplierProduk(t, db, supB.ID, p.ID, 7000, 9000)

	// Dua baris daftar harga berbeda tapi produk fisiknya sama:
	// agregat 6+6 = 12 > 10 ditolak.
	_, err := svc.CreatePenjualan(PenjualanInput{
		PelangganID: plg.ID,
		Items: []ItemInput{
			{SupplierProdukID: spA.ID, Qty: 6},
			{SupplierProdukID: spB.ID, Qty: 6},
		},
	})
	require.ErrorIs(t, err, ErrStokTidakCukup)
	assert.Equal(t, 10, stokProduk(t, db, p.ID))
}

func TestResolusiSupplierProdukTidakAda(t *testing.T) {
	svc := newSupplierProdukService(t)
	plg := buatPelanggan(t, svc.DB())

	_, err := svc.CreatePenjualan(PenjualanInput{
		PelangganID: plg.ID,
		Items:       []ItemInput{{SupplierProdukID: 9999, Qty: 1}},
	})
	assert.ErrorIs(t, err, ErrProdukNotFound)
}

func TestResolusiProdukAbaikanSupplierProdukID(t *testing.T) {
	svc := newTestService(t)
	db := svc.DB()

	plg := buatPelanggan(t, db)
	p := buatProduk(t, db, 10, 8000, 10000)

	// Mode default: yang dipakai ProdukID, detail tanpa referensi
	// daftar harga.
	hasil, err := svc.CreatePenjualan(PenjualanInput{
		PelangganID: plg.ID,
		Items:       []ItemInput{{ProdukID: p.ID, Qty: 1}},
	})
	require.NoError(t, err)
	require.Len(t, hasil.Details, 1)
	assert.Nil(t, hasil.Details[0].SupplierProdukID)
}
