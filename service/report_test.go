package service

import (
	"testing"
	"time"

	"go-postgres-trading/models"

	"github.com/stretchr/testify/assert"
)

func tgl(hari int) time.Time {
	return time.Date(2025, 1, hari, 0, 0, 0, 0, time.UTC)
}

func contohPenjualan() []models.Penjualan {
	return []models.Penjualan{
		{Tanggal: tgl(5), Total: 100000, TotalAkhir: 100000, TotalDibayar: 100000, Status: models.StatusLunas},
		{Tanggal: tgl(10), Total: 50000, TotalAkhir: 50000, TotalDibayar: 20000, Status: models.StatusBelumLunas},
		{Tanggal: tgl(20), Total: 75000, TotalAkhir: 80000, TotalDibayar: 0, Status: models.StatusBelumLunas},
	}
}

func TestRingkasPenjualan(t *testing.T) {
	r := RingkasPenjualan(contohPenjualan())

	assert.Equal(t, 3, r.JumlahTransaksi)
	assert.Equal(t, int64(225000), r.TotalNilai)
	assert.Equal(t, 1, r.JumlahLunas)
	assert.Equal(t, 2, r.JumlahBelumLunas)
	assert.Equal(t, int64(30000+80000), r.TotalPiutang)
}

func TestRingkasPenjualanKosong(t *testing.T) {
	r := RingkasPenjualan(nil)
	assert.Zero(t, r.JumlahTransaksi)
	assert.Zero(t, r.TotalNilai)
	assert.Zero(t, r.TotalPiutang)
}

func TestSumSisaPiutangAbaikanOverride(t *testing.T) {
	// Penjualan yang dibayar melebihi total (mis. data lama) tidak boleh
	// mengurangi piutang penjualan lain.
	rows := []models.Penjualan{
		{TotalAkhir: 10000, TotalDibayar: 15000},
		{TotalAkhir: 50000, TotalDibayar: 0},
	}
	assert.Equal(t, int64(50000), SumSisaPiutang(rows))
}

func TestFilterPenjualanByTanggal(t *testing.T) {
	rows := contohPenjualan()

	dari := tgl(6)
	sampai := tgl(15)

	assert.Len(t, FilterPenjualanByTanggal(rows, nil, nil), 3)
	assert.Len(t, FilterPenjualanByTanggal(rows, &dari, nil), 2)
	assert.Len(t, FilterPenjualanByTanggal(rows, nil, &sampai), 2)
	assert.Len(t, FilterPenjualanByTanggal(rows, &dari, &sampai), 1)

	// Batas inklusif.
	batas := tgl(10)
	assert.Len(t, FilterPenjualanByTanggal(rows, &batas, &batas), 1)
}

func TestRingkasPembelian(t *testing.T) {
	rows := []models.Pembelian{
		{Tanggal: tgl(3), Total: 200000},
		{Tanggal: tgl(8), Total: 120000},
	}

	r := RingkasPembelian(rows)
	assert.Equal(t, 2, r.JumlahTransaksi)
	assert.Equal(t, int64(320000), r.TotalNilai)

	dari := tgl(5)
	assert.Len(t, FilterPembelianByTanggal(rows, &dari, nil), 1)
}

func TestSisaPiutang(t *testing.T) {
	p := models.Penjualan{TotalAkhir: 80000, TotalDibayar: 30000}
	assert.Equal(t, int64(50000), SisaPiutang(p))
}
