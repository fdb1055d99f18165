package service

import (
	"time"

	"go-postgres-trading/models"
)

// Agregator laporan: fungsi murni atas slice yang sudah di-fetch caller.
// Tidak ada I/O, deterministik untuk input yang sama.

func CountPenjualan(rows []models.Penjualan) int { return len(rows) }

func SumTotalPenjualan(rows []models.Penjualan) int64 {
	var sum int64
	for _, r := range rows {
		sum += r.Total
	}
	return sum
}

func CountPenjualanByStatus(rows []models.Penjualan, status models.StatusPenjualan) int {
	n := 0
	for _, r := range rows {
		if r.Status == status {
			n++
		}
	}
	return n
}

func SumSisaPiutang(rows []models.Penjualan) int64 {
	var sum int64
	for _, r := range rows {
		if sisa := SisaPiutang(r); sisa > 0 {
			sum += sisa
		}
	}
	return sum
}

// FilterPenjualanByTanggal memotong slice ke rentang [dari, sampai]
// inklusif. Batas nil berarti terbuka.
func FilterPenjualanByTanggal(rows []models.Penjualan, dari, sampai *time.Time) []models.Penjualan {
	out := make([]models.Penjualan, 0, len(rows))
	for _, r := range rows {
		if dari != nil && r.Tanggal.Before(*dari) {
			continue
		}
		if sampai != nil && r.Tanggal.After(*sampai) {
			continue
		}
		out = append(out, r)
	}
	return out
}

type RingkasanPenjualan struct {
	JumlahTransaksi  int   `json:"jumlah_transaksi"`
	TotalNilai       int64 `json:"total_nilai"`
	JumlahLunas      int   `json:"jumlah_lunas"`
	JumlahBelumLunas int   `json:"jumlah_belum_lunas"`
	TotalPiutang     int64 `json:"total_piutang"`
}

func RingkasPenjualan(rows []models.Penjualan) RingkasanPenjualan {
	return RingkasanPenjualan{
		JumlahTransaksi:  CountPenjualan(rows),
		TotalNilai:       SumTotalPenjualan(rows),
		JumlahLunas:      CountPenjualanByStatus(rows, models.StatusLunas),
		JumlahBelumLunas: CountPenjualanByStatus(rows, models.StatusBelumLunas),
		TotalPiutang:     SumSisaPiutang(rows),
	}
}

func CountPembelian(rows []models.Pembelian) int { return len(rows) }

func SumTotalPembelian(rows []models.Pembelian) int64 {
	var sum int64
	for _, r := range rows {
		sum += r.Total
	}
	return sum
}

func FilterPembelianByTanggal(rows []models.Pembelian, dari, sampai *time.Time) []models.Pembelian {
	out := make([]models.Pembelian, 0, len(rows))
	for _, r := range rows {
		if dari != nil && r.Tanggal.Before(*dari) {
			continue
		}
		if sampai != nil && r.Tanggal.After(*sampai) {
			continue
		}
		out = append(out, r)
	}
	return out
}

type RingkasanPembelian struct {
	JumlahTransaksi int   `json:"jumlah_transaksi"`
	TotalNilai      int64 `json:"total_nilai"`
}

func RingkasPembelian(rows []models.Pembelian) RingkasanPembelian {
	return RingkasanPembelian{
		JumlahTransaksi: CountPembelian(rows),
		TotalNilai:      SumTotalPembelian(rows),
	}
}
