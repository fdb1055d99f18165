package controllers

import (
	"net/http"

	"go-postgres-trading/config"
	"go-postgres-trading/models"
	"go-postgres-trading/service"
	"go-postgres-trading/utils"

	"github.com/gin-gonic/gin"
)

// Laporan: fetch dulu, lalu agregasi murni di service/report.go.

func LaporanPenjualan(c *gin.Context) {
	var rows []models.Penjualan
	if err := config.DB.Preload("Pelanggan").Order("tanggal ASC, id ASC").
		Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data penjualan", err)
		return
	}

	dari := getDatePtr(c, "dari", false)
	sampai := getDatePtr(c, "sampai", true)
	rows = service.FilterPenjualanByTanggal(rows, dari, sampai)

	utils.Success(c, "Berhasil membuat laporan penjualan", gin.H{
		"ringkasan": service.RingkasPenjualan(rows),
		"rows":      rows,
	})
}

func LaporanPembelian(c *gin.Context) {
	var rows []models.Pembelian
	if err := config.DB.Preload("Supplier").Order("tanggal ASC, id ASC").
		Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data pembelian", err)
		return
	}

	dari := getDatePtr(c, "dari", false)
	sampai := getDatePtr(c, "sampai", true)
	rows = service.FilterPembelianByTanggal(rows, dari, sampai)

	utils.Success(c, "Berhasil membuat laporan pembelian", gin.H{
		"ringkasan": service.RingkasPembelian(rows),
		"rows":      rows,
	})
}

type StokRow struct {
	ID          uint   `json:"id"`
	IDProduk    string `json:"id_produk"`
	Kode        string `json:"kode"`
	Nama        string `json:"nama"`
	Satuan      string `json:"satuan"`
	Stok        int    `json:"stok"`
	StokMinimal int    `json:"stok_minimal"`
	StatusStok  string `json:"status_stok"` // LOW | OK
}

func LaporanStok(c *gin.Context) {
	var rows []models.Produk
	if err := config.DB.Order("nama ASC").Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data stok", err)
		return
	}

	out := make([]StokRow, 0, len(rows))
	for _, p := range rows {
		status := "OK"
		if p.Stok < p.StokMinimal {
			status = "LOW"
		}
		out = append(out, StokRow{
			ID:          p.ID,
			IDProduk:    p.IDProduk,
			Kode:        p.Kode,
			Nama:        p.Nama,
			Satuan:      p.Satuan,
			Stok:        p.Stok,
			StokMinimal: p.StokMinimal,
			StatusStok:  status,
		})
	}
	utils.Success(c, "Berhasil membuat laporan stok", out)
}
