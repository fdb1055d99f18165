// controllers/piutang_controller.go
package controllers

import (
	"net/http"

	"go-postgres-trading/config"
	"go-postgres-trading/models"
	"go-postgres-trading/service"
	"go-postgres-trading/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type PiutangRow struct {
	models.Penjualan
	Sisa int64 `json:"sisa"`
}

// GetAllPiutang: penjualan yang belum lunas, plus sisa utang per baris.
func GetAllPiutang(c *gin.Context) {
	var rows []models.Penjualan
	if err := config.DB.Preload("Pelanggan").
		Where("status = ?", models.StatusBelumLunas).
		Order("tanggal_jatuh_tempo ASC, id DESC").
		Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal ambil piutang", err)
		return
	}

	out := make([]PiutangRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, PiutangRow{Penjualan: r, Sisa: service.SisaPiutang(r)})
	}
	utils.Success(c, "Berhasil ambil piutang", out)
}

func BayarPiutang(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in service.PembayaranInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	bayar, err := svc.BayarPiutang(id, in)
	if err != nil {
		serviceError(c, "Gagal menyimpan pembayaran", err)
		return
	}

	log.Info().
		Uint("penjualan_id", id).
		Int64("jumlah", bayar.Jumlah).
		Msg("pembayaran piutang dicatat")
	c.JSON(http.StatusCreated, gin.H{"message": "Pembayaran berhasil disimpan", "data": bayar})
}

func RiwayatPembayaran(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	rows, err := svc.RiwayatPembayaran(id)
	if err != nil {
		serviceError(c, "Gagal ambil riwayat pembayaran", err)
		return
	}
	utils.Success(c, "Berhasil ambil riwayat pembayaran", rows)
}
