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

func CreatePenjualan(c *gin.Context) {
	var in service.PenjualanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	var cnt int64
	if err := config.DB.Model(&models.Pelanggan{}).Where("id = ?", in.PelangganID).Count(&cnt).Error; err != nil || cnt == 0 {
		utils.Error(c, http.StatusBadRequest, "Pelanggan tidak ditemukan", nil)
		return
	}

	hasil, err := svc.CreatePenjualan(in)
	if err != nil {
		serviceError(c, "Gagal membuat penjualan", err)
		return
	}

	log.Info().
		Str("nomor_invoice", hasil.NomorInvoice).
		Int64("total_akhir", hasil.TotalAkhir).
		Int("jumlah_item", len(hasil.Details)).
		Msg("penjualan dibuat")
	c.JSON(http.StatusCreated, gin.H{"message": "Berhasil membuat penjualan", "data": hasil})
}

func GetAllPenjualan(c *gin.Context) {
	q := config.DB.Preload("Pelanggan").Preload("Details.Produk").
		Order("created_at DESC")
	if st := c.Query("status"); st != "" {
		q = q.Where("status = ?", st)
	}
	if dari := getDatePtr(c, "dari", false); dari != nil {
		q = q.Where("tanggal >= ?", *dari)
	}
	if sampai := getDatePtr(c, "sampai", true); sampai != nil {
		q = q.Where("tanggal <= ?", *sampai)
	}

	var rows []models.Penjualan
	if err := q.Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data penjualan", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data penjualan", rows)
}

func GetPenjualanByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	p, err := svc.GetPenjualan(id)
	if err != nil {
		serviceError(c, "Gagal mengambil data penjualan", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data penjualan", p)
}

func UpdatePenjualan(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in service.PenjualanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	hasil, err := svc.UpdatePenjualan(id, in)
	if err != nil {
		serviceError(c, "Gagal update penjualan", err)
		return
	}

	log.Info().
		Str("nomor_invoice", hasil.NomorInvoice).
		Int64("total_akhir", hasil.TotalAkhir).
		Msg("penjualan diubah")
	utils.Success(c, "Berhasil update penjualan", hasil)
}

func DeletePenjualan(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := svc.DeletePenjualan(id); err != nil {
		serviceError(c, "Gagal hapus penjualan", err)
		return
	}
	log.Info().Uint("penjualan_id", id).Msg("penjualan dihapus (stok dikembalikan)")
	utils.Success(c, "Penjualan berhasil dihapus (stok dikembalikan)", nil)
}

type StatusInput struct {
	Status models.StatusPenjualan `json:"status" binding:"required"`
}

// SetStatusPenjualan: override manual Lunas / Belum Lunas.
func SetStatusPenjualan(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in StatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	if err := svc.SetStatusPenjualan(id, in.Status); err != nil {
		serviceError(c, "Gagal update status penjualan", err)
		return
	}
	utils.Success(c, "Berhasil update status penjualan", gin.H{"status": in.Status})
}
