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

func CreatePembelian(c *gin.Context) {
	var in service.PembelianInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	var cnt int64
	if err := config.DB.Model(&models.Supplier{}).Where("id = ?", in.SupplierID).Count(&cnt).Error; err != nil || cnt == 0 {
		utils.Error(c, http.StatusBadRequest, "Supplier tidak ditemukan", nil)
		return
	}

	hasil, err := svc.CreatePembelian(in)
	if err != nil {
		serviceError(c, "Gagal membuat pembelian", err)
		return
	}

	log.Info().
		Uint("pembelian_id", hasil.ID).
		Int64("total", hasil.Total).
		Int("jumlah_item", len(hasil.Details)).
		Msg("pembelian dibuat")
	c.JSON(http.StatusCreated, gin.H{"message": "Berhasil membuat pembelian", "data": hasil})
}

func GetAllPembelian(c *gin.Context) {
	q := config.DB.Preload("Supplier").Preload("Details.Produk").
		Order("created_at DESC")
	if dari := getDatePtr(c, "dari", false); dari != nil {
		q = q.Where("tanggal >= ?", *dari)
	}
	if sampai := getDatePtr(c, "sampai", true); sampai != nil {
		q = q.Where("tanggal <= ?", *sampai)
	}

	var rows []models.Pembelian
	if err := q.Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data pembelian", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data pembelian", rows)
}

func GetPembelianByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	p, err := svc.GetPembelian(id)
	if err != nil {
		serviceError(c, "Gagal mengambil data pembelian", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data pembelian", p)
}

func UpdatePembelian(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in service.PembelianInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	hasil, err := svc.UpdatePembelian(id, in)
	if err != nil {
		serviceError(c, "Gagal update pembelian", err)
		return
	}
	utils.Success(c, "Berhasil update pembelian", hasil)
}

func DeletePembelian(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := svc.DeletePembelian(id); err != nil {
		serviceError(c, "Gagal hapus pembelian", err)
		return
	}
	log.Info().Uint("pembelian_id", id).Msg("pembelian dihapus (stok dikurangi kembali)")
	utils.Success(c, "Pembelian berhasil dihapus (stok dikurangi kembali)", nil)
}
