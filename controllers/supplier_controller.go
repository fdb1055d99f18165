package controllers

import (
	"errors"
	"net/http"

	"go-postgres-trading/config"
	"go-postgres-trading/models"
	"go-postgres-trading/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SupplierInput struct {
	Kode   string `json:"kode" binding:"required"`
	Nama   string `json:"nama" binding:"required"`
	Alamat string `json:"alamat"`
	Telp   string `json:"telp"`
	Status *bool  `json:"status"`
}

type SupplierProdukInput struct {
	ProdukID  uint  `json:"produk_id" binding:"required"`
	HargaBeli int64 `json:"harga_beli"`
	HargaJual int64 `json:"harga_jual"`
}

func GetAllSupplier(c *gin.Context) {
	var rows []models.Supplier
	if err := config.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data supplier", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data supplier", rows)
}

func GetSupplierByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var s models.Supplier
	if err := config.DB.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Supplier tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data supplier", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data supplier", s)
}

func CreateSupplier(c *gin.Context) {
	var in SupplierInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	status := true
	if in.Status != nil {
		status = *in.Status
	}
	s := models.Supplier{
		Kode:   in.Kode,
		Nama:   in.Nama,
		Alamat: in.Alamat,
		Telp:   in.Telp,
		Status: status,
	}
	if err := config.DB.Create(&s).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat supplier", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Berhasil membuat supplier", "data": s})
}

func UpdateSupplier(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var s models.Supplier
	if err := config.DB.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Supplier tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data supplier", err)
		return
	}

	var in SupplierInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	updates := map[string]any{
		"kode":   in.Kode,
		"nama":   in.Nama,
		"alamat": in.Alamat,
		"telp":   in.Telp,
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if err := config.DB.Model(&s).Updates(updates).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal update supplier", err)
		return
	}
	utils.Success(c, "Berhasil update supplier", s)
}

func DeleteSupplier(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	res := config.DB.Delete(&models.Supplier{}, id)
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal hapus supplier", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "Supplier tidak ditemukan", nil)
		return
	}
	utils.Success(c, "Berhasil hapus supplier", nil)
}

// ===== Daftar harga per supplier =====

func GetSupplierProduk(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var rows []models.SupplierProduk
	if err := config.DB.Preload("Produk").
		Where("supplier_id = ?", id).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil daftar harga", err)
		return
	}
	utils.Success(c, "Berhasil mengambil daftar harga", rows)
}

func CreateSupplierProduk(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in SupplierProdukInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	var cnt int64
	if err := config.DB.Model(&models.Supplier{}).Where("id = ?", id).Count(&cnt).Error; err != nil || cnt == 0 {
		utils.Error(c, http.StatusNotFound, "Supplier tidak ditemukan", nil)
		return
	}
	if err := config.DB.Model(&models.Produk{}).Where("id = ?", in.ProdukID).Count(&cnt).Error; err != nil || cnt == 0 {
		utils.Error(c, http.StatusNotFound, "Produk tidak ditemukan", nil)
		return
	}

	sp := models.SupplierProduk{
		SupplierID: id,
		ProdukID:   in.ProdukID,
		HargaBeli:  in.HargaBeli,
		HargaJual:  in.HargaJual,
	}
	if err := config.DB.Create(&sp).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat daftar harga", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Berhasil membuat daftar harga", "data": sp})
}
