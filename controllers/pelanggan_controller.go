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

type PelangganInput struct {
	Nama     string `json:"nama" binding:"required"`
	NamaToko string `json:"nama_toko"`
	NIB      string `json:"nib"`
	Alamat   string `json:"alamat"`
	NoTelp   string `json:"no_telp"`
	Email    string `json:"email"`
	Status   string `json:"status"`
}

func GetAllPelanggan(c *gin.Context) {
	var rows []models.Pelanggan
	if err := config.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data pelanggan", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data pelanggan", rows)
}

func GetPelangganByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var p models.Pelanggan
	if err := config.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Pelanggan tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data pelanggan", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data pelanggan", p)
}

func CreatePelanggan(c *gin.Context) {
	var in PelangganInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	idPelanggan, err := svc.IDPelangganBaru()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal generate ID pelanggan", err)
		return
	}

	status := in.Status
	if status != "nonaktif" {
		status = "aktif"
	}

	p := models.Pelanggan{
		IDPelanggan: idPelanggan,
		Nama:        in.Nama,
		NamaToko:    in.NamaToko,
		NIB:         in.NIB,
		Alamat:      in.Alamat,
		NoTelp:      in.NoTelp,
		Email:       in.Email,
		Status:      status,
	}
	if err := config.DB.Create(&p).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat pelanggan", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Berhasil membuat pelanggan", "data": p})
}

func UpdatePelanggan(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var p models.Pelanggan
	if err := config.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Pelanggan tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data pelanggan", err)
		return
	}

	var in PelangganInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	updates := map[string]any{
		"nama":      in.Nama,
		"nama_toko": in.NamaToko,
		"nib":       in.NIB,
		"alamat":    in.Alamat,
		"no_telp":   in.NoTelp,
		"email":     in.Email,
	}
	if in.Status == "aktif" || in.Status == "nonaktif" {
		updates["status"] = in.Status
	}
	if err := config.DB.Model(&p).Updates(updates).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal update pelanggan", err)
		return
	}
	utils.Success(c, "Berhasil update pelanggan", p)
}

func DeletePelanggan(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	res := config.DB.Delete(&models.Pelanggan{}, id)
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal hapus pelanggan", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "Pelanggan tidak ditemukan", nil)
		return
	}
	utils.Success(c, "Berhasil hapus pelanggan", nil)
}
