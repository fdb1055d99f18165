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

type ProdukInput struct {
	Nama        string `json:"nama" binding:"required"`
	Satuan      string `json:"satuan"`
	Merek       string `json:"merek"`
	HargaBeli   int64  `json:"harga_beli"`
	HargaJual   int64  `json:"harga_jual"`
	Stok        int    `json:"stok"`
	StokMinimal int    `json:"stok_minimal"`
	Status      string `json:"status"`
}

func GetAllProduk(c *gin.Context) {
	var rows []models.Produk
	q := config.DB.Order("created_at DESC")
	if st := c.Query("status"); st != "" {
		q = q.Where("status = ?", st)
	}
	if err := q.Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data produk", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data produk", rows)
}

func GetProdukByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var p models.Produk
	if err := config.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Produk tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data produk", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data produk", p)
}

func CreateProduk(c *gin.Context) {
	var in ProdukInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	idProduk, err := svc.IDProdukBaru()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal generate ID produk", err)
		return
	}
	kode, err := svc.KodeProdukBaru()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal generate kode produk", err)
		return
	}

	status := models.StatusProduk(in.Status)
	if status != models.ProdukNonaktif {
		status = models.ProdukAktif
	}

	p := models.Produk{
		IDProduk:    idProduk,
		Kode:        kode,
		Nama:        in.Nama,
		Satuan:      in.Satuan,
		Merek:       in.Merek,
		HargaBeli:   in.HargaBeli,
		HargaJual:   in.HargaJual,
		Stok:        in.Stok,
		StokMinimal: in.StokMinimal,
		Status:      status,
	}
	if err := config.DB.Create(&p).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat produk", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Berhasil membuat produk", "data": p})
}

// KodeProdukBaru memberi kode SKU berikutnya tanpa membuat produk,
// untuk prefill form.
func KodeProdukBaru(c *gin.Context) {
	kode, err := svc.KodeProdukBaru()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal generate kode produk", err)
		return
	}
	utils.Success(c, "Berhasil generate kode produk", gin.H{"kode": kode})
}

func UpdateProduk(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var p models.Produk
	if err := config.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Produk tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data produk", err)
		return
	}

	var in ProdukInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	updates := map[string]any{
		"nama":         in.Nama,
		"satuan":       in.Satuan,
		"merek":        in.Merek,
		"harga_beli":   in.HargaBeli,
		"harga_jual":   in.HargaJual,
		"stok_minimal": in.StokMinimal,
	}
	// stok sengaja tidak ikut: stok hanya berubah lewat transaksi
	// penjualan/pembelian.
	if in.Status == string(models.ProdukAktif) || in.Status == string(models.ProdukNonaktif) {
		updates["status"] = in.Status
	}
	if err := config.DB.Model(&p).Updates(updates).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal update produk", err)
		return
	}
	utils.Success(c, "Berhasil update produk", p)
}

func DeleteProduk(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	res := config.DB.Delete(&models.Produk{}, id)
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal hapus produk", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "Produk tidak ditemukan", nil)
		return
	}
	utils.Success(c, "Berhasil hapus produk", nil)
}
