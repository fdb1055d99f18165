package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go-postgres-trading/service"
	"go-postgres-trading/utils"

	"github.com/gin-gonic/gin"
)

var svc *service.Service

// Init memasang service yang dipakai semua handler. Dipanggil sekali
// dari main sebelum routes didaftarkan.
func Init(s *service.Service) { svc = s }

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", err)
		return 0, false
	}
	return uint(id), true
}

// serviceError memetakan error taxonomy service ke kode HTTP.
func serviceError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrProdukNotFound),
		errors.Is(err, service.ErrTransaksiNotFound):
		utils.Error(c, http.StatusNotFound, msg, err)
	case errors.Is(err, service.ErrStokTidakCukup),
		errors.Is(err, service.ErrPembayaranTidakValid):
		utils.Error(c, http.StatusBadRequest, msg, err)
	default:
		utils.Error(c, http.StatusInternalServerError, msg, err)
	}
}

// getDatePtr membaca query tanggal format 2006-01-02. endOfDay untuk
// batas atas rentang supaya inklusif sampai akhir hari.
func getDatePtr(c *gin.Context, key string, endOfDay bool) *time.Time {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t
}
