package service

import (
	"errors"
	"fmt"
	"time"

	"go-postgres-trading/models"

	"gorm.io/gorm"
)

type PembayaranInput struct {
	Tanggal          time.Time `json:"tanggal"`
	Jumlah           int64     `json:"jumlah" binding:"required"`
	MetodePembayaran string    `json:"metode_pembayaran"` // Transfer / Cash / Debit / Kredit
	AtasNama         string    `json:"atas_nama"`
}

// SisaPiutang menghitung sisa utang sebuah penjualan. Murni.
func SisaPiutang(p models.Penjualan) int64 {
	return p.TotalAkhir - p.TotalDibayar
}

// BayarPiutang mencatat cicilan pembayaran. Validasi jumlah terhadap sisa
// utang dan penulisan record terjadi dalam satu transaksi dengan lock di
// header penjualan, supaya dua pembayaran konkuren tidak bisa melewati
// total. Pembayaran tidak pernah menyentuh stok.
func (s *Service) BayarPiutang(penjualanID uint, in PembayaranInput) (*models.PembayaranPiutang, error) {
	tanggal := in.Tanggal
	if tanggal.IsZero() {
		tanggal = time.Now().UTC()
	}

	var hasil *models.PembayaranPiutang
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var p models.Penjualan
		if err := lockForUpdate(tx).First(&p, penjualanID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransaksiNotFound
			}
			return err
		}

		sisa := SisaPiutang(p)
		if in.Jumlah <= 0 {
			return &PembayaranTidakValidError{Alasan: "jumlah bayar harus lebih dari nol", Sisa: sisa}
		}
		if in.Jumlah > sisa {
			return &PembayaranTidakValidError{Alasan: "jumlah bayar melebihi sisa utang", Sisa: sisa}
		}

		bayar := models.PembayaranPiutang{
			PenjualanID:      penjualanID,
			Tanggal:          tanggal,
			Jumlah:           in.Jumlah,
			MetodePembayaran: in.MetodePembayaran,
			AtasNama:         in.AtasNama,
		}
		if err := tx.Create(&bayar).Error; err != nil {
			return err
		}

		totalDibayar := p.TotalDibayar + in.Jumlah
		updates := map[string]any{"total_dibayar": totalDibayar}
		if totalDibayar >= p.TotalAkhir {
			updates["status"] = models.StatusLunas
		}
		if err := tx.Model(&models.Penjualan{}).Where("id = ?", p.ID).Updates(updates).Error; err != nil {
			return err
		}

		hasil = &bayar
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hasil, nil
}

// SetStatusPenjualan adalah override manual: tidak membaca ulang riwayat
// pembayaran. Menandai Lunas saat piutang belum tertutup hanya diizinkan
// bila AllowLunasOverride aktif.
func (s *Service) SetStatusPenjualan(id uint, status models.StatusPenjualan) error {
	if status != models.StatusLunas && status != models.StatusBelumLunas {
		return fmt.Errorf("status tidak dikenal: %s", status)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var p models.Penjualan
		if err := lockForUpdate(tx).First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransaksiNotFound
			}
			return err
		}

		if status == models.StatusLunas && p.TotalDibayar < p.TotalAkhir && !s.cfg.AllowLunasOverride {
			return &PembayaranTidakValidError{
				Alasan: "piutang belum tertutup, override Lunas tidak diizinkan",
				Sisa:   SisaPiutang(p),
			}
		}

		return tx.Model(&models.Penjualan{}).Where("id = ?", id).
			Update("status", status).Error
	})
}

// RiwayatPembayaran mengembalikan cicilan sebuah penjualan, urut waktu.
func (s *Service) RiwayatPembayaran(penjualanID uint) ([]models.PembayaranPiutang, error) {
	var p models.Penjualan
	if err := s.db.Select("id").First(&p, penjualanID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransaksiNotFound
		}
		return nil, err
	}

	var rows []models.PembayaranPiutang
	if err := s.db.Where("penjualan_id = ?", penjualanID).
		Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
