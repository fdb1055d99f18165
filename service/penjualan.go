package service

import (
	"errors"
	"fmt"
	"time"

	"go-postgres-trading/models"

	"gorm.io/gorm"
)

type PenjualanInput struct {
	NomorInvoice    string    `json:"nomor_invoice"`     // kosong = generate dari counter
	NomorSuratJalan string    `json:"nomor_surat_jalan"` // kosong = generate dari counter
	PelangganID     uint      `json:"pelanggan_id" binding:"required"`
	Tanggal         time.Time `json:"tanggal"`

	Diskon       int64 `json:"diskon"`
	PajakEnabled bool  `json:"pajak_enabled"`
	Pajak        int64 `json:"pajak"`

	Status           models.StatusPenjualan  `json:"status"` // kosong = Belum Lunas
	MetodePembayaran models.MetodePembayaran `json:"metode_pembayaran"`
	NamaBank         string                  `json:"nama_bank"`
	NomorRekening    string                  `json:"nomor_rekening"`
	AtasNamaRekening string                  `json:"atas_nama_rekening"`

	TanggalJatuhTempo *time.Time `json:"tanggal_jatuh_tempo"`

	Items []ItemInput `json:"items" binding:"required,min=1"`
}

func totalAkhir(total, diskon, pajak int64, pajakEnabled bool) int64 {
	akhir := total - diskon
	if pajakEnabled {
		akhir += pajak
	}
	return akhir
}

// CreatePenjualan membuat penjualan baru: validasi stok semua item dulu
// (baris produk di-lock), baru tulis header + detail + kurangi stok,
// semuanya dalam satu transaksi. Gagal validasi = tidak ada yang tertulis.
func (s *Service) CreatePenjualan(in PenjualanInput) (*models.Penjualan, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("minimal satu item penjualan")
	}

	tanggal := in.Tanggal
	if tanggal.IsZero() {
		tanggal = time.Now().UTC()
	}

	nomorInvoice := in.NomorInvoice
	if nomorInvoice == "" {
		var err error
		nomorInvoice, err = s.NomorInvoiceBaru(tanggal)
		if err != nil {
			return nil, err
		}
	}
	nomorSJ := in.NomorSuratJalan
	if nomorSJ == "" {
		var err error
		nomorSJ, err = s.NomorSuratJalanBaru(tanggal)
		if err != nil {
			return nil, err
		}
	}

	status := in.Status
	if status == "" {
		status = models.StatusBelumLunas
	}

	var hasil *models.Penjualan
	err := s.db.Transaction(func(tx *gorm.DB) error {
		resolved, err := s.resolveItems(tx, in.Items, JenisPenjualan)
		if err != nil {
			return err
		}

		kebutuhan := totalQtyPerProduk(resolved)
		produk, err := kunciProduk(tx, sortedProdukIDs(kebutuhan))
		if err != nil {
			return err
		}

		for _, id := range sortedProdukIDs(kebutuhan) {
			p := produk[id]
			if kebutuhan[id] > p.Stok {
				return &StokTidakCukupError{
					ProdukID: p.ID,
					Kode:     p.Kode,
					Tersedia: p.Stok,
					Diminta:  kebutuhan[id],
				}
			}
		}

		var total int64
		details := make([]models.PenjualanDetail, 0, len(resolved))
		for _, r := range resolved {
			total += r.Subtotal()
			details = append(details, models.PenjualanDetail{
				ProdukID:         r.ProdukID,
				SupplierProdukID: r.SupplierProdukID,
				Qty:              r.Qty,
				Harga:            r.Harga,
				Subtotal:         r.Subtotal(),
			})
		}

		header := models.Penjualan{
			NomorInvoice:      nomorInvoice,
			NomorSuratJalan:   nomorSJ,
			PelangganID:       in.PelangganID,
			Tanggal:           tanggal,
			Total:             total,
			Diskon:            in.Diskon,
			PajakEnabled:      in.PajakEnabled,
			Pajak:             in.Pajak,
			TotalAkhir:        totalAkhir(total, in.Diskon, in.Pajak, in.PajakEnabled),
			Status:            status,
			MetodePembayaran:  in.MetodePembayaran,
			NamaBank:          in.NamaBank,
			NomorRekening:     in.NomorRekening,
			AtasNamaRekening:  in.AtasNamaRekening,
			TanggalJatuhTempo: in.TanggalJatuhTempo,
			Details:           details,
		}
		if err := tx.Create(&header).Error; err != nil {
			return err
		}

		for _, id := range sortedProdukIDs(kebutuhan) {
			if err := applyDeltaStok(tx, id, -kebutuhan[id]); err != nil {
				return err
			}
		}

		hasil = &header
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hasil, nil
}

// UpdatePenjualan mengganti seluruh set item (bukan diff). Validasi
// dilakukan terhadap baseline "stok bebas" (stok sekarang + qty lama),
// lalu pengembalian qty lama dan pengurangan qty baru ditulis dalam
// transaksi yang sama dengan update header.
func (s *Service) UpdatePenjualan(id uint, in PenjualanInput) (*models.Penjualan, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("minimal satu item penjualan")
	}

	var hasil *models.Penjualan
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var p models.Penjualan
		if err := lockForUpdate(tx).First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransaksiNotFound
			}
			return err
		}

		var oldDetails []models.PenjualanDetail
		if err := tx.Where("penjualan_id = ?", id).Find(&oldDetails).Error; err != nil {
			return err
		}

		resolved, err := s.resolveItems(tx, in.Items, JenisPenjualan)
		if err != nil {
			return err
		}

		lama := qtyPerProdukDetail(oldDetails)
		baru := totalQtyPerProduk(resolved)

		produk, err := kunciProduk(tx, sortedProdukIDs(lama, baru))
		if err != nil {
			return err
		}

		// Baseline = stok sekarang + qty lama yang akan dikembalikan.
		for _, pid := range sortedProdukIDs(baru) {
			baseline := produk[pid].Stok + lama[pid]
			if baru[pid] > baseline {
				return &StokTidakCukupError{
					ProdukID: pid,
					Kode:     produk[pid].Kode,
					Tersedia: baseline,
					Diminta:  baru[pid],
				}
			}
		}

		// Semua pembacaan selesai; mulai menulis.
		for _, pid := range sortedProdukIDs(lama) {
			if err := applyDeltaStok(tx, pid, lama[pid]); err != nil {
				return err
			}
		}
		for _, pid := range sortedProdukIDs(baru) {
			if err := applyDeltaStok(tx, pid, -baru[pid]); err != nil {
				return err
			}
		}

		if err := tx.Where("penjualan_id = ?", id).Delete(&models.PenjualanDetail{}).Error; err != nil {
			return err
		}

		var total int64
		details := make([]models.PenjualanDetail, 0, len(resolved))
		for _, r := range resolved {
			total += r.Subtotal()
			details = append(details, models.PenjualanDetail{
				PenjualanID:      id,
				ProdukID:         r.ProdukID,
				SupplierProdukID: r.SupplierProdukID,
				Qty:              r.Qty,
				Harga:            r.Harga,
				Subtotal:         r.Subtotal(),
			})
		}
		if err := tx.Create(&details).Error; err != nil {
			return err
		}

		akhir := totalAkhir(total, in.Diskon, in.Pajak, in.PajakEnabled)

		// Status dinaikkan ke Lunas bila pembayaran lama sudah menutup
		// total baru; tidak pernah diturunkan otomatis.
		status := p.Status
		if p.TotalDibayar >= akhir {
			status = models.StatusLunas
		}

		updates := map[string]any{
			"tanggal":             timeOr(in.Tanggal, p.Tanggal),
			"diskon":              in.Diskon,
			"pajak_enabled":       in.PajakEnabled,
			"pajak":               in.Pajak,
			"total":               total,
			"total_akhir":         akhir,
			"status":              status,
			"metode_pembayaran":   in.MetodePembayaran,
			"nama_bank":           in.NamaBank,
			"nomor_rekening":      in.NomorRekening,
			"atas_nama_rekening":  in.AtasNamaRekening,
			"tanggal_jatuh_tempo": in.TanggalJatuhTempo,
		}
		if in.PelangganID != 0 {
			updates["pelanggan_id"] = in.PelangganID
		}
		if err := tx.Model(&models.Penjualan{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		p.Details = details
		hasil = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hasil, nil
}

// DeletePenjualan membatalkan penjualan: seluruh efek stok dibalik
// (stok + qty per baris), lalu pembayaran, detail, dan header dihapus
// dalam transaksi yang sama. Setelah ini transaksi tidak bisa diambil lagi.
func (s *Service) DeletePenjualan(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var p models.Penjualan
		if err := lockForUpdate(tx).First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransaksiNotFound
			}
			return err
		}

		var details []models.PenjualanDetail
		if err := tx.Where("penjualan_id = ?", id).Find(&details).Error; err != nil {
			return err
		}

		lama := qtyPerProdukDetail(details)
		if _, err := kunciProduk(tx, sortedProdukIDs(lama)); err != nil {
			return err
		}

		for _, pid := range sortedProdukIDs(lama) {
			if err := applyDeltaStok(tx, pid, lama[pid]); err != nil {
				return err
			}
		}

		if err := tx.Where("penjualan_id = ?", id).Delete(&models.PembayaranPiutang{}).Error; err != nil {
			return err
		}
		if err := tx.Where("penjualan_id = ?", id).Delete(&models.PenjualanDetail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Penjualan{}, id).Error
	})
}

// GetPenjualan mengambil satu penjualan lengkap dengan pelanggan, detail
// (plus produk), dan riwayat pembayaran.
func (s *Service) GetPenjualan(id uint) (*models.Penjualan, error) {
	var p models.Penjualan
	err := s.db.
		Preload("Pelanggan").
		Preload("Details.Produk").
		Preload("Pembayaran").
		First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransaksiNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func timeOr(t, fallback time.Time) time.Time {
	if t.IsZero() {
		return fallback
	}
	return t
}
