package service

import (
	"errors"
	"fmt"
	"time"

	"go-postgres-trading/models"

	"gorm.io/gorm"
)

type PembelianInput struct {
	SupplierID   uint      `json:"supplier_id" binding:"required"`
	Tanggal      time.Time `json:"tanggal"`
	NoDO         string    `json:"no_do"`
	NoNPB        string    `json:"no_npb"`
	NomorInvoice string    `json:"nomor_invoice"`
	Status       string    `json:"status"`

	Items []ItemInput `json:"items" binding:"required,min=1"`
}

// CreatePembelian mencatat penerimaan barang: header + detail + tambah
// stok per produk dalam satu transaksi. Tidak ada batas atas stok,
// tapi produk harus ada.
func (s *Service) CreatePembelian(in PembelianInput) (*models.Pembelian, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("minimal satu item pembelian")
	}

	tanggal := in.Tanggal
	if tanggal.IsZero() {
		tanggal = time.Now().UTC()
	}

	var hasil *models.Pembelian
	err := s.db.Transaction(func(tx *gorm.DB) error {
		resolved, err := s.resolveItems(tx, in.Items, JenisPembelian)
		if err != nil {
			return err
		}

		masuk := totalQtyPerProduk(resolved)
		if _, err := kunciProduk(tx, sortedProdukIDs(masuk)); err != nil {
			return err
		}

		var total int64
		details := make([]models.PembelianDetail, 0, len(resolved))
		for _, r := range resolved {
			total += r.Subtotal()
			details = append(details, models.PembelianDetail{
				ProdukID:         r.ProdukID,
				SupplierProdukID: r.SupplierProdukID,
				Qty:              r.Qty,
				Harga:            r.Harga,
				Subtotal:         r.Subtotal(),
			})
		}

		header := models.Pembelian{
			SupplierID:   in.SupplierID,
			Tanggal:      tanggal,
			NoDO:         in.NoDO,
			NoNPB:        in.NoNPB,
			NomorInvoice: in.NomorInvoice,
			Total:        total,
			Status:       in.Status,
			Details:      details,
		}
		if err := tx.Create(&header).Error; err != nil {
			return err
		}

		for _, pid := range sortedProdukIDs(masuk) {
			if err := applyDeltaStok(tx, pid, masuk[pid]); err != nil {
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

// UpdatePembelian mengganti seluruh set item. Pengembalian qty lama
// mengurangi stok; bila barangnya sudah terlanjur terjual, pengurangan itu
// bisa membuat stok negatif — ditolak saat GuardNegativeStock aktif.
func (s *Service) UpdatePembelian(id uint, in PembelianInput) (*models.Pembelian, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("minimal satu item pembelian")
	}

	var hasil *models.Pembelian
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var p models.Pembelian
		if err := lockForUpdate(tx).First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransaksiNotFound
			}
			return err
		}

		var oldDetails []models.PembelianDetail
		if err := tx.Where("pembelian_id = ?", id).Find(&oldDetails).Error; err != nil {
			return err
		}

		resolved, err := s.resolveItems(tx, in.Items, JenisPembelian)
		if err != nil {
			return err
		}

		lama := qtyPerProdukDetailPembelian(oldDetails)
		baru := totalQtyPerProduk(resolved)

		produk, err := kunciProduk(tx, sortedProdukIDs(lama, baru))
		if err != nil {
			return err
		}

		if s.cfg.GuardNegativeStock {
			for _, pid := range sortedProdukIDs(lama, baru) {
				proyeksi := produk[pid].Stok - lama[pid] + baru[pid]
				if proyeksi < 0 {
					return &StokTidakCukupError{
						ProdukID: pid,
						Kode:     produk[pid].Kode,
						Tersedia: produk[pid].Stok,
						Diminta:  lama[pid] - baru[pid],
					}
				}
			}
		}

		for _, pid := range sortedProdukIDs(lama) {
			if err := applyDeltaStok(tx, pid, -lama[pid]); err != nil {
				return err
			}
		}
		for _, pid := range sortedProdukIDs(baru) {
			if err := applyDeltaStok(tx, pid, baru[pid]); err != nil {
				return err
			}
		}

		if err := tx.Where("pembelian_id = ?", id).Delete(&models.PembelianDetail{}).Error; err != nil {
			return err
		}

		var total int64
		details := make([]models.PembelianDetail, 0, len(resolved))
		for _, r := range resolved {
			total += r.Subtotal()
			details = append(details, models.PembelianDetail{
				PembelianID:      id,
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

		updates := map[string]any{
			"tanggal":       timeOr(in.Tanggal, p.Tanggal),
			"no_do":         in.NoDO,
			"no_npb":        in.NoNPB,
			"nomor_invoice": in.NomorInvoice,
			"total":         total,
			"status":        in.Status,
		}
		if in.SupplierID != 0 {
			updates["supplier_id"] = in.SupplierID
		}
		if err := tx.Model(&models.Pembelian{}).Where("id = ?", id).Updates(updates).Error; err != nil {
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

// DeletePembelian membalik penambahan stok lalu menghapus detail dan
// header. Guard stok negatif berlaku sama seperti pada edit.
func (s *Service) DeletePembelian(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var p models.Pembelian
		if err := lockForUpdate(tx).First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransaksiNotFound
			}
			return err
		}

		var details []models.PembelianDetail
		if err := tx.Where("pembelian_id = ?", id).Find(&details).Error; err != nil {
			return err
		}

		lama := qtyPerProdukDetailPembelian(details)
		produk, err := kunciProduk(tx, sortedProdukIDs(lama))
		if err != nil {
			return err
		}

		if s.cfg.GuardNegativeStock {
			for _, pid := range sortedProdukIDs(lama) {
				if produk[pid].Stok-lama[pid] < 0 {
					return &StokTidakCukupError{
						ProdukID: pid,
						Kode:     produk[pid].Kode,
						Tersedia: produk[pid].Stok,
						Diminta:  lama[pid],
					}
				}
			}
		}

		for _, pid := range sortedProdukIDs(lama) {
			if err := applyDeltaStok(tx, pid, -lama[pid]); err != nil {
				return err
			}
		}

		if err := tx.Where("pembelian_id = ?", id).Delete(&models.PembelianDetail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Pembelian{}, id).Error
	})
}

func (s *Service) GetPembelian(id uint) (*models.Pembelian, error) {
	var p models.Pembelian
	err := s.db.
		Preload("Supplier").
		Preload("Details.Produk").
		First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransaksiNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
