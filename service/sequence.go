package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go-postgres-trading/models"
	"go-postgres-trading/utils"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Nama sequence yang dipakai aplikasi. Satu baris counter per nama.
const (
	SeqPenjualan  = "penjualan"
	SeqSuratJalan = "suratJalan"
	SeqProduk     = "produk"
	SeqKodeProduk = "kodeProduk"
	SeqPelanggan  = "pelanggan"
)

// NextSequence menaikkan counter bernama `nama` secara atomik dan
// mengembalikan nilai barunya. Counter yang belum ada diinisialisasi ke 1.
// Dua pemanggil konkuren tidak pernah mendapat angka yang sama: baris
// counter di-lock FOR UPDATE, dan race insert pertama kali ditangkap lewat
// unique violation lalu diulang.
func (s *Service) NextSequence(nama string) (int64, error) {
	const maxRetries = 3
	var lastErr error

	for i := 0; i < maxRetries; i++ {
		var next int64
		lastErr = s.db.Transaction(func(tx *gorm.DB) error {
			var c models.Counter
			err := lockForUpdate(tx).Where("nama = ?", nama).First(&c).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c = models.Counter{Nama: nama, LastNumber: 1}
				if err := tx.Create(&c).Error; err != nil {
					return err
				}
				next = 1
				return nil
			}
			if err != nil {
				return err
			}

			next = c.LastNumber + 1
			return tx.Model(&models.Counter{}).
				Where("id = ?", c.ID).
				Update("last_number", next).Error
		})

		if lastErr == nil {
			return next, nil
		}
		if isUniqueViolation(lastErr) {
			continue
		}
		return 0, lastErr
	}

	return 0, fmt.Errorf("%w: %v", ErrTransaksiGagal, lastErr)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// sqlite (test)
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// ===== Wrapper bernomor: increment atomik + formatting murni =====

func (s *Service) NomorInvoiceBaru(t time.Time) (string, error) {
	n, err := s.NextSequence(SeqPenjualan)
	if err != nil {
		return "", err
	}
	return utils.FormatNomorInvoice(n, t), nil
}

func (s *Service) NomorSuratJalanBaru(t time.Time) (string, error) {
	n, err := s.NextSequence(SeqSuratJalan)
	if err != nil {
		return "", err
	}
	return utils.FormatNomorSuratJalan(n, t), nil
}

func (s *Service) IDProdukBaru() (string, error) {
	n, err := s.NextSequence(SeqProduk)
	if err != nil {
		return "", err
	}
	return utils.FormatIDProduk(n), nil
}

func (s *Service) KodeProdukBaru() (string, error) {
	n, err := s.NextSequence(SeqKodeProduk)
	if err != nil {
		return "", err
	}
	return utils.FormatKodeProduk(n), nil
}

func (s *Service) IDPelangganBaru() (string, error) {
	n, err := s.NextSequence(SeqPelanggan)
	if err != nil {
		return "", err
	}
	return utils.FormatIDPelanggan(n), nil
}
