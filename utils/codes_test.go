package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatNomorDokumen(t *testing.T) {
	tanggal := time.Date(2025, 1, 31, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "INV/20250131/0001", FormatNomorInvoice(1, tanggal))
	assert.Equal(t, "INV/20250131/0042", FormatNomorInvoice(42, tanggal))
	assert.Equal(t, "SJ/20250131/0007", FormatNomorSuratJalan(7, tanggal))

	// Lebih dari 4 digit tidak dipotong.
	assert.Equal(t, "INV/20250131/12345", FormatNomorInvoice(12345, tanggal))
}

func TestFormatIDMaster(t *testing.T) {
	assert.Equal(t, "PRD-00001", FormatIDProduk(1))
	assert.Equal(t, "PRD-00321", FormatIDProduk(321))
	assert.Equal(t, "SKU-00015", FormatKodeProduk(15))
	assert.Equal(t, "PLG-00099", FormatIDPelanggan(99))
}
