// utils/codes.go
package utils

import (
	"fmt"
	"time"
)

// Format nomor dokumen. Murni: increment counter terjadi di service,
// formatting di sini.

func FormatNomorInvoice(n int64, t time.Time) string {
	return fmt.Sprintf("INV/%s/%04d", t.Format("20060102"), n)
}

func FormatNomorSuratJalan(n int64, t time.Time) string {
	return fmt.Sprintf("SJ/%s/%04d", t.Format("20060102"), n)
}

func FormatIDProduk(n int64) string {
	return fmt.Sprintf("PRD-%05d", n)
}

func FormatKodeProduk(n int64) string {
	return fmt.Sprintf("SKU-%05d", n)
}

func FormatIDPelanggan(n int64) string {
	return fmt.Sprintf("PLG-%05d", n)
}
