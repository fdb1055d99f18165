package config

import (
	"os"

	"github.com/spf13/cast"
)

// Mode resolusi item transaksi: referensi langsung ke produk, atau lewat
// baris daftar harga supplier (supplier_produk).
const (
	ResolusiProduk         = "produk"
	ResolusiSupplierProduk = "supplier_produk"
)

type App struct {
	// MODE_RESOLUSI_ITEM: "produk" (default) | "supplier_produk"
	ModeResolusiItem string

	// IJINKAN_OVERRIDE_LUNAS: boleh tandai Lunas manual walau piutang
	// belum tertutup. Default true, mengikuti perilaku lama.
	AllowLunasOverride bool

	// JAGA_STOK_NEGATIF: tolak pembatalan/edit pembelian yang akan
	// membuat stok produk negatif. Default true.
	GuardNegativeStock bool
}

func Load() App {
	mode := os.Getenv("MODE_RESOLUSI_ITEM")
	if mode != ResolusiSupplierProduk {
		mode = ResolusiProduk
	}

	return App{
		ModeResolusiItem:   mode,
		AllowLunasOverride: boolEnv("IJINKAN_OVERRIDE_LUNAS", true),
		GuardNegativeStock: boolEnv("JAGA_STOK_NEGATIF", true),
	}
}

func boolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return cast.ToBool(v)
}
