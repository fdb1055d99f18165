package routes

import (
	"go-postgres-trading/controllers"
	"go-postgres-trading/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api", middlewares.AuthMiddleware())
	{
		produk := api.Group("/produk")
		{
			produk.GET("/", controllers.GetAllProduk)
			produk.GET("/kode-baru", controllers.KodeProdukBaru)
			produk.GET("/:id", controllers.GetProdukByID)
			produk.POST("/", controllers.CreateProduk)
			produk.PUT("/:id", controllers.UpdateProduk)
			produk.DELETE("/:id", controllers.DeleteProduk)
		}

		pelanggan := api.Group("/pelanggan")
		{
			pelanggan.GET("/", controllers.GetAllPelanggan)
			pelanggan.GET("/:id", controllers.GetPelangganByID)
			pelanggan.POST("/", controllers.CreatePelanggan)
			pelanggan.PUT("/:id", controllers.UpdatePelanggan)
			pelanggan.DELETE("/:id", controllers.DeletePelanggan)
		}

		supplier := api.Group("/supplier")
		{
			supplier.GET("/", controllers.GetAllSupplier)
			supplier.GET("/:id", controllers.GetSupplierByID)
			supplier.POST("/", controllers.CreateSupplier)
			supplier.PUT("/:id", controllers.UpdateSupplier)
			supplier.DELETE("/:id", controllers.DeleteSupplier)

			// daftar harga per supplier
			supplier.GET("/:id/produk", controllers.GetSupplierProduk)
			supplier.POST("/:id/produk", controllers.CreateSupplierProduk)
		}

		penjualan := api.Group("/penjualan")
		{
			penjualan.GET("/", controllers.GetAllPenjualan)
			penjualan.GET("/:id", controllers.GetPenjualanByID)
			penjualan.POST("/", controllers.CreatePenjualan)
			penjualan.PUT("/:id", controllers.UpdatePenjualan)
			penjualan.PUT("/:id/status", controllers.SetStatusPenjualan)
			penjualan.DELETE("/:id", controllers.DeletePenjualan)
		}

		piutang := api.Group("/piutang")
		{
			piutang.GET("/", controllers.GetAllPiutang)
			piutang.POST("/:id/bayar", controllers.BayarPiutang)
			piutang.GET("/:id/riwayat", controllers.RiwayatPembayaran)
		}

		pembelian := api.Group("/pembelian")
		{
			pembelian.GET("/", controllers.GetAllPembelian)
			pembelian.GET("/:id", controllers.GetPembelianByID)
			pembelian.POST("/", controllers.CreatePembelian)
			pembelian.PUT("/:id", controllers.UpdatePembelian)
			pembelian.DELETE("/:id", controllers.DeletePembelian)
		}

		laporan := api.Group("/laporan")
		{
			laporan.GET("/penjualan", controllers.LaporanPenjualan)
			laporan.GET("/pembelian", controllers.LaporanPembelian)
			laporan.GET("/stok", controllers.LaporanStok)
		}
	}
}
