package main

import (
	"os"

	"go-postgres-trading/config"
	"go-postgres-trading/controllers"
	"go-postgres-trading/middlewares"
	"go-postgres-trading/models"
	"go-postgres-trading/routes"
	"go-postgres-trading/service"
	"go-postgres-trading/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env opsional; di Render semua lewat env vars.
	_ = godotenv.Load()

	utils.InitLogger()
	cfg := config.Load()
	config.ConnectDB()

	if err := config.DB.AutoMigrate(
		&models.Produk{},
		&models.Pelanggan{},
		&models.Supplier{},
		&models.SupplierProduk{},
		&models.Penjualan{},
		&models.PenjualanDetail{},
		&models.PembayaranPiutang{},
		&models.Pembelian{},
		&models.PembelianDetail{},
		&models.Counter{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate gagal")
	}

	controllers.Init(service.New(config.DB, cfg))

	r := gin.Default()
	r.Use(middlewares.RequestLogger())
	routes.SetupRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "🚀 Trading API is running"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Str("port", port).Str("mode_resolusi", cfg.ModeResolusiItem).Msg("server start")
	_ = r.Run(":" + port)
}
