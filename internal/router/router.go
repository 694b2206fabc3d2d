package router

import (
	"time"

	"tokopos/internal/config"
	"tokopos/internal/handler"
	"tokopos/internal/infra"
	"tokopos/internal/middleware"
	"tokopos/internal/repository"
	"tokopos/internal/service"
	"tokopos/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine plus the
// worker handlers for the job pool (started from main).
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dbCB *infra.CircuitBreaker) (*gin.Engine, worker.Handlers) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	tokoRepo := repository.NewTokoRepository(db)
	produkRepo := repository.NewProdukRepository(db)
	pembelianRepo := repository.NewPembelianRepository(db)
	returRepo := repository.NewReturRepository(db)
	setoranRepo := repository.NewSetoranRepository(db)
	operasionalRepo := repository.NewOperasionalRepository(db)
	transaksiRepo := repository.NewTransaksiRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	sesiTTL := time.Duration(cfg.SesiTokoHours) * time.Hour
	cacheTTL := time.Duration(cfg.ProdukCacheTTL) * time.Second
	tokoSvc := service.NewTokoService(tokoRepo, rdb, dbCB, cfg.JWTSecret, sesiTTL, cacheTTL)
	produkSvc := service.NewProdukService(produkRepo, rdb, cacheTTL)
	pembelianSvc := service.NewPembelianService(pembelianRepo, produkRepo)
	returSvc := service.NewReturService(returRepo)
	setoranSvc := service.NewSetoranService(setoranRepo)
	operasionalSvc := service.NewOperasionalService(operasionalRepo)
	transaksiSvc := service.NewTransaksiService(transaksiRepo)
	laporanSvc := service.NewLaporanService(transaksiRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	tokoH := handler.NewTokoHandler(tokoSvc)
	produkH := handler.NewProdukHandler(produkSvc)
	pembelianH := handler.NewPembelianHandler(pembelianSvc)
	returH := handler.NewReturHandler(returSvc)
	setoranH := handler.NewSetoranHandler(setoranSvc)
	operasionalH := handler.NewOperasionalHandler(operasionalSvc)
	laporanH := handler.NewLaporanHandler(laporanSvc, transaksiSvc, tokoSvc, cfg.PDFStoragePath)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, dbCB))

	// Store management and selection (public — this is the pre-session
	// surface; the PIN on /pilih is the access gate)
	toko := r.Group("/v1/toko")
	{
		toko.POST("", tokoH.Create)
		toko.GET("", tokoH.List)
		toko.GET("/:id", tokoH.Get)
		toko.PUT("/:id", tokoH.Update)
		toko.DELETE("/:id", tokoH.Delete)
		toko.POST("/:id/pilih", middleware.PinRateLimiter(), tokoH.Pilih)
	}

	// Store-scoped routes — require a session token
	v1 := r.Group("/v1", middleware.SesiToko(cfg.JWTSecret))
	{
		produk := v1.Group("/produk")
		{
			produk.POST("", produkH.Create)
			produk.GET("", produkH.List)
			produk.GET("/:id", produkH.Get)
			produk.PUT("/:id", produkH.Update)
			produk.PATCH("/:id/stok", produkH.SetStok)
			produk.PUT("/:id/harga-beli", produkH.SetHargaBeli)
			produk.DELETE("/:id", produkH.Delete)
			produk.POST("/import", produkH.Import)
		}

		pembelian := v1.Group("/pembelian")
		{
			pembelian.POST("/checkout", pembelianH.Checkout)
			pembelian.GET("", pembelianH.List)
			pembelian.GET("/:id", pembelianH.Get)
			pembelian.PATCH("/:id/status", pembelianH.UpdateStatus)
			pembelian.DELETE("/:id", pembelianH.Delete)
			pembelian.POST("/:id/items", pembelianH.AddItem)
			pembelian.PATCH("/:id/items/:itemId", pembelianH.UpdateItemField)
			pembelian.DELETE("/:id/items/:itemId", pembelianH.DeleteItem)
		}

		retur := v1.Group("/retur")
		{
			retur.POST("", returH.Create)
			retur.GET("", returH.List)
			retur.GET("/:id", returH.Get)
			retur.PUT("/:id", returH.Update)
			retur.DELETE("/:id", returH.Delete)
		}

		setoran := v1.Group("/setoran")
		{
			setoran.POST("", setoranH.Create)
			setoran.GET("", setoranH.List)
		}

		operasional := v1.Group("/operasional")
		{
			operasional.POST("", operasionalH.Create)
			operasional.GET("/:id", operasionalH.Get)
			operasional.DELETE("/:id", operasionalH.Delete)
		}

		v1.POST("/transaksi", laporanH.CreateTransaksi)
		v1.GET("/transaksi/:id", laporanH.GetTransaksi)

		laporan := v1.Group("/laporan")
		{
			laporan.GET("/penjualan", laporanH.Penjualan)
			laporan.GET("/penjualan/pdf", laporanH.PenjualanPDF)
			laporan.POST("/penjualan/email", laporanH.EmailPenjualan)
			laporan.GET("/setoran", setoranH.Laporan)
			laporan.GET("/operasional", operasionalH.Laporan)
		}
	}

	handlers := worker.Handlers{
		LaporanEmail: worker.NewLaporanWorker(laporanSvc, tokoSvc, mailer, cfg.PDFStoragePath),
	}
	return r, handlers
}
