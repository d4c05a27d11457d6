package router

import (
	"time"

	"finca/internal/config"
	"finca/internal/handler"
	"finca/internal/infra"
	"finca/internal/middleware"
	"finca/internal/repository"
	"finca/internal/service"
	"finca/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis.
// rdb may be nil: the weather cache is skipped and e-mail delivery of
// cierres is disabled.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, climaCB *infra.CircuitBreaker) *gin.Engine {
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
	climaClient := infra.NewClimaClient(cfg.WeatherAPIURL, time.Duration(cfg.WeatherTimeoutSeconds)*time.Second, climaCB)

	// A nil *Dispatcher must not reach the service as a non-nil interface.
	var cierreQueue service.CierreQueue
	if rdb != nil {
		cierreQueue = worker.NewDispatcher(rdb)
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	trabajadorRepo := repository.NewTrabajadorRepository(db)
	loteRepo := repository.NewLoteRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)
	tarifaRepo := repository.NewTarifaRepository(db)
	jornadaRepo := repository.NewJornadaRepository(db)
	recoleccionRepo := repository.NewRecoleccionRepository(db)
	insumoRepo := repository.NewInsumoRepository(db)
	valeRepo := repository.NewValeRepository(db)
	planRepo := repository.NewPlanRepository(db)
	cierreRepo := repository.NewCierreRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	trabajadorSvc := service.NewTrabajadorService(trabajadorRepo)
	climaSvc := service.NewClimaService(climaClient, rdb, time.Duration(cfg.WeatherCacheMinutes)*time.Minute)
	loteSvc := service.NewLoteService(loteRepo, insumoRepo, recoleccionRepo, climaSvc)
	catalogoSvc := service.NewCatalogoService(catalogoRepo)
	tarifaSvc := service.NewTarifaService(tarifaRepo)
	jornadaSvc := service.NewJornadaService(jornadaRepo)
	recoleccionSvc := service.NewRecoleccionService(recoleccionRepo)
	insumoSvc := service.NewInsumoService(insumoRepo)
	valeSvc := service.NewValeService(valeRepo)
	planillaSvc := service.NewPlanillaService(jornadaRepo, recoleccionRepo, valeRepo, tarifaRepo)
	reporteSvc := service.NewReporteService(jornadaRepo, recoleccionRepo, insumoRepo, tarifaRepo)
	exportSvc := service.NewExportService(jornadaRepo, recoleccionRepo, insumoRepo, valeRepo)
	planSvc := service.NewPlanService(planRepo, jornadaRepo)
	cierreSvc := service.NewCierreService(cierreRepo, cierreQueue, cfg.ExportStoragePath, cfg.NombreFinca)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	trabajadoresH := handler.NewTrabajadoresHandler(trabajadorSvc)
	lotesH := handler.NewLotesHandler(loteSvc)
	catalogosH := handler.NewCatalogosHandler(catalogoSvc)
	tarifaH := handler.NewTarifaHandler(tarifaSvc)
	jornadasH := handler.NewJornadasHandler(jornadaSvc)
	recoleccionesH := handler.NewRecoleccionesHandler(recoleccionSvc)
	insumosH := handler.NewInsumosHandler(insumoSvc)
	valesH := handler.NewValesHandler(valeSvc)
	planillasH := handler.NewPlanillasHandler(planillaSvc, cfg.ExportStoragePath, cfg.NombreFinca)
	reportesH := handler.NewReportesHandler(reporteSvc, exportSvc)
	planesH := handler.NewPlanesHandler(planSvc)
	cierresH := handler.NewCierresHandler(cierreSvc, reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, climaCB))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes; every query below is scoped to the token's owner.
	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	{
		trab := v1.Group("/trabajadores")
		{
			trab.POST("", trabajadoresH.Crear)
			trab.GET("", trabajadoresH.Listar)
			trab.PUT("/:id", trabajadoresH.Actualizar)
			trab.DELETE("/:id", trabajadoresH.Eliminar)
		}

		lotes := v1.Group("/lotes")
		{
			lotes.POST("", lotesH.Crear)
			lotes.GET("", lotesH.Listar)
			lotes.PUT("/:id", lotesH.Actualizar)
			lotes.DELETE("/:id", lotesH.Eliminar)
			lotes.GET("/:id/estado", lotesH.Estado)
			lotes.GET("/:id/clima", lotesH.Clima)
			lotes.POST("/:id/analisis", lotesH.RegistrarAnalisis)
			lotes.GET("/:id/analisis", lotesH.ListarAnalisis)
		}

		cat := v1.Group("/catalogos")
		{
			cat.GET("/productos", catalogosH.ListarProductos)
			cat.POST("/productos", catalogosH.AgregarProducto)
			cat.DELETE("/productos/:id", catalogosH.EliminarProducto)
			cat.GET("/labores", catalogosH.ListarLabores)
			cat.POST("/labores", catalogosH.AgregarLabor)
			cat.DELETE("/labores/:id", catalogosH.EliminarLabor)
		}

		v1.GET("/tarifa", tarifaH.Obtener)
		v1.PUT("/tarifa", tarifaH.Guardar)

		jor := v1.Group("/jornadas")
		{
			jor.POST("", jornadasH.Crear)
			jor.GET("", jornadasH.Listar)
			jor.PUT("/:id", jornadasH.Actualizar)
			jor.DELETE("/:id", jornadasH.Eliminar)
		}

		rec := v1.Group("/recolecciones")
		{
			rec.POST("", recoleccionesH.Crear)
			rec.POST("/lote", recoleccionesH.CrearLote)
			rec.GET("", recoleccionesH.Listar)
			rec.DELETE("/:id", recoleccionesH.Eliminar)
		}

		ins := v1.Group("/insumos")
		{
			ins.POST("", insumosH.Crear)
			ins.GET("", insumosH.Listar)
			ins.DELETE("/:id", insumosH.Eliminar)
		}

		vales := v1.Group("/vales")
		{
			vales.POST("", valesH.Registrar)
			vales.GET("", valesH.Historial)
			vales.GET("/saldo", valesH.Saldo)
			vales.GET("/saldos", valesH.Saldos)
			vales.DELETE("/:id", valesH.Eliminar)
		}

		pl := v1.Group("/planillas/:tipo")
		{
			pl.POST("/calcular", planillasH.Calcular)
			pl.POST("/pagar", planillasH.Pagar)
			pl.POST("/pdf", planillasH.PDF)
		}

		rep := v1.Group("/reportes")
		{
			rep.GET("/resumen", reportesH.Resumen)
			rep.GET("/gastos-lote", reportesH.GastosPorLote)
			rep.GET("/cosecha", reportesH.Cosecha)
		}
		v1.GET("/exportes/respaldo", reportesH.Respaldo)

		planes := v1.Group("/planes")
		{
			planes.POST("", planesH.Crear)
			planes.GET("", planesH.Listar)
			planes.PUT("/:id", planesH.Actualizar)
			planes.DELETE("/:id", planesH.Eliminar)
			planes.POST("/:id/posponer", planesH.Posponer)
			planes.POST("/:id/completar", planesH.Completar)
		}

		cierres := v1.Group("/cierres")
		{
			cierres.POST("", cierresH.Crear)
			cierres.GET("", cierresH.Listar)
			cierres.GET("/:id", cierresH.Obtener)
			cierres.GET("/:id/pdf", cierresH.PDF)
			cierres.POST("/:id/enviar", cierresH.Enviar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
