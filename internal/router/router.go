package router

import (
	"time"

	"mundiclass/internal/config"
	"mundiclass/internal/handler"
	"mundiclass/internal/middleware"
	"mundiclass/internal/repository"
	"mundiclass/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB / object storage
func New(cfg *config.Config, db *gorm.DB, almacen service.AlmacenObjetos) *gin.Engine {
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

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	historialRepo := repository.NewHistorialRepository(db)
	multimediaRepo := repository.NewMultimediaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	usuarioSvc := service.NewUsuarioService(usuarioRepo, historialRepo)
	clienteSvc := service.NewClienteService(clienteRepo, usuarioRepo, historialRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo, historialRepo)
	productoSvc := service.NewProductoService(productoRepo, categoriaRepo, historialRepo)
	compraSvc := service.NewCompraService(compraRepo, clienteRepo, productoRepo, historialRepo)
	historialSvc := service.NewHistorialService(historialRepo)
	imagenSvc := service.NewImagenService(almacen, multimediaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc, imagenSvc)
	productosH := handler.NewProductosHandler(productoSvc, imagenSvc)
	comprasH := handler.NewComprasHandler(compraSvc)
	historialH := handler.NewHistorialHandler(historialSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db))

	api := r.Group("/api")
	{
		usuarios := api.Group("/usuarios")
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.GET("/:id", usuariosH.Obtener)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Eliminar)
		}

		clientes := api.Group("/clientes")
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.Obtener)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
		}

		categorias := api.Group("/categorias")
		{
			categorias.POST("", categoriasH.Crear)
			categorias.GET("", categoriasH.Listar)
			categorias.GET("/:id", categoriasH.Obtener)
			categorias.PUT("/:id", categoriasH.Actualizar)
			categorias.DELETE("/:id", categoriasH.Eliminar)
			categorias.POST("/:id/imagen", categoriasH.SubirImagen)
			categorias.GET("/:id/imagenes", categoriasH.ListarImagenes)
		}

		productos := api.Group("/productos")
		{
			productos.POST("", productosH.Crear)
			productos.GET("", productosH.Listar)
			productos.GET("/:id", productosH.Obtener)
			productos.PUT("/:id", productosH.Actualizar)
			productos.DELETE("/:id", productosH.Eliminar)
			productos.POST("/:id/imagen", productosH.SubirImagen)
			productos.GET("/:id/imagenes", productosH.ListarImagenes)
		}

		compras := api.Group("/compras")
		{
			compras.POST("", comprasH.Crear)
			compras.GET("", comprasH.Listar)
			compras.GET("/:id", comprasH.Obtener)
			compras.DELETE("/:id", comprasH.Eliminar)
		}

		api.GET("/historial/eliminados", historialH.ListarEliminados)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
