package service

import (
	"context"
	"testing"

	"mundiclass/internal/dto"
	"mundiclass/internal/infra"
	"mundiclass/internal/model"
	"mundiclass/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))
	return db
}

type entorno struct {
	db         *gorm.DB
	usuarios   *UsuarioService
	clientes   *ClienteService
	categorias *CategoriaService
	productos  *ProductoService
	compras    *CompraService
	historial  *HistorialService
}

func newEntorno(t *testing.T) *entorno {
	t.Helper()
	db := newTestDB(t)

	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	historialRepo := repository.NewHistorialRepository(db)

	return &entorno{
		db:         db,
		usuarios:   NewUsuarioService(usuarioRepo, historialRepo),
		clientes:   NewClienteService(clienteRepo, usuarioRepo, historialRepo),
		categorias: NewCategoriaService(categoriaRepo, historialRepo),
		productos:  NewProductoService(productoRepo, categoriaRepo, historialRepo),
		compras:    NewCompraService(compraRepo, clienteRepo, productoRepo, historialRepo),
		historial:  NewHistorialService(historialRepo),
	}
}

func (e *entorno) crearCliente(t *testing.T, nombre, cedula string) *model.Cliente {
	t.Helper()
	c, err := e.clientes.Crear(context.Background(), dto.CrearClienteRequest{
		Nombre: nombre,
		Cedula: cedula,
	})
	require.NoError(t, err)
	return c
}

func (e *entorno) crearProducto(t *testing.T, nombre string, cantidad int) *model.Producto {
	t.Helper()
	p, err := e.productos.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:        nombre,
		Cantidad:      cantidad,
		ValorUnitario: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	return p
}

func precio(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func (e *entorno) contarHistorial(t *testing.T, tabla string) int {
	t.Helper()
	entradas, err := e.historial.Listar(context.Background(), dto.HistorialFilter{Tabla: tabla})
	require.NoError(t, err)
	return len(entradas)
}
