package service

import (
	"context"
	"testing"

	"mundiclass/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductoCrearCategoriaInexistente(t *testing.T) {
	e := newEntorno(t)

	falsa := uuid.NewString()
	req := dto.CrearProductoRequest{Nombre: "Cuaderno", Cantidad: 1, CategoriaID: &falsa}
	req.ValorUnitario = precio(t, "3.50")

	_, err := e.productos.Crear(context.Background(), req)
	require.Error(t, err)
	assert.True(t, EsConflicto(err))
}

func TestProductoActualizarParcial(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	p := e.crearProducto(t, "Cuaderno", 10)

	nuevoPrecio := precio(t, "7.25")
	actualizado, err := e.productos.Actualizar(ctx, p.ID, dto.ActualizarProductoRequest{
		ValorUnitario: &nuevoPrecio,
	})
	require.NoError(t, err)
	assert.Equal(t, "7.25", actualizado.ValorUnitario.String())
	assert.Equal(t, "Cuaderno", actualizado.Nombre)
	assert.Equal(t, 10, actualizado.Cantidad)
}

func TestProductoEliminarBloqueadoPorCompras(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	cliente := e.crearCliente(t, "Ana", "11111")
	p := e.crearProducto(t, "Cuaderno", 10)

	compra, err := e.compras.Crear(ctx, compraDe(cliente.ID.String(), p.ID.String(), 2))
	require.NoError(t, err)

	err = e.productos.Eliminar(ctx, p.ID)
	require.Error(t, err)
	assert.True(t, EsConflicto(err))

	require.NoError(t, e.compras.Eliminar(ctx, compra.ID))
	require.NoError(t, e.productos.Eliminar(ctx, p.ID))
	assert.Equal(t, 1, e.contarHistorial(t, "productos"))
}

func TestProductoListarFiltros(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	barato := dto.CrearProductoRequest{Nombre: "Lapiz", Cantidad: 3}
	barato.ValorUnitario = precio(t, "1.00")
	_, err := e.productos.Crear(ctx, barato)
	require.NoError(t, err)

	caro := dto.CrearProductoRequest{Nombre: "Mochila", Cantidad: 20}
	caro.ValorUnitario = precio(t, "45.00")
	_, err = e.productos.Crear(ctx, caro)
	require.NoError(t, err)

	min := 10.0
	caros, err := e.productos.Listar(ctx, dto.ProductoFilter{PrecioMin: &min})
	require.NoError(t, err)
	require.Len(t, caros, 1)
	assert.Equal(t, "Mochila", caros[0].Nombre)

	stockMin := 5
	conStock, err := e.productos.Listar(ctx, dto.ProductoFilter{StockMin: &stockMin})
	require.NoError(t, err)
	require.Len(t, conStock, 1)
	assert.Equal(t, "Mochila", conStock[0].Nombre)

	porNombre, err := e.productos.Listar(ctx, dto.ProductoFilter{Nombre: "LAP"})
	require.NoError(t, err)
	require.Len(t, porNombre, 1)
	assert.Equal(t, "Lapiz", porNombre[0].Nombre)
}
