package service

import (
	"context"
	"encoding/json"
	"testing"

	"mundiclass/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compraDe(cliente, producto string, cantidad int) dto.CrearCompraRequest {
	return dto.CrearCompraRequest{
		ClienteID:              cliente,
		ProductoID:             producto,
		Cantidad:               cantidad,
		PrecioUnitarioAplicado: decimal.NewFromInt(5),
		Total:                  decimal.NewFromInt(int64(cantidad * 5)),
	}
}

func TestCompraCrearDescuentaStock(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	cliente := e.crearCliente(t, "Ana", "11111")
	producto := e.crearProducto(t, "Cuaderno", 10)

	compra, err := e.compras.Crear(ctx, compraDe(cliente.ID.String(), producto.ID.String(), 4))
	require.NoError(t, err)
	assert.Equal(t, 4, compra.Cantidad)
	assert.Equal(t, "20", compra.Total.String())

	p, err := e.productos.Obtener(ctx, producto.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, p.Cantidad)
}

func TestCompraCrearStockInsuficiente(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	cliente := e.crearCliente(t, "Ana", "11111")
	producto := e.crearProducto(t, "Cuaderno", 10)

	_, err := e.compras.Crear(ctx, compraDe(cliente.ID.String(), producto.ID.String(), 4))
	require.NoError(t, err)

	// 6 units remain, 7 must fail and leave the stock untouched
	_, err = e.compras.Crear(ctx, compraDe(cliente.ID.String(), producto.ID.String(), 7))
	require.Error(t, err)
	assert.True(t, EsConflicto(err))
	assert.Contains(t, err.Error(), "Stock insuficiente")
	assert.Contains(t, err.Error(), "6")

	p, err := e.productos.Obtener(ctx, producto.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, p.Cantidad)
}

func TestCompraCrearReferenciasInexistentes(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	cliente := e.crearCliente(t, "Ana", "11111")
	producto := e.crearProducto(t, "Cuaderno", 10)

	_, err := e.compras.Crear(ctx, compraDe(uuid.NewString(), producto.ID.String(), 1))
	require.Error(t, err)
	assert.True(t, EsNoEncontrado(err))

	_, err = e.compras.Crear(ctx, compraDe(cliente.ID.String(), uuid.NewString(), 1))
	require.Error(t, err)
	assert.True(t, EsNoEncontrado(err))
}

func TestCompraEliminarRestauraStockYAudita(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	cliente := e.crearCliente(t, "Ana", "11111")
	producto := e.crearProducto(t, "Cuaderno", 10)

	compra, err := e.compras.Crear(ctx, compraDe(cliente.ID.String(), producto.ID.String(), 4))
	require.NoError(t, err)

	require.NoError(t, e.compras.Eliminar(ctx, compra.ID))

	p, err := e.productos.Obtener(ctx, producto.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Cantidad)

	entradas, err := e.historial.Listar(ctx, dto.HistorialFilter{Tabla: "compras"})
	require.NoError(t, err)
	require.Len(t, entradas, 1)
	assert.Equal(t, compra.ID, entradas[0].RegistroID)

	var datos map[string]any
	require.NoError(t, json.Unmarshal(entradas[0].Datos, &datos))
	assert.Equal(t, compra.ID.String(), datos["id"])
	assert.EqualValues(t, 4, datos["cantidad"])
	assert.Equal(t, "20", datos["total"])

	_, err = e.compras.Obtener(ctx, compra.ID)
	assert.True(t, EsNoEncontrado(err))
}

func TestCompraEliminarInexistente(t *testing.T) {
	e := newEntorno(t)

	err := e.compras.Eliminar(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, EsNoEncontrado(err))
}

func TestCompraListarFiltros(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	ana := e.crearCliente(t, "Ana", "11111")
	luis := e.crearCliente(t, "Luis", "22222")
	cuaderno := e.crearProducto(t, "Cuaderno", 50)
	lapiz := e.crearProducto(t, "Lapiz", 50)

	_, err := e.compras.Crear(ctx, compraDe(ana.ID.String(), cuaderno.ID.String(), 2))
	require.NoError(t, err)
	_, err = e.compras.Crear(ctx, compraDe(luis.ID.String(), lapiz.ID.String(), 3))
	require.NoError(t, err)

	porCliente, err := e.compras.Listar(ctx, dto.CompraFilter{ClienteID: ana.ID.String()})
	require.NoError(t, err)
	require.Len(t, porCliente, 1)
	assert.Equal(t, ana.ID, porCliente[0].ClienteID)

	porNombre, err := e.compras.Listar(ctx, dto.CompraFilter{NombreProducto: "lap"})
	require.NoError(t, err)
	require.Len(t, porNombre, 1)
	assert.Equal(t, lapiz.ID, porNombre[0].ProductoID)

	min := 12.0
	porTotal, err := e.compras.Listar(ctx, dto.CompraFilter{MinTotal: &min})
	require.NoError(t, err)
	require.Len(t, porTotal, 1)
	assert.Equal(t, "15", porTotal[0].Total.String())

	todas, err := e.compras.Listar(ctx, dto.CompraFilter{})
	require.NoError(t, err)
	assert.Len(t, todas, 2)
}
