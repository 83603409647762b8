package service

import (
	"context"
	"testing"

	"mundiclass/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClienteCrearCedulaDuplicada(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	e.crearCliente(t, "Ana", "11111")

	_, err := e.clientes.Crear(ctx, dto.CrearClienteRequest{Nombre: "Otra Ana", Cedula: "11111"})
	require.Error(t, err)
	assert.True(t, EsConflicto(err))
}

func TestClienteCrearUsuarioInexistente(t *testing.T) {
	e := newEntorno(t)

	falso := uuid.NewString()
	_, err := e.clientes.Crear(context.Background(), dto.CrearClienteRequest{
		Nombre:    "Ana",
		Cedula:    "11111",
		UsuarioID: &falso,
	})
	require.Error(t, err)
	assert.True(t, EsConflicto(err))
}

func TestClienteEliminarBloqueadoPorCompras(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	cliente := e.crearCliente(t, "Ana", "11111")
	producto := e.crearProducto(t, "Cuaderno", 10)

	compra, err := e.compras.Crear(ctx, compraDe(cliente.ID.String(), producto.ID.String(), 1))
	require.NoError(t, err)

	err = e.clientes.Eliminar(ctx, cliente.ID)
	require.Error(t, err)
	assert.True(t, EsConflicto(err))
	assert.Equal(t, 0, e.contarHistorial(t, "clientes"))

	require.NoError(t, e.compras.Eliminar(ctx, compra.ID))
	require.NoError(t, e.clientes.Eliminar(ctx, cliente.ID))
	assert.Equal(t, 1, e.contarHistorial(t, "clientes"))
}

func TestClienteActualizarParcial(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	cliente := e.crearCliente(t, "Ana", "11111")

	frecuente := true
	actualizado, err := e.clientes.Actualizar(ctx, cliente.ID, dto.ActualizarClienteRequest{
		ClienteFrecuente: &frecuente,
	})
	require.NoError(t, err)
	assert.True(t, actualizado.ClienteFrecuente)
	assert.Equal(t, "Ana", actualizado.Nombre)
	assert.Equal(t, "11111", actualizado.Cedula)
}

func TestClienteListarFiltros(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	e.crearCliente(t, "Ana Torres", "11111")
	e.crearCliente(t, "Luis Rojas", "22222")

	res, err := e.clientes.Listar(ctx, dto.ClienteFilter{Nombre: "torres"})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Ana Torres", res[0].Nombre)
}
